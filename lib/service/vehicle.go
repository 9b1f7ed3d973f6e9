package service

import (
	"context"

	"github.com/dealerdesk/dealerdesk.go/db/models"
)

func (svc *DealerdeskService) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	return svc.Store.CreateVehicle(ctx, vehicle)
}

func (svc *DealerdeskService) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return svc.Store.ListVehicles(ctx)
}

func (svc *DealerdeskService) FindVehicle(ctx context.Context, id int64) (*models.Vehicle, error) {
	return svc.Store.GetVehicle(ctx, id)
}

type VehicleUpdate struct {
	Name        *string
	Price       *float64
	Description *string
	Image       *string
}

func (svc *DealerdeskService) UpdateVehicle(ctx context.Context, id int64, update VehicleUpdate) (*models.Vehicle, error) {
	vehicle, err := svc.Store.GetVehicle(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		vehicle.Name = *update.Name
	}
	if update.Price != nil {
		vehicle.Price = *update.Price
	}
	if update.Description != nil {
		vehicle.Description = *update.Description
	}
	if update.Image != nil {
		vehicle.Image = *update.Image
	}
	if err := svc.Store.UpdateVehicle(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (svc *DealerdeskService) DeleteVehicle(ctx context.Context, id int64) error {
	return svc.Store.DeleteVehicle(ctx, id)
}
