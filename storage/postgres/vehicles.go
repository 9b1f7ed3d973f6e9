package postgres

import (
	"context"

	"github.com/dealerdesk/dealerdesk.go/db/models"
)

func (s *Store) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	_, err := s.DB.NewInsert().Model(vehicle).Exec(ctx)
	return wrapErr(err)
}

func (s *Store) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	vehicles := []models.Vehicle{}
	err := s.DB.NewSelect().Model(&vehicles).OrderExpr("id ASC").Scan(ctx)
	return vehicles, wrapErr(err)
}

func (s *Store) GetVehicle(ctx context.Context, id int64) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := s.DB.NewSelect().Model(&vehicle).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &vehicle, nil
}

func (s *Store) UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	res, err := s.DB.NewUpdate().Model(vehicle).WherePK().Exec(ctx)
	return affectedOrNotFound(res, err)
}

func (s *Store) DeleteVehicle(ctx context.Context, id int64) error {
	res, err := s.DB.NewDelete().Model((*models.Vehicle)(nil)).Where("id = ?", id).Exec(ctx)
	return affectedOrNotFound(res, err)
}
