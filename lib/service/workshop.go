package service

import (
	"context"
	"time"

	"github.com/dealerdesk/dealerdesk.go/db/models"
)

func (svc *DealerdeskService) CreateTicket(ctx context.Context, ticket *models.WorkshopTicket) error {
	if ticket.Status == "" {
		ticket.Status = models.TicketStatusPending
	}
	if !models.ValidTicketStatus(ticket.Status) {
		return ErrInvalidStatus
	}
	if ticket.Date.IsZero() {
		ticket.Date = time.Now()
	}
	return svc.Store.CreateTicket(ctx, ticket)
}

func (svc *DealerdeskService) ListTickets(ctx context.Context) ([]models.WorkshopTicket, error) {
	return svc.Store.ListTickets(ctx)
}

func (svc *DealerdeskService) FindTicket(ctx context.Context, id int64) (*models.WorkshopTicket, error) {
	return svc.Store.GetTicket(ctx, id)
}

type TicketUpdate struct {
	Vehicle             *string
	Customer            *string
	Service             *string
	Status              *string
	Date                *time.Time
	EstimatedCompletion *time.Time
	Cost                *float64
}

func (svc *DealerdeskService) UpdateTicket(ctx context.Context, id int64, update TicketUpdate) (*models.WorkshopTicket, error) {
	ticket, err := svc.Store.GetTicket(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Vehicle != nil {
		ticket.Vehicle = *update.Vehicle
	}
	if update.Customer != nil {
		ticket.Customer = *update.Customer
	}
	if update.Service != nil {
		ticket.Service = *update.Service
	}
	if update.Status != nil {
		if !models.ValidTicketStatus(*update.Status) {
			return nil, ErrInvalidStatus
		}
		ticket.Status = *update.Status
	}
	if update.Date != nil {
		ticket.Date = *update.Date
	}
	if update.EstimatedCompletion != nil {
		ticket.EstimatedCompletion = *update.EstimatedCompletion
	}
	if update.Cost != nil {
		ticket.Cost = *update.Cost
	}
	if err := svc.Store.UpdateTicket(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (svc *DealerdeskService) DeleteTicket(ctx context.Context, id int64) error {
	return svc.Store.DeleteTicket(ctx, id)
}
