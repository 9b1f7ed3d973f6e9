package postgres

import (
	"context"

	"github.com/dealerdesk/dealerdesk.go/db/models"
)

func (s *Store) CreateTicket(ctx context.Context, ticket *models.WorkshopTicket) error {
	_, err := s.DB.NewInsert().Model(ticket).Exec(ctx)
	return wrapErr(err)
}

func (s *Store) ListTickets(ctx context.Context) ([]models.WorkshopTicket, error) {
	tickets := []models.WorkshopTicket{}
	err := s.DB.NewSelect().Model(&tickets).OrderExpr("date DESC").Scan(ctx)
	return tickets, wrapErr(err)
}

func (s *Store) GetTicket(ctx context.Context, id int64) (*models.WorkshopTicket, error) {
	var ticket models.WorkshopTicket
	err := s.DB.NewSelect().Model(&ticket).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &ticket, nil
}

func (s *Store) UpdateTicket(ctx context.Context, ticket *models.WorkshopTicket) error {
	res, err := s.DB.NewUpdate().Model(ticket).WherePK().Exec(ctx)
	return affectedOrNotFound(res, err)
}

func (s *Store) DeleteTicket(ctx context.Context, id int64) error {
	res, err := s.DB.NewDelete().Model((*models.WorkshopTicket)(nil)).Where("id = ?", id).Exec(ctx)
	return affectedOrNotFound(res, err)
}
