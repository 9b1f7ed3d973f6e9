package postgres

import (
	"context"

	"github.com/dealerdesk/dealerdesk.go/db/models"
)

func (s *Store) CreateLedgerEntry(ctx context.Context, entry *models.LedgerEntry) error {
	_, err := s.DB.NewInsert().Model(entry).Exec(ctx)
	return wrapErr(err)
}

func (s *Store) ListLedgerEntries(ctx context.Context) ([]models.LedgerEntry, error) {
	entries := []models.LedgerEntry{}
	err := s.DB.NewSelect().Model(&entries).OrderExpr("created_at DESC, id DESC").Scan(ctx)
	return entries, wrapErr(err)
}

func (s *Store) GetLedgerEntry(ctx context.Context, id int64) (*models.LedgerEntry, error) {
	var entry models.LedgerEntry
	err := s.DB.NewSelect().Model(&entry).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &entry, nil
}

func (s *Store) LatestLedgerEntry(ctx context.Context) (*models.LedgerEntry, error) {
	var entry models.LedgerEntry
	err := s.DB.NewSelect().Model(&entry).OrderExpr("created_at DESC, id DESC").Limit(1).Scan(ctx)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &entry, nil
}

func (s *Store) UpdateLedgerEntry(ctx context.Context, entry *models.LedgerEntry) error {
	res, err := s.DB.NewUpdate().Model(entry).WherePK().Exec(ctx)
	return affectedOrNotFound(res, err)
}

func (s *Store) DeleteLedgerEntry(ctx context.Context, id int64) error {
	res, err := s.DB.NewDelete().Model((*models.LedgerEntry)(nil)).Where("id = ?", id).Exec(ctx)
	return affectedOrNotFound(res, err)
}
