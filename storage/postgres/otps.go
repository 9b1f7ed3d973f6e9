package postgres

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"

	"github.com/dealerdesk/dealerdesk.go/db/models"
)

func (s *Store) ReplaceOTP(ctx context.Context, otp *models.OTP) error {
	err := s.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*models.OTP)(nil)).Where("mobile = ?", otp.Mobile).Exec(ctx); err != nil {
			return err
		}
		_, err := tx.NewInsert().Model(otp).Exec(ctx)
		return err
	})
	return wrapErr(err)
}

func (s *Store) GetOTP(ctx context.Context, mobile, code string) (*models.OTP, error) {
	var otp models.OTP
	err := s.DB.NewSelect().Model(&otp).Where("mobile = ? AND code = ?", mobile, code).Limit(1).Scan(ctx)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &otp, nil
}

func (s *Store) DeleteOTP(ctx context.Context, id int64) error {
	res, err := s.DB.NewDelete().Model((*models.OTP)(nil)).Where("id = ?", id).Exec(ctx)
	return affectedOrNotFound(res, err)
}
