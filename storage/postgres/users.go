package postgres

import (
	"context"

	"github.com/dealerdesk/dealerdesk.go/db/models"
)

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	_, err := s.DB.NewInsert().Model(user).Exec(ctx)
	return wrapErr(err)
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := s.DB.NewSelect().Model(&users).OrderExpr("id ASC").Scan(ctx)
	return users, wrapErr(err)
}

func (s *Store) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := s.DB.NewSelect().Model(&user).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.DB.NewSelect().Model(&user).Where("email = ?", email).Limit(1).Scan(ctx)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &user, nil
}

func (s *Store) GetUserByMobile(ctx context.Context, mobile string) (*models.User, error) {
	var user models.User
	err := s.DB.NewSelect().Model(&user).Where("mobile = ?", mobile).Limit(1).Scan(ctx)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &user, nil
}

func (s *Store) GetUserByResetTokenHash(ctx context.Context, hash string) (*models.User, error) {
	var user models.User
	err := s.DB.NewSelect().Model(&user).Where("reset_token_hash = ?", hash).Limit(1).Scan(ctx)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &user, nil
}

func (s *Store) UpdateUser(ctx context.Context, user *models.User) error {
	res, err := s.DB.NewUpdate().Model(user).WherePK().Exec(ctx)
	return affectedOrNotFound(res, err)
}

func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	res, err := s.DB.NewDelete().Model((*models.User)(nil)).Where("id = ?", id).Exec(ctx)
	return affectedOrNotFound(res, err)
}
