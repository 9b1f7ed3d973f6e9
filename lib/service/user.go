package service

import (
	"context"
	"errors"

	"github.com/dealerdesk/dealerdesk.go/db/models"
	"github.com/dealerdesk/dealerdesk.go/lib/security"
	"github.com/dealerdesk/dealerdesk.go/storage"
)

func (svc *DealerdeskService) ListUsers(ctx context.Context) ([]models.User, error) {
	return svc.Store.ListUsers(ctx)
}

func (svc *DealerdeskService) FindUser(ctx context.Context, id int64) (*models.User, error) {
	return svc.Store.GetUser(ctx, id)
}

// UserUpdate lists the fields a PUT may change. Anything else in the request
// body is dropped instead of being merged into the record.
type UserUpdate struct {
	Name     *string
	Email    *string
	Mobile   *string
	Role     *string
	Status   *string
	Password *string
}

func (svc *DealerdeskService) UpdateUser(ctx context.Context, id int64, update UserUpdate) (*models.User, error) {
	user, err := svc.Store.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil && *update.Email != user.Email {
		if _, err := svc.Store.GetUserByEmail(ctx, *update.Email); err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		user.Email = *update.Email
	}
	if update.Mobile != nil {
		user.Mobile = *update.Mobile
	}
	if update.Role != nil {
		if !models.ValidRole(*update.Role) {
			return nil, ErrInvalidRole
		}
		user.Role = *update.Role
	}
	if update.Status != nil {
		if *update.Status != models.UserStatusActive && *update.Status != models.UserStatusInactive {
			return nil, ErrInvalidStatus
		}
		user.Status = *update.Status
	}
	if update.Password != nil {
		hashed, err := security.HashPassword(*update.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}
	if err := svc.Store.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (svc *DealerdeskService) DeleteUser(ctx context.Context, id int64) error {
	return svc.Store.DeleteUser(ctx, id)
}
