package service

import (
	"context"
	"errors"
	"regexp"

	"github.com/dealerdesk/dealerdesk.go/db/models"
	"github.com/dealerdesk/dealerdesk.go/lib/security"
	"github.com/dealerdesk/dealerdesk.go/lib/tokens"
	"github.com/dealerdesk/dealerdesk.go/storage"
)

var mobilePattern = regexp.MustCompile(`^\d{10}$`)

func ValidMobile(mobile string) bool {
	return mobile == "" || mobilePattern.MatchString(mobile)
}

// RegisterUser creates an account with a hashed password. Email and mobile
// must be unused.
func (svc *DealerdeskService) RegisterUser(ctx context.Context, name, email, mobile, password, role string) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}
	if _, err := svc.Store.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	if mobile != "" {
		if _, err := svc.Store.GetUserByMobile(ctx, mobile); err == nil {
			return nil, ErrMobileTaken
		} else if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
	}

	hashed, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Name:     name,
		Email:    email,
		Mobile:   mobile,
		Password: hashed,
		Role:     role,
		Status:   models.UserStatusActive,
	}
	if err := svc.Store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, svc.classifyDuplicateUser(ctx, user)
		}
		return nil, err
	}
	return user, nil
}

// classifyDuplicateUser works out which unique field fired when an insert
// raced past the pre-checks. Email and mobile each carry a unique index, so
// the row that won the race tells us which one collided.
func (svc *DealerdeskService) classifyDuplicateUser(ctx context.Context, user *models.User) error {
	if _, err := svc.Store.GetUserByEmail(ctx, user.Email); err == nil {
		return ErrEmailTaken
	}
	if user.Mobile != "" {
		if _, err := svc.Store.GetUserByMobile(ctx, user.Mobile); err == nil {
			return ErrMobileTaken
		}
	}
	return ErrEmailTaken
}

// LoginUser returns ErrBadCredentials for both unknown email and wrong
// password so the response cannot be used to enumerate accounts.
func (svc *DealerdeskService) LoginUser(ctx context.Context, email, password string) (*models.User, error) {
	user, err := svc.Store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if !security.VerifyPassword(user.Password, password) {
		return nil, ErrBadCredentials
	}
	return user, nil
}

func (svc *DealerdeskService) GenerateToken(user *models.User) (string, error) {
	return tokens.GenerateAccessToken(svc.Config.JWTSecret, svc.Config.JWTAccessTokenExpiry, user)
}
