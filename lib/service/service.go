package service

import (
	"errors"

	"github.com/ziflex/lecho/v3"

	"github.com/dealerdesk/dealerdesk.go/messaging"
	"github.com/dealerdesk/dealerdesk.go/storage"
)

// Domain errors the controllers translate into catalogue responses.
var (
	ErrEmailTaken        = errors.New("email already in use")
	ErrMobileTaken       = errors.New("mobile number already in use")
	ErrBadCredentials    = errors.New("invalid email or password")
	ErrInvalidOTP        = errors.New("invalid OTP")
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
	ErrTotalMismatch     = errors.New("total does not match the payment split")
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidStatus     = errors.New("invalid status")
)

type DealerdeskService struct {
	Config    *Config
	Store     storage.Store
	Logger    *lecho.Logger
	Messenger messaging.Messenger
}
