package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/uptrace/bun"

	"github.com/dealerdesk/dealerdesk.go/db/models"
	"github.com/dealerdesk/dealerdesk.go/lib/security"
	"github.com/dealerdesk/dealerdesk.go/storage"
)

// GenerateOTP issues a fresh 6-digit code for the mobile number and sends it
// over the messenger. Any outstanding code for the number is invalidated
// first. Delivery failure is logged but does not fail the call: the shop's
// WhatsApp provider flakes regularly and the code can still be read from the
// provider dashboard.
func (svc *DealerdeskService) GenerateOTP(ctx context.Context, mobile string) error {
	if _, err := svc.Store.GetUserByMobile(ctx, mobile); err != nil {
		return err
	}

	code, err := randomOTPCode()
	if err != nil {
		return err
	}
	otp := &models.OTP{
		Mobile:    mobile,
		Code:      code,
		ExpiresAt: time.Now().Add(time.Duration(svc.Config.OTPExpiry) * time.Second),
	}
	if err := svc.Store.ReplaceOTP(ctx, otp); err != nil {
		return err
	}

	if err := svc.Messenger.Send(ctx, mobile, fmt.Sprintf("Your OTP code is: %s", code)); err != nil {
		svc.Logger.Errorf("failed to deliver OTP to %s: %v", mobile, err)
	}
	return nil
}

// VerifyOTP consumes the code (single use) and hands back a password-reset
// token. The token itself is returned to the caller, only its hash is stored.
func (svc *DealerdeskService) VerifyOTP(ctx context.Context, mobile, code string) (string, error) {
	otp, err := svc.Store.GetOTP(ctx, mobile, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrInvalidOTP
		}
		return "", err
	}
	if err := svc.Store.DeleteOTP(ctx, otp.ID); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return "", err
	}
	if time.Now().After(otp.ExpiresAt) {
		return "", ErrInvalidOTP
	}

	user, err := svc.Store.GetUserByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrInvalidOTP
		}
		return "", err
	}

	token, hash, err := security.GenerateResetToken()
	if err != nil {
		return "", err
	}
	user.ResetTokenHash = hash
	user.ResetTokenExpiresAt = bun.NullTime{Time: time.Now().Add(time.Duration(svc.Config.ResetTokenExpiry) * time.Second)}
	if err := svc.Store.UpdateUser(ctx, user); err != nil {
		return "", err
	}
	return token, nil
}

// ResetPassword trades a valid reset token for a new password and a fresh
// session token.
func (svc *DealerdeskService) ResetPassword(ctx context.Context, resetToken, password string) (*models.User, error) {
	user, err := svc.Store.GetUserByResetTokenHash(ctx, security.HashToken(resetToken))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidResetToken
		}
		return nil, err
	}
	if user.ResetTokenExpiresAt.IsZero() || time.Now().After(user.ResetTokenExpiresAt.Time) {
		return nil, ErrInvalidResetToken
	}

	hashed, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user.Password = hashed
	user.ResetTokenHash = ""
	user.ResetTokenExpiresAt = bun.NullTime{}
	if err := svc.Store.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func randomOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
