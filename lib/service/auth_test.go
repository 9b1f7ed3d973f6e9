package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dealerdesk/dealerdesk.go/db/models"
	"github.com/dealerdesk/dealerdesk.go/storage"
)

func TestRegisterUserDuplicateMobile(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "Anil", "anil@example.com", "9876500001", "pw", "Staff")
	assert.NoError(t, err)

	_, err = svc.RegisterUser(ctx, "Bala", "bala@example.com", "9876500001", "pw", "Staff")
	assert.ErrorIs(t, err, ErrMobileTaken)
}

// An insert that loses a race to another registration still has to report
// the field that actually collided, not blame the email unconditionally.
func TestDuplicateUserClassification(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "Anil", "anil@example.com", "9876500001", "pw", "Staff")
	assert.NoError(t, err)

	// the store itself rejects a mobile collision, like the partial index does
	err = svc.Store.CreateUser(ctx, &models.User{
		Name: "Chetan", Email: "chetan@example.com", Mobile: "9876500001",
		Password: "x", Role: "Staff", Status: models.UserStatusActive,
	})
	assert.ErrorIs(t, err, storage.ErrDuplicate)

	assert.ErrorIs(t, svc.classifyDuplicateUser(ctx, &models.User{Email: "anil@example.com"}), ErrEmailTaken)
	assert.ErrorIs(t, svc.classifyDuplicateUser(ctx, &models.User{Email: "chetan@example.com", Mobile: "9876500001"}), ErrMobileTaken)
}

func TestUsersWithoutMobileDoNotCollide(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "Anil", "anil@example.com", "", "pw", "Staff")
	assert.NoError(t, err)
	_, err = svc.RegisterUser(ctx, "Bala", "bala@example.com", "", "pw", "Staff")
	assert.NoError(t, err)
}
