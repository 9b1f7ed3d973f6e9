package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dealerdesk/dealerdesk.go/db/models"
	"github.com/dealerdesk/dealerdesk.go/lib/logging"
	"github.com/dealerdesk/dealerdesk.go/messaging"
	"github.com/dealerdesk/dealerdesk.go/storage/memory"
)

func newTestService() *DealerdeskService {
	logger := logging.Logger("")
	return &DealerdeskService{
		Config: &Config{
			JWTSecret:            []byte("SECRET"),
			JWTAccessTokenExpiry: 3600,
			OTPExpiry:            600,
			ResetTokenExpiry:     1800,
		},
		Store:     memory.NewStore(),
		Logger:    logger,
		Messenger: &messaging.LogMessenger{Logger: logger},
	}
}

func f(v float64) *float64 { return &v }
func s(v string) *string   { return &v }

func TestDeriveTotalsFromChannelSplit(t *testing.T) {
	entry := &models.LedgerEntry{Cash: 30000, IciciUpi: 24500, Hdfc: 0, Payment: "86500"}
	assert.NoError(t, deriveTotals(entry, nil))
	assert.Equal(t, float64(54500), entry.Total)
	assert.Equal(t, float64(32000), entry.Remaining)
}

func TestDeriveTotalsRejectsMismatchedClientTotal(t *testing.T) {
	entry := &models.LedgerEntry{Cash: 100, IciciUpi: 200}
	err := deriveTotals(entry, f(999))
	assert.ErrorIs(t, err, ErrTotalMismatch)
}

func TestDeriveTotalsToleratesFloatNoise(t *testing.T) {
	// 0.1 + 0.2 != 0.3 in float64; a correct checksum must still pass
	entry := &models.LedgerEntry{Cash: 0.1, IciciUpi: 0.2}
	assert.NoError(t, deriveTotals(entry, f(0.3)))
	assert.InDelta(t, 0.3, entry.Total, 1e-9)

	// a real disagreement is still rejected
	entry = &models.LedgerEntry{Cash: 0.1, IciciUpi: 0.2}
	assert.ErrorIs(t, deriveTotals(entry, f(1.3)), ErrTotalMismatch)
}

func TestDeriveTotalsAcceptsMatchingClientTotal(t *testing.T) {
	entry := &models.LedgerEntry{Cash: 100, IciciUpi: 200}
	assert.NoError(t, deriveTotals(entry, f(300)))
	assert.Equal(t, float64(300), entry.Total)
}

func TestDeriveTotalsLeavesRemainingOnTextPayment(t *testing.T) {
	entry := &models.LedgerEntry{Cash: 5000, Payment: "NAGAURA", Remaining: 1234}
	assert.NoError(t, deriveTotals(entry, nil))
	assert.Equal(t, float64(5000), entry.Total)
	// unparseable payment must not touch remaining
	assert.Equal(t, float64(1234), entry.Remaining)
}

func TestCreateLedgerEntryDerivesAndDefaults(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	entry, err := svc.CreateLedgerEntry(ctx, &LedgerEntryInput{
		Customer: s("RAMESH 23 3 25"),
		Payment:  s("86500"),
		Cash:     f(30000),
		IciciUpi: f(24500),
		Hdfc:     f(0),
	})
	assert.NoError(t, err)
	assert.Equal(t, float64(54500), entry.Total)
	assert.Equal(t, float64(32000), entry.Remaining)
	assert.NotEmpty(t, entry.Date)
	assert.NotZero(t, entry.ID)
}

func TestCreateLedgerEntryCarriesBalancesForward(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.CreateLedgerEntry(ctx, &LedgerEntryInput{
		Customer:       s("SUNIL"),
		OpeningBalance: f(100000),
		BikeStock:      f(12),
		ClosingBalance: f(95000),
		Balance:        f(240000),
	})
	assert.NoError(t, err)

	second, err := svc.CreateLedgerEntry(ctx, &LedgerEntryInput{
		Customer: s("RAMESH"),
	})
	assert.NoError(t, err)
	assert.Equal(t, first.ClosingBalance, second.OpeningBalance)
	assert.Equal(t, first.BikeStock, second.BikeStock)
	assert.Equal(t, first.Balance, second.Balance)

	// explicit values win over the carry-forward
	third, err := svc.CreateLedgerEntry(ctx, &LedgerEntryInput{
		Customer:       s("PRIYA"),
		OpeningBalance: f(1),
		BikeStock:      f(2),
		Balance:        f(3),
	})
	assert.NoError(t, err)
	assert.Equal(t, float64(1), third.OpeningBalance)
	assert.Equal(t, float64(2), third.BikeStock)
	assert.Equal(t, float64(3), third.Balance)
}

func TestUpdateLedgerEntryRecomputesTotal(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	entry, err := svc.CreateLedgerEntry(ctx, &LedgerEntryInput{
		Customer: s("SUNIL"),
		Payment:  s("88000"),
		Cash:     f(18000),
	})
	assert.NoError(t, err)
	assert.Equal(t, float64(18000), entry.Total)
	assert.Equal(t, float64(70000), entry.Remaining)

	updated, err := svc.UpdateLedgerEntry(ctx, entry.ID, &LedgerEntryInput{
		Hdfc: f(10000),
	})
	assert.NoError(t, err)
	assert.Equal(t, float64(28000), updated.Total)
	assert.Equal(t, float64(60000), updated.Remaining)
}

func TestUpdateLedgerEntryRejectsStaleClientTotal(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	entry, err := svc.CreateLedgerEntry(ctx, &LedgerEntryInput{
		Customer: s("SUNIL"),
		Cash:     f(18000),
	})
	assert.NoError(t, err)

	_, err = svc.UpdateLedgerEntry(ctx, entry.ID, &LedgerEntryInput{
		Hdfc:  f(10000),
		Total: f(18000), // stale, no longer matches
	})
	assert.ErrorIs(t, err, ErrTotalMismatch)
}
