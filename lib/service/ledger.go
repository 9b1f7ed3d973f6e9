package service

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dealerdesk/dealerdesk.go/db/models"
	"github.com/dealerdesk/dealerdesk.go/storage"
)

const totalTolerance = 1e-6

// LedgerEntryInput carries a create or update request. Pointers distinguish
// "not sent" from zero so that partial edits and the carry-forward defaults
// work. Total is accepted only to be checked: the server recomputes it and
// rejects a client value that disagrees with the payment split.
type LedgerEntryInput struct {
	Date           *string  `json:"date"`
	Customer       *string  `json:"customer"`
	ReceiptNo      *string  `json:"receiptNo"`
	Model          *string  `json:"model"`
	Content        *string  `json:"content"`
	ChassisNo      *string  `json:"chassisNo"`
	Payment        *string  `json:"payment"`
	Cash           *float64 `json:"cash"`
	IciciUpi       *float64 `json:"iciciUpi"`
	Hdfc           *float64 `json:"hdfc"`
	Total          *float64 `json:"total"`
	Expenses       *float64 `json:"expenses"`
	Sale           *float64 `json:"sale"`
	Name           *string  `json:"name"`
	TypeOfExpense  *string  `json:"typeOfExpense"`
	Amount         *float64 `json:"amount"`
	Balance        *float64 `json:"balance"`
	BikeCarada     *float64 `json:"bikeCarada"`
	BikeCaradaOut  *float64 `json:"bikeCaradaOut"`
	BikeTheft      *float64 `json:"bikeTheft"`
	OpeningBalance *float64 `json:"openingBalance"`
	BikeStock      *float64 `json:"bikeStock"`
	ClosingBalance *float64 `json:"closingBalance"`
}

// CreateLedgerEntry builds a row from the input, carries the running
// balances forward from the latest row when the client did not send them,
// and derives total/remaining. Date defaults to today in the ledger's
// dd-mm-yy display format.
func (svc *DealerdeskService) CreateLedgerEntry(ctx context.Context, input *LedgerEntryInput) (*models.LedgerEntry, error) {
	entry := &models.LedgerEntry{}
	applyInput(entry, input)

	if entry.Date == "" {
		entry.Date = time.Now().Format("02-01-06")
	}

	if input.OpeningBalance == nil || input.BikeStock == nil || input.Balance == nil {
		latest, err := svc.Store.LatestLedgerEntry(ctx)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		if latest != nil {
			if input.OpeningBalance == nil {
				entry.OpeningBalance = latest.ClosingBalance
			}
			if input.BikeStock == nil {
				entry.BikeStock = latest.BikeStock
			}
			if input.Balance == nil {
				entry.Balance = latest.Balance
			}
		}
	}

	if err := deriveTotals(entry, input.Total); err != nil {
		return nil, err
	}
	if err := svc.Store.CreateLedgerEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (svc *DealerdeskService) ListLedgerEntries(ctx context.Context) ([]models.LedgerEntry, error) {
	return svc.Store.ListLedgerEntries(ctx)
}

func (svc *DealerdeskService) FindLedgerEntry(ctx context.Context, id int64) (*models.LedgerEntry, error) {
	return svc.Store.GetLedgerEntry(ctx, id)
}

func (svc *DealerdeskService) UpdateLedgerEntry(ctx context.Context, id int64, input *LedgerEntryInput) (*models.LedgerEntry, error) {
	entry, err := svc.Store.GetLedgerEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	applyInput(entry, input)
	if err := deriveTotals(entry, input.Total); err != nil {
		return nil, err
	}
	if err := svc.Store.UpdateLedgerEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (svc *DealerdeskService) DeleteLedgerEntry(ctx context.Context, id int64) error {
	return svc.Store.DeleteLedgerEntry(ctx, id)
}

func applyInput(entry *models.LedgerEntry, input *LedgerEntryInput) {
	if input.Date != nil {
		entry.Date = *input.Date
	}
	if input.Customer != nil {
		entry.Customer = *input.Customer
	}
	if input.ReceiptNo != nil {
		entry.ReceiptNo = *input.ReceiptNo
	}
	if input.Model != nil {
		entry.Model = *input.Model
	}
	if input.Content != nil {
		entry.Content = *input.Content
	}
	if input.ChassisNo != nil {
		entry.ChassisNo = *input.ChassisNo
	}
	if input.Payment != nil {
		entry.Payment = *input.Payment
	}
	if input.Cash != nil {
		entry.Cash = *input.Cash
	}
	if input.IciciUpi != nil {
		entry.IciciUpi = *input.IciciUpi
	}
	if input.Hdfc != nil {
		entry.Hdfc = *input.Hdfc
	}
	if input.Expenses != nil {
		entry.Expenses = *input.Expenses
	}
	if input.Sale != nil {
		entry.Sale = *input.Sale
	}
	if input.Name != nil {
		entry.Name = *input.Name
	}
	if input.TypeOfExpense != nil {
		entry.TypeOfExpense = *input.TypeOfExpense
	}
	if input.Amount != nil {
		entry.Amount = *input.Amount
	}
	if input.Balance != nil {
		entry.Balance = *input.Balance
	}
	if input.BikeCarada != nil {
		entry.BikeCarada = *input.BikeCarada
	}
	if input.BikeCaradaOut != nil {
		entry.BikeCaradaOut = *input.BikeCaradaOut
	}
	if input.BikeTheft != nil {
		entry.BikeTheft = *input.BikeTheft
	}
	if input.OpeningBalance != nil {
		entry.OpeningBalance = *input.OpeningBalance
	}
	if input.BikeStock != nil {
		entry.BikeStock = *input.BikeStock
	}
	if input.ClosingBalance != nil {
		entry.ClosingBalance = *input.ClosingBalance
	}
}

// deriveTotals recomputes the derived columns.
//
// total is always cash + iciciUpi + hdfc. A client-supplied total that
// disagrees is rejected rather than trusted.
//
// remaining is payment - total, but only when the free-text payment column
// holds a number. The column usually holds text ("CASH", a financier name),
// in which case remaining is left exactly as it was: not zeroed, not an
// error.
func deriveTotals(entry *models.LedgerEntry, clientTotal *float64) error {
	total := entry.Cash + entry.IciciUpi + entry.Hdfc
	// amounts are rupees but float64 addition leaves noise, so the checksum
	// comparison allows a sliver of slack well below one paisa
	if clientTotal != nil && math.Abs(*clientTotal-total) > totalTolerance {
		return ErrTotalMismatch
	}
	entry.Total = total

	if owed, err := strconv.ParseFloat(strings.TrimSpace(entry.Payment), 64); err == nil {
		entry.Remaining = owed - total
	}
	return nil
}
