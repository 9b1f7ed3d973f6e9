package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// LedgerEntry is one row of the daily cash book. Sale transactions and
// expense records share the same flat schema, matching the spreadsheet the
// shop keeps. Date is a display string, not a calendar type.
//
// Total and Remaining are derived: total is the sum of the three payment
// channels, remaining is the payment column (free text) minus total when the
// payment column holds a number. The service recomputes both on every write.
type LedgerEntry struct {
	ID             int64        `json:"id" bun:",pk,autoincrement"`
	Date           string       `json:"date" bun:",notnull" validate:"required"`
	Customer       string       `json:"customer" bun:",notnull" validate:"required"`
	ReceiptNo      string       `json:"receiptNo" bun:"receipt_no,nullzero"`
	Model          string       `json:"model" bun:",nullzero"`
	Content        string       `json:"content" bun:",nullzero"`
	ChassisNo      string       `json:"chassisNo" bun:"chassis_no,nullzero"`
	Payment        string       `json:"payment" bun:",nullzero"`
	Cash           float64      `json:"cash"`
	IciciUpi       float64      `json:"iciciUpi" bun:"icici_upi"`
	Hdfc           float64      `json:"hdfc"`
	Total          float64      `json:"total"`
	Remaining      float64      `json:"remaining"`
	Expenses       float64      `json:"expenses"`
	Sale           float64      `json:"sale"`
	Name           string       `json:"name" bun:",nullzero"`
	TypeOfExpense  string       `json:"typeOfExpense" bun:"type_of_expense,nullzero"`
	Amount         float64      `json:"amount"`
	Balance        float64      `json:"balance"`
	BikeCarada     float64      `json:"bikeCarada" bun:"bike_carada"`
	BikeCaradaOut  float64      `json:"bikeCaradaOut" bun:"bike_carada_out"`
	BikeTheft      float64      `json:"bikeTheft" bun:"bike_theft"`
	OpeningBalance float64      `json:"openingBalance" bun:"opening_balance"`
	BikeStock      float64      `json:"bikeStock" bun:"bike_stock"`
	ClosingBalance float64      `json:"closingBalance" bun:"closing_balance"`
	CreatedAt      time.Time    `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt      bun.NullTime `json:"updated_at"`
}

func (e *LedgerEntry) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		e.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*LedgerEntry)(nil)
