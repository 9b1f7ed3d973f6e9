package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

const (
	TicketStatusPending    = "Pending"
	TicketStatusInProgress = "In Progress"
	TicketStatusCompleted  = "Completed"
)

// WorkshopTicket is one service job. Vehicle and customer are free text,
// the shop has no normalized customer table.
type WorkshopTicket struct {
	ID                  int64        `json:"id" bun:",pk,autoincrement"`
	Vehicle             string       `json:"vehicle" bun:",notnull" validate:"required"`
	Customer            string       `json:"customer" bun:",notnull" validate:"required"`
	Service             string       `json:"service" bun:",notnull" validate:"required"`
	Status              string       `json:"status" bun:",notnull,default:'Pending'"`
	Date                time.Time    `json:"date" bun:",nullzero,notnull,default:current_timestamp"`
	EstimatedCompletion time.Time    `json:"estimated_completion" validate:"required"`
	Cost                float64      `json:"cost" validate:"gte=0"`
	CreatedAt           time.Time    `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt           bun.NullTime `json:"updated_at"`
}

func (t *WorkshopTicket) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		t.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

func ValidTicketStatus(status string) bool {
	switch status {
	case TicketStatusPending, TicketStatusInProgress, TicketStatusCompleted:
		return true
	}
	return false
}

var _ bun.BeforeAppendModelHook = (*WorkshopTicket)(nil)
