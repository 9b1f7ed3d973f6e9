package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

type Vehicle struct {
	ID          int64        `json:"id" bun:",pk,autoincrement"`
	Name        string       `json:"name" bun:",notnull" validate:"required"`
	Price       float64      `json:"price" validate:"gte=0"`
	Description string       `json:"description" bun:",nullzero"`
	Image       string       `json:"image" bun:",nullzero"`
	CreatedAt   time.Time    `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt   bun.NullTime `json:"updated_at"`
}

func (v *Vehicle) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		v.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Vehicle)(nil)
