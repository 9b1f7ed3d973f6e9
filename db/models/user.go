package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

const (
	UserStatusActive   = "Active"
	UserStatusInactive = "Inactive"
)

// Roles match the dealership's staff hierarchy. TELLYCALLER keeps the
// historical spelling used by the existing frontend.
var UserRoles = []string{"Admin", "Owner", "Manager", "Cashier", "TELLYCALLER", "Storekeeper", "Staff", "Workshop"}

type User struct {
	ID                  int64        `json:"id" bun:",pk,autoincrement"`
	Name                string       `json:"name" bun:",notnull" validate:"required"`
	Email               string       `json:"email" bun:",unique,notnull" validate:"required,email"`
	Mobile              string       `json:"mobile" bun:",nullzero"`
	Password            string       `json:"-" bun:",notnull"`
	Role                string       `json:"role" bun:",notnull" validate:"required"`
	Status              string       `json:"status" bun:",notnull,default:'Active'"`
	ResetTokenHash      string       `json:"-" bun:",nullzero"`
	ResetTokenExpiresAt bun.NullTime `json:"-" bun:",nullzero"`
	CreatedAt           time.Time    `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt           bun.NullTime `json:"updated_at"`
}

func (u *User) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		u.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

func ValidRole(role string) bool {
	for _, r := range UserRoles {
		if r == role {
			return true
		}
	}
	return false
}

var _ bun.BeforeAppendModelHook = (*User)(nil)
