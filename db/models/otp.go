package models

import (
	"time"
)

// OTP is a single-use password reset code delivered over WhatsApp/SMS.
// Expiry is enforced at verification time, there is no TTL index.
type OTP struct {
	ID        int64     `json:"id" bun:",pk,autoincrement"`
	Mobile    string    `json:"mobile" bun:",notnull"`
	Code      string    `json:"-" bun:",notnull"`
	ExpiresAt time.Time `json:"expires_at" bun:",notnull"`
	CreatedAt time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}
