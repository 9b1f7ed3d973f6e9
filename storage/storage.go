package storage

import (
	"context"
	"errors"

	"github.com/dealerdesk/dealerdesk.go/db/models"
)

// ErrNotFound is returned by every Get/Update/Delete when no row matches.
// Controllers map it to a 404.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a unique field (user email) is already taken.
var ErrDuplicate = errors.New("duplicate record")

// Store is the persistence seam. The server picks one implementation at
// startup: Postgres via bun, or the in-memory fixture store when the
// database is unreachable. There is no shared connection flag, the choice is
// made once at composition time.
type Store interface {
	UserStore
	OTPStore
	VehicleStore
	WorkshopStore
	LedgerStore
}

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByMobile(ctx context.Context, mobile string) (*models.User, error)
	GetUserByResetTokenHash(ctx context.Context, hash string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id int64) error
}

type OTPStore interface {
	// ReplaceOTP removes any outstanding codes for the mobile number and
	// inserts the new one. Delete-then-insert, a number has at most one
	// live code.
	ReplaceOTP(ctx context.Context, otp *models.OTP) error
	GetOTP(ctx context.Context, mobile, code string) (*models.OTP, error)
	DeleteOTP(ctx context.Context, id int64) error
}

type VehicleStore interface {
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	GetVehicle(ctx context.Context, id int64) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	DeleteVehicle(ctx context.Context, id int64) error
}

type WorkshopStore interface {
	CreateTicket(ctx context.Context, ticket *models.WorkshopTicket) error
	ListTickets(ctx context.Context) ([]models.WorkshopTicket, error)
	GetTicket(ctx context.Context, id int64) (*models.WorkshopTicket, error)
	UpdateTicket(ctx context.Context, ticket *models.WorkshopTicket) error
	DeleteTicket(ctx context.Context, id int64) error
}

type LedgerStore interface {
	CreateLedgerEntry(ctx context.Context, entry *models.LedgerEntry) error
	// ListLedgerEntries returns entries newest first.
	ListLedgerEntries(ctx context.Context) ([]models.LedgerEntry, error)
	GetLedgerEntry(ctx context.Context, id int64) (*models.LedgerEntry, error)
	// LatestLedgerEntry returns ErrNotFound on an empty ledger.
	LatestLedgerEntry(ctx context.Context) (*models.LedgerEntry, error)
	UpdateLedgerEntry(ctx context.Context, entry *models.LedgerEntry) error
	DeleteLedgerEntry(ctx context.Context, id int64) error
}
