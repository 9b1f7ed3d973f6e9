// Package authz holds the role policy table. The original routes scattered
// role literals per endpoint; here every mutating route names an action and a
// single middleware consults the table.
package authz

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dealerdesk/dealerdesk.go/lib/responses"
)

type Action string

const (
	ActionUserWrite     Action = "user:write"
	ActionUserDelete    Action = "user:delete"
	ActionVehicleWrite  Action = "vehicle:write"
	ActionVehicleDelete Action = "vehicle:delete"
	ActionTicketCreate  Action = "ticket:create"
	ActionTicketWrite   Action = "ticket:write"
	ActionTicketDelete  Action = "ticket:delete"
	ActionLedgerCreate  Action = "ledger:create"
	ActionLedgerWrite   Action = "ledger:write"
	ActionLedgerDelete  Action = "ledger:delete"
)

// policy mirrors the shop's rules: Owner runs the place, Manager can open
// workshop tickets and ledger rows. Admin is the technical superuser.
var policy = map[Action][]string{
	ActionUserWrite:     {"Owner"},
	ActionUserDelete:    {"Owner"},
	ActionVehicleWrite:  {"Owner"},
	ActionVehicleDelete: {"Owner"},
	ActionTicketCreate:  {"Owner", "Manager"},
	ActionTicketWrite:   {"Owner"},
	ActionTicketDelete:  {"Owner"},
	ActionLedgerCreate:  {"Owner", "Manager"},
	ActionLedgerWrite:   {"Owner"},
	ActionLedgerDelete:  {"Owner"},
}

func Can(role string, action Action) bool {
	if role == "Admin" {
		return true
	}
	for _, allowed := range policy[action] {
		if allowed == role {
			return true
		}
	}
	return false
}

// Middleware runs after the token middleware and expects UserRole on the
// context.
func Middleware(action Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("UserRole").(string)
			if !ok || role == "" {
				return c.JSON(http.StatusForbidden, responses.ForbiddenError)
			}
			if !Can(role, action) {
				return c.JSON(http.StatusForbidden, responses.ForbiddenError)
			}
			return next(c)
		}
	}
}
