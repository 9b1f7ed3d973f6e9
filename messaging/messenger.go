// Package messaging sends one-off texts (OTP codes) to customers' phones.
// Delivery is best effort everywhere this is used: the caller logs failures
// and carries on.
package messaging

import (
	"context"

	"github.com/ziflex/lecho/v3"
)

type Messenger interface {
	Send(ctx context.Context, to string, text string) error
}

// LogMessenger is used when no provider credentials are configured. The
// message lands in the server log instead of on a phone, which keeps the
// reset flow testable in development.
type LogMessenger struct {
	Logger *lecho.Logger
}

func (m *LogMessenger) Send(ctx context.Context, to string, text string) error {
	m.Logger.Infof("messaging disabled, would send to %s: %s", to, text)
	return nil
}
