// Package mailer is the outbound-email collaborator. Delivery transport is
// out of scope for this service, so the default implementation only logs.
package mailer

import (
	"context"
	"log/slog"
)

// Mailer dispatches user-facing notification emails.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email, resetURL string) error
	SendPasswordChanged(ctx context.Context, email string) error
}

// LogMailer writes outbound mail to the structured log instead of sending it.
type LogMailer struct{}

// NewLogMailer creates a new LogMailer.
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, email, resetURL string) error {
	slog.InfoContext(ctx, "password reset email dispatched", "to", email, "reset_url", resetURL)
	return nil
}

func (m *LogMailer) SendPasswordChanged(ctx context.Context, email string) error {
	slog.InfoContext(ctx, "password changed email dispatched", "to", email)
	return nil
}
