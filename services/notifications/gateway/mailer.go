package gateway

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/piresc/duespay/internal/pkg/logger"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/internal/utils"
	"github.com/piresc/duespay/services/notifications"
)

// LogMailer writes emails to the structured log instead of delivering them
type LogMailer struct {
	from string
}

// NewLogMailer creates a mailer that only logs
func NewLogMailer(from string) *LogMailer {
	return &LogMailer{from: from}
}

var _ notifications.Mailer = (*LogMailer)(nil)

// Send logs the email after checking its recipient
func (m *LogMailer) Send(ctx context.Context, email models.Email) error {
	if _, err := mail.ParseAddress(email.To); err != nil {
		return fmt.Errorf("invalid recipient %q: %w", email.To, err)
	}

	logger.InfoCtx(ctx, "Email queued",
		logger.String("from", m.from),
		logger.String("to", email.To),
		logger.String("subject", email.Subject),
		logger.String("body", utils.Truncate(email.Body, 200)))
	return nil
}
