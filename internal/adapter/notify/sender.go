package notify

import (
	"context"
	"log/slog"

	"github.com/attesto/attesto/internal/domain/model"
)

// Sender delivers a single notification to its recipient.
type Sender interface {
	Send(ctx context.Context, n model.Notification) error
}

// LogSender records notifications to the structured log. It stands in for an
// email or push channel until one is connected.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender constructs a log-backed sender.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send writes the notification as a structured log record.
func (s *LogSender) Send(_ context.Context, n model.Notification) error {
	s.logger.Info("notification",
		slog.Int64("recipient_id", n.RecipientID),
		slog.String("kind", string(n.Kind)),
		slog.String("order_id", n.OrderID),
		slog.String("message", n.Message))
	return nil
}
