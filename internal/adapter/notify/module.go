package notify

import (
	"log/slog"

	"go.uber.org/fx"
)

func newSender(logger *slog.Logger) Sender {
	return NewLogSender(logger)
}

var Module = fx.Options(
	fx.Provide(newSender),
)
