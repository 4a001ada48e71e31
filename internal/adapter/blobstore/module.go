package blobstore

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/attesto/attesto/internal/config"
)

func newClient(cfg *config.Config, logger *slog.Logger) (Client, error) {
	return NewHTTPClient(cfg.BlobStoreAddress, logger)
}

var Module = fx.Options(
	fx.Provide(newClient),
)
