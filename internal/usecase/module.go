package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/attesto/attesto/internal/config"
	"github.com/attesto/attesto/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newPricingUseCase,
	NewAuthUseCase,
	NewTranslatorUseCase,
	NewOrderUseCase,
	NewAssignmentUseCase,
	newDeliveryUseCase,
)

func newPricingUseCase(cfg *config.Config) *PricingUseCase {
	return NewPricingUseCase(cfg.BaseRateCents, cfg.RushMultiplier)
}

type deliveryParams struct {
	fx.In

	Orders   repository.OrderRepository
	Files    repository.OrderFileRepository
	Blobs    BlobStore
	Notifier Notifier
	Logger   *slog.Logger
	Config   *config.Config
}

func newDeliveryUseCase(p deliveryParams) *DeliveryUseCase {
	return NewDeliveryUseCase(
		p.Orders,
		p.Files,
		p.Blobs,
		p.Notifier,
		p.Logger,
		p.Config.MaxUploadBytes,
		p.Config.SignedURLTTL,
		p.Config.OriginalsBucket,
		p.Config.TranslationsBucket,
	)
}
