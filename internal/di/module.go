package di

import (
	"go.uber.org/fx"

	"github.com/attesto/attesto/internal/adapter/blobstore"
	"github.com/attesto/attesto/internal/adapter/notify"
	"github.com/attesto/attesto/internal/adapter/payment"
	"github.com/attesto/attesto/internal/app"
	"github.com/attesto/attesto/internal/config"
	"github.com/attesto/attesto/internal/logger"
	"github.com/attesto/attesto/internal/pkg/auth"
	"github.com/attesto/attesto/internal/server/http/handlers"
	"github.com/attesto/attesto/internal/server/http/middleware"
	"github.com/attesto/attesto/internal/server/http/router"
	"github.com/attesto/attesto/internal/storage/postgres"
	"github.com/attesto/attesto/internal/usecase"
	"github.com/attesto/attesto/internal/worker"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		payment.Module,
		blobstore.Module,
		notify.Module,
		usecase.Module,
		fx.Provide(func(client payment.Client) usecase.PaymentGateway { return client }),
		fx.Provide(func(client blobstore.Client) usecase.BlobStore { return client }),
		fx.Provide(func(dispatcher *worker.Dispatcher) usecase.Notifier { return dispatcher }),
		fx.Provide(func(facade *app.MarketplaceFacade) handlers.MarketplaceFacade { return facade }),
		fx.Provide(func(facade *app.MarketplaceFacade) middleware.Authenticator { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
