package main

import (
	"context"
	"log/slog"
	"os"

	"projectforge/config"
	"projectforge/internal/delivery"
	"projectforge/internal/delivery/worker"
	"projectforge/internal/delivery/worker/handler"
	"projectforge/internal/domain/service"
	"projectforge/internal/infra/cache"
	logs "projectforge/internal/infra/log"
	"projectforge/internal/infra/persistence/postgres"
	"projectforge/internal/usecase"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectCache(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		func() service.Clock { return service.SystemClock{} },
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewGroupRepository,
			postgres.NewOrderRepository,
			postgres.NewInvoiceRepository,
		),
	)
}

// injectCache provides the caches the worker keeps in sync with the
// history events of other processes.
func injectCache() fx.Option {
	return fx.Options(
		fx.Provide(
			cache.New,
			func(c *cache.OrderCache) handler.OrderCache { return c },
			fx.Annotate(
				func(c *cache.UserGroupCache) usecase.CacheExpirer { return c },
				fx.ResultTags(`name:"userGroupCache"`),
			),
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
