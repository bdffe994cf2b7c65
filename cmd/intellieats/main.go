package main

import (
	"context"
	"log/slog"
	"os"

	"intellieats/config"
	"intellieats/internal/delivery"
	"intellieats/internal/delivery/http"
	"intellieats/internal/delivery/http/middleware"
	"intellieats/internal/delivery/http/router/handler"
	"intellieats/internal/domain/service"
	"intellieats/internal/infra/auth"
	"intellieats/internal/infra/foodsource/openfoodfacts"
	"intellieats/internal/infra/foodsource/usda"
	logs "intellieats/internal/infra/log"
	"intellieats/internal/infra/persistence/postgres"
	"intellieats/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewFoodRepository,
			postgres.NewEntryRepository,
			postgres.NewAnalysisRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			newBarcodeSource,
			newTextSearchSource,
		),
	)
}

// newBarcodeSource creates the Open Food Facts barcode client
func newBarcodeSource(cfg *config.Config) service.BarcodeSource {
	return openfoodfacts.NewClient(
		cfg.FoodSources.OpenFoodFacts.BaseURL,
		cfg.FoodSources.OpenFoodFacts.Timeout,
	)
}

// newTextSearchSource creates the FoodData Central search client
func newTextSearchSource(cfg *config.Config, logger *slog.Logger) service.TextSearchSource {
	return usda.NewClient(
		logger,
		cfg.FoodSources.USDA.APIKey,
		cfg.FoodSources.USDA.BaseURL,
		cfg.FoodSources.USDA.PageSize,
		cfg.FoodSources.USDA.Timeout,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCatalogService,
			impl.NewLedgerService,
			impl.NewAnalysisService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewUserHandler,
			handler.NewFoodHandler,
			handler.NewEntryHandler,
			handler.NewAnalysisHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
				os.Exit(1)
			}
		}()
	}
}
