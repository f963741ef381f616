package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-api-response/internal/apiconfig"
	"github.com/MKhiriev/go-api-response/internal/config"
	"github.com/MKhiriev/go-api-response/internal/handler"
	"github.com/MKhiriev/go-api-response/internal/logger"
	"github.com/MKhiriev/go-api-response/internal/serializer"
	"github.com/MKhiriev/go-api-response/internal/server"
	"github.com/MKhiriev/go-api-response/internal/service"
	"github.com/MKhiriev/go-api-response/internal/store"
	"github.com/MKhiriev/go-api-response/internal/workers"
	"github.com/MKhiriev/go-api-response/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("api-response-server").Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = build.BuildVersion()
	}

	log := logger.NewLogger(cfg.App.Name, logger.WithLevel(logger.ParseLevel(cfg.App.LogLevel, cfg.App.Debug)))
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	services, err := service.NewServices(store.NewWidgetRepository(db, log), *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	serializers := serializer.NewRegistry()
	resolver, err := apiconfig.New(cfg.APIResponse.Defaults, cfg.APIResponse.Paths,
		apiconfig.WithSerializerCheck(func(name string) error {
			_, err := serializers.Lookup(name)
			return err
		}),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error compiling api response config")
	}
	resolvers := apiconfig.NewStore(resolver)
	log.Info().Int("rules", resolver.Rules()).Bool("debug", cfg.App.Debug).Msg("api response config loaded")

	handlers, err := handler.NewHandlers(services, resolvers, serializers, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(
		workers.NewConfigReloader(cfg.ConfigFilePath, resolvers, serializers, log),
	).Run(ctx)

	srv.RunServer(ctx)
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
