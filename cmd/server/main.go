package main

import (
	"context"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"ulascansenturk/weather-records/config"
	"ulascansenturk/weather-records/internal/api/v1/handlers"
	"ulascansenturk/weather-records/internal/db/observation"
	"ulascansenturk/weather-records/internal/ingest"
	"ulascansenturk/weather-records/internal/inmemorycache"
	"ulascansenturk/weather-records/internal/observability"
	"ulascansenturk/weather-records/internal/service"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Str("env", conf.Env).
		Timestamp().
		Logger()

	ctx, mainCtxStop := context.WithCancel(context.Background())

	db, dbErr := initializeDatabase(conf)
	if dbErr != nil {
		log.Fatal().Err(dbErr).Msg("failed to initialize database")
	}

	metrics := observability.NewMetrics()

	observationRepo := observation.NewRepository(db)

	ingester := ingest.NewCSVIngester(observationRepo, conf.IngestSkipHeader, clockwork.NewRealClock(), metrics)

	reportCache := inmemorycache.NewInMemoryCacheProvider(conf.ReportCleanupInterval)

	observationService := service.NewObservationService(observationRepo, ingester, reportCache, conf.ReportTTL)

	handler := handlers.NewObservationHandler(observationService, conf.HTTPTimeoutDuration(), conf.UploadMaxFileSize)

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           otelhttp.NewHandler(handlers.NewRouter(handler, metrics), conf.ServiceName),
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
		reportCache.Close()
	})

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil {
		log.Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
}

func initializeDatabase(config *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.DatabaseDSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&observation.Observation{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(config.DBMaxIdleConns)
	sqlDB.SetMaxOpenConns(config.DBMaxOpenConns)
	sqlDB.SetConnMaxLifetime(config.DBConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
