package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"ulascansenturk/hiking-weather-service/config"
	"ulascansenturk/hiking-weather-service/internal/api/v1/handlers"
	"ulascansenturk/hiking-weather-service/internal/auth"
	"ulascansenturk/hiking-weather-service/internal/db/users"
	"ulascansenturk/hiking-weather-service/internal/metrics"
	"ulascansenturk/hiking-weather-service/internal/providers"
	"ulascansenturk/hiking-weather-service/internal/service"
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
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
	log.Logger = logger

	location, err := conf.Location()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load timezone")
	}

	ctx, mainCtxStop := context.WithCancel(context.Background())

	db, dbErr := initializeDatabase(conf)
	if dbErr != nil {
		logger.Fatal().Err(dbErr).Msg("failed to initialize database")
	}

	collector := metrics.NewCollector(conf.MetricsNamespace, prometheus.DefaultRegisterer)

	weatherAPIService := providers.NewWeatherAPIService(providers.Config{
		ForecastBaseURL:   conf.ForecastBaseURL,
		AirQualityBaseURL: conf.AirQualityBaseURL,
		Timezone:          conf.Timezone,
		Timeout:           conf.UpstreamTimeout,
	}, collector)

	aggregator := service.NewWeatherRequestAggregator(weatherAPIService, location)
	weatherService := service.NewWeatherService(aggregator)

	authService := auth.NewService(auth.Config{
		TokenSecret: conf.JWTSecret,
		TokenTTL:    conf.JWTTTL,
		Issuer:      conf.ServiceName,
	}, users.NewRepository(db))

	router := handlers.NewRouter(handlers.RouterConfig{
		Weather:  handlers.NewWeatherHandler(weatherService, conf.HTTPTimeoutDuration()),
		Auth:     handlers.NewAuthHandler(authService, conf.HTTPTimeoutDuration()),
		Metrics:  collector,
		Gatherer: prometheus.DefaultGatherer,
		Logger:   logger,
	})

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().Str("timezone", location.String()).Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil {
		log.Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
}

func initializeDatabase(config *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&users.User{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
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
