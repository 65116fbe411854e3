// Package main is the entry point for the airline inventory service.
//
//	@title						Airline Inventory System API
//	@version					1.0
//	@description				Reference data, rotation scheduling, flight inventory and itinerary search for an airline back office.
//
//	@contact.name				Airline Ops Platform Team
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	// Import generated docs for swagger
	_ "github.com/airline-ops/airline-inventory-system/docs"

	"github.com/airline-ops/airline-inventory-system/internal/adapter/cache"
	airlinehttp "github.com/airline-ops/airline-inventory-system/internal/adapter/http"
	"github.com/airline-ops/airline-inventory-system/internal/adapter/http/middleware"
	"github.com/airline-ops/airline-inventory-system/internal/adapter/queue"
	"github.com/airline-ops/airline-inventory-system/internal/adapter/store/mysql"
	"github.com/airline-ops/airline-inventory-system/internal/config"
	"github.com/airline-ops/airline-inventory-system/internal/domain"
	"github.com/airline-ops/airline-inventory-system/internal/infrastructure/logger"
	"github.com/airline-ops/airline-inventory-system/internal/infrastructure/retry"
	"github.com/airline-ops/airline-inventory-system/internal/infrastructure/timeutil"
	"github.com/airline-ops/airline-inventory-system/internal/usecase"
)

const (
	version         = "1.0.0"
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "airline-inventory",
	})
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	// Open the database, retrying while it comes up.
	sqlDB, err := openDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer sqlDB.Close()

	clock := timeutil.NewRealClock()

	// Optional itinerary cache.
	var itineraryCache domain.ItineraryCache
	if cfg.Search.CacheEnabled && cfg.Redis.Addr != "" {
		c, err := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("Failed to connect to redis")
		}
		defer c.Close()
		itineraryCache = c
		log.Info().Str("addr", cfg.Redis.Addr).Msg("Itinerary cache enabled")
	}

	// Optional event publisher.
	var events domain.EventPublisher
	if cfg.Broker.URL != "" {
		pub, err := queue.NewPublisher(cfg.Broker.URL, clock)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to message broker")
		}
		defer pub.Close()
		events = pub
		log.Info().Msg("Event publishing enabled")
	}

	// Stores and transaction manager.
	countries := mysql.NewCountryStore(sqlDB)
	cities := mysql.NewCityStore(sqlDB)
	airports := mysql.NewAirportStore(sqlDB)
	airplanes := mysql.NewAirplaneStore(sqlDB)
	flights := mysql.NewFlightStore(sqlDB)
	rotations := mysql.NewRotationStore(sqlDB)
	tx := mysql.NewTxManager(sqlDB)

	// Use cases. The materializer gets a publisher-less flight use case and
	// announces each rotation's batch itself once it is committed; per-flight
	// events inside its transaction would outlive a rollback.
	flightUC := usecase.NewFlightUseCase(flights, airplanes, airports, events, log.Logger)
	rotationUC := usecase.NewRotationUseCase(rotations, airplanes, airports, tx, events, log.Logger)
	materializerFlights := usecase.NewFlightUseCase(flights, airplanes, airports, nil, log.Logger)
	materializerUC := usecase.NewMaterializer(rotations, materializerFlights, tx, events,
		cfg.Automation.HorizonDays, log.WithComponent("materializer").Logger)
	searchUC := usecase.NewItinerarySearch(flights, cities, countries, airports, airplanes, itineraryCache,
		cfg.Redis.TTL, log.WithComponent("itinerary-search").Logger)

	// HTTP server.
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	airlinehttp.RegisterRoutes(e, airlinehttp.Handlers{
		Reference: airlinehttp.NewReferenceHandler(countries, cities, airports, airplanes),
		Flight:    airlinehttp.NewFlightHandler(flightUC),
		Rotation:  airlinehttp.NewRotationHandler(rotationUC, materializerUC),
		Search:    airlinehttp.NewSearchHandler(searchUC),
	}, cfg.Auth.JWTSecret, version)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// openDatabase connects to MySQL with startup retries so the service
// tolerates the database container coming up after it.
func openDatabase(cfg *config.Config) (db *sql.DB, err error) {
	err = retry.Do(context.Background(), func() error {
		db, err = mysql.Open(
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.Name,
		)
		return err
	}, retry.StartupConfig)
	return db, err
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
