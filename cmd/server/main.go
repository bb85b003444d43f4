// Package main is the entry point for the ski stay search service.
//
//	@title						Ski Stay Search API
//	@version					1.0.0
//	@description				A search aggregation service that finds short-term home rentals near ski resorts via the Kindred home swapping platform.
//
//	@contact.name				API Support
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/ski-stay/ski-stay-search/docs"

	// Application layers
	apihttp "github.com/ski-stay/ski-stay-search/internal/adapter/http"
	"github.com/ski-stay/ski-stay-search/internal/adapter/http/middleware"
	"github.com/ski-stay/ski-stay-search/internal/adapter/kindred"
	"github.com/ski-stay/ski-stay-search/internal/adapter/resorts"
	"github.com/ski-stay/ski-stay-search/internal/adapter/routing"
	"github.com/ski-stay/ski-stay-search/internal/config"
	"github.com/ski-stay/ski-stay-search/internal/infrastructure/logger"
	"github.com/ski-stay/ski-stay-search/internal/infrastructure/pacing"
	"github.com/ski-stay/ski-stay-search/internal/infrastructure/timeutil"
	"github.com/ski-stay/ski-stay-search/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	appLog := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "ski-stay-search",
	})

	appLog.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	// Resort catalog
	catalog, err := resorts.LoadFile(cfg.Resorts.CSVPath)
	if err != nil {
		appLog.Fatal().Err(err).Str("path", cfg.Resorts.CSVPath).Msg("Failed to load resort catalog")
	}
	appLog.Info().Int("resorts", catalog.Len()).Msg("Resort catalog loaded")

	// Upstream platform clients
	gqlClient := kindred.NewClient(kindred.Config{
		URL:           cfg.Kindred.URL,
		ClientName:    cfg.Kindred.ClientName,
		ClientVersion: cfg.Kindred.ClientVersion,
		Timeout:       cfg.Kindred.Timeout,
	})
	searchClient := kindred.NewSearchClient(gqlClient,
		pacing.NewInterval(cfg.Search.PageInterval),
		timeutil.NewRealClock(),
		appLog.Logger)
	authClient := kindred.NewAuthClient(gqlClient)

	// Driving-time provider
	router := routing.NewOpenRouteClient(routing.Config{
		URL:     cfg.Routing.URL,
		APIKey:  cfg.Routing.APIKey,
		Timeout: cfg.Routing.Timeout,
	}, appLog.Logger)
	if cfg.Routing.APIKey == "" {
		appLog.Warn().Msg("No routing API key configured; driving times will be unknown")
	}

	// Use case and handler
	searchUseCase := usecase.NewHomeSearchUseCase(catalog, searchClient, router,
		&usecase.Config{PageSize: cfg.Search.PageSize}, appLog.Logger)
	handler := apihttp.NewHandler(searchUseCase, authClient, catalog)

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, appLog.Logger, cfg.Server.AllowedOrigins)
	apihttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		appLog.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, appLog)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, appLog *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	appLog.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		appLog.Error().Err(err).Msg("Error during server shutdown")
	}

	appLog.Info().Msg("Server stopped")
}
