// Package app wires configuration, database, services, and the HTTP
// server together and runs the process until shutdown.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/foodtracker-backend/internal/adapter/postgres"
	daypg "github.com/heartmarshall/foodtracker-backend/internal/adapter/postgres/day"
	mealpg "github.com/heartmarshall/foodtracker-backend/internal/adapter/postgres/meal"
	productpg "github.com/heartmarshall/foodtracker-backend/internal/adapter/postgres/product"
	settingspg "github.com/heartmarshall/foodtracker-backend/internal/adapter/postgres/settings"
	statspg "github.com/heartmarshall/foodtracker-backend/internal/adapter/postgres/stats"
	"github.com/heartmarshall/foodtracker-backend/internal/config"
	"github.com/heartmarshall/foodtracker-backend/internal/service/day"
	"github.com/heartmarshall/foodtracker-backend/internal/service/meal"
	"github.com/heartmarshall/foodtracker-backend/internal/service/product"
	"github.com/heartmarshall/foodtracker-backend/internal/service/settings"
	"github.com/heartmarshall/foodtracker-backend/internal/service/stats"
	"github.com/heartmarshall/foodtracker-backend/internal/transport/middleware"
	"github.com/heartmarshall/foodtracker-backend/internal/transport/rest"
)

// defaultCORSOrigins is used when CORS_ORIGINS is not configured.
var defaultCORSOrigins = []string{
	"https://my-miniapp-production.up.railway.app",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// Run is the application entry point. It loads configuration, connects
// to the database, builds the service and transport layers, and serves
// HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := NewLogger(cfg.Log)

	log.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("env", cfg.App.Env),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	userID := cfg.App.UserID()

	dayRepo := daypg.New(pool)
	mealRepo := mealpg.New(pool)
	productRepo := productpg.New(pool)
	settingsRepo := settingspg.New(pool)
	statsRepo := statspg.New(pool)

	daySvc := day.NewService(log, dayRepo, userID)
	mealSvc := meal.NewService(log, mealRepo, userID)
	productSvc := product.NewService(log, productRepo, userID)
	settingsSvc := settings.NewService(log, settingsRepo, userID)
	statsSvc := stats.NewService(log, statsRepo, settingsRepo, userID)

	production := cfg.App.IsProduction()

	handlers := rest.Handlers{
		Day:      rest.NewDayHandler(daySvc, log, production),
		Meals:    rest.NewMealHandler(mealSvc, log, production),
		Products: rest.NewProductHandler(productSvc, log, production, cfg.App.RecognitionStubEnabled),
		Settings: rest.NewSettingsHandler(settingsSvc, log, production),
		Stats:    rest.NewStatsHandler(statsSvc, log, production),
		Health:   rest.NewHealthHandler(pool, log),
	}
	if cfg.App.EnableDocs {
		handlers.Docs = rest.NewDocsHandler()
	}

	origins := cfg.CORS.ParsedOrigins()
	if len(origins) > 0 {
		log.Info("enabling CORS for origins from settings", slog.Any("origins", origins))
	} else {
		log.Warn("CORS_ORIGINS is empty; falling back to default origins", slog.Any("origins", defaultCORSOrigins))
		origins = defaultCORSOrigins
	}

	handler := middleware.Chain(
		middleware.Recovery(log),
		middleware.RequestID,
		middleware.Logger(log),
		middleware.CORS(origins, cfg.CORS),
	)(rest.NewRouter(handlers))

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	log.Info("stopped")
	return nil
}
