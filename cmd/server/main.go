package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"carshield-admin-api/internal/config"
	"carshield-admin-api/internal/database"
	"carshield-admin-api/internal/handler"
	"carshield-admin-api/internal/repository"
	"carshield-admin-api/internal/service"
)

const serviceName = "carshield-admin-api"

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	slog.Info("starting " + serviceName)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	slog.Info("connecting to database", "host", cfg.Database.Host, "database", cfg.Database.Name)
	db, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database ready")

	// Repositories
	clientRepo := repository.NewClientRepo(db)
	orderRepo := repository.NewOrderRepo(db)

	// The intake service wires each wizard session to the duplicate lookup
	// and the commit stores, all served by the repositories.
	intakeSvc := service.NewIntakeService(clientRepo, clientRepo, orderRepo)

	// Handlers
	healthHandler := handler.NewHealthHandler(db)
	wizardHandler := handler.NewWizardHandler(intakeSvc)
	clientHandler := handler.NewClientHandler(clientRepo)
	orderHandler := handler.NewOrderHandler(orderRepo)

	// Router
	r := chi.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS middleware
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	// Routes
	r.Get("/health", healthHandler.Check)

	r.Route("/api/v1", func(r chi.Router) {
		wizardHandler.Routes(r)
		r.Get("/clients", clientHandler.List)
		r.Get("/clients/exists", clientHandler.Exists)
		r.Get("/orders", orderHandler.List)
		r.Get("/orders/{id}", orderHandler.Get)
	})

	// Server
	srv := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      otelhttp.NewHandler(r, serviceName),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		slog.Info("server started", "port", cfg.APIPort)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shut down server", "error", err)
	}

	slog.Info("server stopped")
}
