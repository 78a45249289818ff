package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-service/internal/api"
	"storefront-service/internal/catalog"
	"storefront-service/internal/config"
	"storefront-service/internal/session"
	"storefront-service/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

const defaultAppName = "StorefrontService"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("INFO: No .env file found or failed to load, relying on system environment")
	}
	logger := log.New(os.Stdout, fmt.Sprintf("[%s] ", defaultAppName), log.LstdFlags|log.Lshortfile|log.Lmicroseconds)
	logger.Println("INFO: Starting service...")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("FATAL: Error loading configuration: %v", err)
	}
	logger.Printf("INFO: Configuration loaded for APP_ENV: %s, LogLevel: %s", cfg.AppEnv, cfg.LogLevel)

	// --- Catalog Load ---
	// The dataset is loaded once and shared read-only for the process
	// lifetime. A storefront without a catalog cannot serve, so any
	// failure here is fatal.
	cat, err := loadCatalog(logger, cfg)
	if err != nil {
		logger.Fatalf("FATAL: Failed to load catalog: %v", err)
	}
	logger.Printf("INFO: Catalog loaded: %d products, %d categories", len(cat.Products()), len(cat.Categories()))

	sessions := session.NewManager()
	httpAPIHandler := api.NewHTTPHandler(cat)

	// --- HTTP Server ---
	httpRouter := chi.NewRouter()
	setupBaseMiddleware(httpRouter, logger)
	registerHealthCheck(httpRouter, logger, cat)
	httpRouter.Group(func(r chi.Router) {
		r.Use(api.SessionMiddleware(sessions))
		httpAPIHandler.RegisterRoutes(r)
	})

	httpServer := &http.Server{
		Addr:         ":" + cfg.HttpServer.Port,
		Handler:      httpRouter,
		ReadTimeout:  cfg.HttpServer.TimeoutRead,
		WriteTimeout: cfg.HttpServer.TimeoutWrite,
		IdleTimeout:  cfg.HttpServer.TimeoutIdle,
	}

	go func() {
		logger.Printf("INFO: HTTP server listening on port %s", cfg.HttpServer.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("FATAL: HTTP server ListenAndServe error: %v", err)
		}
		logger.Println("INFO: HTTP server has stopped.")
	}()

	// --- Graceful Shutdown ---
	shutdownComplete := make(chan struct{})
	go waitForShutdown(logger, httpServer, shutdownComplete)

	<-shutdownComplete
	logger.Println("INFO: Service shutdown sequence finished.")
}

// loadCatalog selects the dataset provider from configuration and loads
// the catalog. The Postgres connection, when used, is closed as soon as
// the load completes: the catalog lives in memory afterwards.
func loadCatalog(logger *log.Logger, cfg *config.Config) (*catalog.Catalog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cfg.Catalog.Source {
	case config.SourcePostgres:
		db, err := sql.Open("postgres", cfg.Postgres.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open database connection: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		source := store.NewPostgresSource(db)
		defer func() {
			if err := source.Close(); err != nil {
				logger.Printf("WARN: Error closing catalog database: %v", err)
			}
		}()
		logger.Println("INFO: Loading catalog from Postgres")
		return source.LoadCatalog(ctx)
	default:
		logger.Printf("INFO: Loading catalog from file %s", cfg.Catalog.File)
		return store.NewFileSource(cfg.Catalog.File).LoadCatalog(ctx)
	}
}

func setupBaseMiddleware(router *chi.Mux, logger *log.Logger) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))
	logger.Println("INFO: Base HTTP middleware registered.")
}

func registerHealthCheck(router *chi.Mux, logger *log.Logger, cat *catalog.Catalog) {
	healthPath := "/api/v1/healthz"
	router.Get(healthPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"healthy","serviceName":%q,"products":%d,"timestamp":%q}`,
			defaultAppName, len(cat.Products()), time.Now().UTC().Format(time.RFC3339))
	})
	logger.Printf("INFO: HTTP health check registered at %s", healthPath)
}

func waitForShutdown(logger *log.Logger, httpServer *http.Server, done chan<- struct{}) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Printf("INFO: Received signal %v, starting graceful shutdown...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Printf("WARN: HTTP server graceful shutdown failed: %v", err)
	} else {
		logger.Println("INFO: HTTP server shut down gracefully.")
	}

	close(done)
}
