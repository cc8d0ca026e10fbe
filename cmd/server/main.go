package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/newrban/cotizador-api/internal/auth"
	"github.com/newrban/cotizador-api/internal/config"
	"github.com/newrban/cotizador-api/internal/handlers"
	"github.com/newrban/cotizador-api/internal/middleware"
	"github.com/newrban/cotizador-api/internal/repository"
	"github.com/newrban/cotizador-api/internal/service"
	"github.com/newrban/cotizador-api/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting catalog and order api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"catalog_file", cfg.Catalog.FilePath,
		"max_products", cfg.Catalog.MaxProducts,
		"log_level", cfg.LogLevel,
	)

	// Initialize repositories
	catalogRepo := repository.NewFileCatalogRepository(cfg.Catalog.FilePath, log)

	// Warm-load the catalog so a corrupt file is reported at startup, not on first request
	products, err := catalogRepo.Load(context.Background())
	if err != nil {
		log.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}
	log.Info("catalog loaded", "products", len(products))

	// Initialize services
	catalogService := service.NewCatalogService(catalogRepo, cfg.Catalog.MaxProducts, log)
	orderService := service.NewOrderService(catalogRepo, log)
	sessions := auth.NewManager(cfg.Admin.Password)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	authHandler := handlers.NewAuthHandler(sessions, log)
	catalogHandler := handlers.NewCatalogHandler(catalogService, log)
	orderHandler := handlers.NewOrderHandler(orderService, cfg.WhatsApp, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.AdminTokenHeader},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Admin login
		r.Post("/admin/login", authHandler.Login)

		// Catalog endpoints
		r.Get("/catalog", catalogHandler.GetCatalog)
		r.With(middleware.AdminAuth(sessions)).Put("/catalog", catalogHandler.SaveCatalog)

		// Order endpoints
		r.Post("/order/quote", orderHandler.Quote)
		r.Post("/order/export", orderHandler.ExportExcel)
		r.Post("/order/whatsapp", orderHandler.ExportWhatsApp)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
