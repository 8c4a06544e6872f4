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
	"github.com/go-chi/cors"

	"github.com/felipesousa7/ecommerce-order-system/internal/config"
	"github.com/felipesousa7/ecommerce-order-system/internal/database"
	"github.com/felipesousa7/ecommerce-order-system/internal/handler"
	"github.com/felipesousa7/ecommerce-order-system/internal/model"
	"github.com/felipesousa7/ecommerce-order-system/internal/mw"
	"github.com/felipesousa7/ecommerce-order-system/internal/service"
	"github.com/felipesousa7/ecommerce-order-system/internal/storage"
	"github.com/felipesousa7/ecommerce-order-system/internal/worker"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.NewDB(cfg.DatabaseURI)
	if err != nil {
		slog.Error("failed to connect to DB", "error", err)
		os.Exit(1)
	}
	defer database.CloseDB(db)

	if err := database.InitSchema(db); err != nil {
		slog.Error("failed to init DB schema", "error", err)
		os.Exit(1)
	}

	// Stores
	userStore := storage.NewPGUserStore(db)
	productStore := storage.NewPGProductStore(db)
	orderStore := storage.NewPGOrderStore(db)

	// Background worker
	pool := worker.NewPool()
	lifecycle := worker.NewLifecycle(pool, orderStore, service.NewPaymentSimulator())

	// Services
	authSvc := service.NewAuthService(userStore)
	productSvc := service.NewProductService(productStore)
	orderSvc := service.NewOrderService(orderStore, productStore, userStore, lifecycle)

	// Router
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public routes
	r.Post("/api/auth/register", handler.RegisterHandler(authSvc, cfg.JWTSecret))
	r.Post("/api/auth/login", handler.LoginHandler(authSvc, cfg.JWTSecret))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.JWTSecret))

		r.Get("/api/products", handler.ListProductsHandler(productSvc))
		r.Get("/api/products/available", handler.ListAvailableProductsHandler(productSvc))
		r.Get("/api/products/{id}", handler.GetProductHandler(productSvc))

		r.Post("/api/orders", handler.CreateOrderHandler(orderSvc))
		r.Get("/api/orders", handler.ListOrdersHandler(orderSvc))
		r.Get("/api/orders/{id}", handler.GetOrderHandler(orderSvc))

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireRole(model.RoleAdmin))

			r.Post("/api/products", handler.CreateProductHandler(productSvc))
			r.Put("/api/products/{id}", handler.UpdateProductHandler(productSvc))
			r.Delete("/api/products/{id}", handler.DeleteProductHandler(productSvc))

			r.Put("/api/orders/{id}/status", handler.UpdateOrderStatusHandler(orderSvc))
		})
	})

	srv := &http.Server{
		Addr:         cfg.RunAddress,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	slog.Info("starting server", "addr", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
		}
	}()

	<-quit
	slog.Info("shutting down...")

	ctxShut, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()

	if err := srv.Shutdown(ctxShut); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	// Let in-flight order lifecycles finish before closing the DB.
	pool.Wait(30 * time.Second)

	slog.Info("server stopped")
}
