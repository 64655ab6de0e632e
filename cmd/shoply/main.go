package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shoply/api/internal/api/handlers"
	"github.com/shoply/api/internal/api/middleware"
	"github.com/shoply/api/internal/cache"
	"github.com/shoply/api/internal/config"
	"github.com/shoply/api/internal/health"
	"github.com/shoply/api/internal/metrics"
	repository "github.com/shoply/api/internal/repositories"
	service "github.com/shoply/api/internal/services"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Database setup (runs pending migrations)
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("Database connection closed")
		}
	}()

	// Redis setup
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	productCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	defer productCache.Close()

	categoryService := service.NewCategoryService(repos.Category)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productService := service.NewProductService(repos.Product, repos.Category, productCache, cfg.Cache.ProductTTL)
	productHandler := handlers.NewProductHandler(productService)
	cartService := service.NewCartService(repos.Cart, repos.Product)
	cartHandler := handlers.NewCartHandler(cartService)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("Error creating health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/carts/{userId}", cartHandler.CreateCart())
	routerMux.HandleFunc("POST /api/carts/{cartId}/items", cartHandler.AddItem())
	routerMux.HandleFunc("GET /api/carts/{cartId}/items", cartHandler.GetItems())
	routerMux.HandleFunc("PUT /api/carts/{cartId}/items/{itemId}", cartHandler.UpdateItem())
	routerMux.HandleFunc("DELETE /api/carts/{cartId}/items/{itemId}", cartHandler.RemoveItem())
	routerMux.HandleFunc("POST /api/categories", categoryHandler.CreateCategory())
	routerMux.HandleFunc("GET /api/categories", categoryHandler.ListCategories())
	routerMux.HandleFunc("POST /api/products", productHandler.CreateProduct())
	routerMux.HandleFunc("GET /api/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("PUT /api/products/{id}", productHandler.UpdateProduct())
	routerMux.HandleFunc("GET /api/products/category/{id}", productHandler.ListProductsByCategory())
	routerMux.HandleFunc("GET /api/products/categories", productHandler.ListProductsByCategories())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully. All connections closed.")
	}
}
