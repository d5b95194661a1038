package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rogerio-castellano/webstore/internal/auth"
	"github.com/rogerio-castellano/webstore/internal/cart"
	"github.com/rogerio-castellano/webstore/internal/client"
	"github.com/rogerio-castellano/webstore/internal/config"
	"github.com/rogerio-castellano/webstore/internal/db"
	"github.com/rogerio-castellano/webstore/internal/events"
	api "github.com/rogerio-castellano/webstore/internal/http"
	"github.com/rogerio-castellano/webstore/internal/http/handlers"
	rl "github.com/rogerio-castellano/webstore/internal/http/rate_limiter"
	"github.com/rogerio-castellano/webstore/internal/redissvc"
	"github.com/rogerio-castellano/webstore/internal/repo"
)

// @title WebStore API
// @version 1.0
// @description Paged product catalog, cart, orders and employees.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", "", "path to a config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	auth.Configure(cfg.JWTSecret, cfg.TokenTTL)
	handlers.SetCatalogPageSize(cfg.CatalogPage)

	var database *sql.DB
	if cfg.StorageDriver == config.DriverPostgres {
		database, err = db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("Could not connect to database:", err)
		}
		defer database.Close()

		if err := db.EnsureSchema(database); err != nil {
			log.Fatal(err)
		}
	}

	var redisService *redissvc.RedisService
	if cfg.RedisAddr != "" {
		redisService, err = redissvc.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			log.Fatalf("Could not connect to Redis: %v", err)
		}
		defer redisService.Close()
	}

	var productData repo.ProductData
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		productData = repo.NewPostgresProductData(database)
	case config.DriverAPI:
		productData = client.NewProductsClient(cfg.APIBaseURL, nil)
	default:
		productData = repo.NewInMemoryProductData(repo.DefaultCatalogSeed())
	}
	if redisService != nil {
		productData = repo.NewCachedProductData(productData, redisService, cfg.CacheTTL)
	}
	handlers.SetProductData(productData)

	if database != nil {
		handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
		handlers.SetOrderRepo(repo.NewPostgresOrderRepository(database))
		handlers.SetEmployeesData(repo.NewPostgresEmployeesData(database))
	} else {
		handlers.SetUserRepo(repo.NewInMemoryUserRepository())
		handlers.SetOrderRepo(repo.NewInMemoryOrderRepository())
		handlers.SetEmployeesData(repo.NewInMemoryEmployeesData(nil))
	}

	var cartStore repo.CartStore = repo.NewInMemoryCartStore()
	if redisService != nil {
		cartStore = repo.NewRedisCartStore(redisService, cfg.CartTTL)
	}
	handlers.SetCartService(cart.NewService(cartStore, productData))

	if cfg.RabbitMQURL != "" {
		publisher, err := events.NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("Could not connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
		handlers.SetPublisher(publisher)
	}

	limiter := rl.New(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.StartVisitorCleanupLoop(ctx, time.Minute, 5*time.Minute)

	srv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: api.NewRouter(
			api.WithAllowedOrigins(cfg.AllowedOrigins),
			api.WithRateLimiter(limiter),
		),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown failed: %v", err)
		}
	}()

	log.Printf("Server running on %s (storage: %s)", cfg.HTTPAddr, cfg.StorageDriver)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
