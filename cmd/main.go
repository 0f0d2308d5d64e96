package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"

	"acmedash/internal/caching"
	"acmedash/internal/common"
	"acmedash/internal/config"
	"acmedash/internal/handlers"
	"acmedash/internal/jobs"
	"acmedash/internal/repositories"
	"acmedash/internal/seed"
	"acmedash/internal/services"
	"acmedash/pkg/database"
)

func main() {
	// .env is optional; real deployments configure the environment
	// directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("WARNING: could not load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Process-wide storage clients: one relational pool, one document
	// client, constructed here and closed at shutdown.
	pool, err := database.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	mongoClient, err := database.NewMongoClient(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to document store: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Failed to disconnect document store: %v", err)
		}
	}()
	mongoDB := mongoClient.Database(cfg.MongoDatabase)

	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		jwtSecret = random.String(32) // Generate random secret for development
		log.Printf("WARNING: JWT_SECRET not set, using a generated secret; sessions will not survive restarts")
	}

	// Create repositories
	userRepo := repositories.NewUserRepo(pool)
	customerRepo := repositories.NewCustomerRepo(pool)
	invoiceRepo := repositories.NewInvoiceRepo(pool)
	revenueRepo := repositories.NewRevenueRepo(pool)
	summaryRepo := repositories.NewCustomerSummaryRepo(mongoDB)

	// Create cache service
	cacheSvc := caching.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer cacheSvc.Close()

	// Avatar resolution is optional; without MinIO the stored image
	// references are passed through as-is.
	var mediaSvc services.MediaService
	if cfg.MinioEndpoint != "" {
		mediaSvc, err = services.NewMediaService(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL, cfg.MinioBucket)
		if err != nil {
			log.Fatalf("Failed to initialize media service: %v", err)
		}
		if err := mediaSvc.EnsureBucketExists(context.Background()); err != nil {
			log.Printf("WARNING: could not ensure avatar bucket: %v", err)
		}
	}

	// Create services
	dashboardSvc := services.NewDashboardService(revenueRepo, invoiceRepo, customerRepo, cacheSvc)
	invoiceSvc := services.NewInvoiceService(invoiceRepo, cacheSvc)
	customerSvc := services.NewCustomerService(customerRepo, summaryRepo, mediaSvc)
	authSvc := services.NewAuthService(userRepo, jwtSecret, cfg.SessionTTL)

	// Background document-view sync: the relational store is the
	// system of record, the mongo view is rebuilt from it.
	customerSync, err := jobs.NewCustomerSync(customerRepo, invoiceRepo, summaryRepo, cfg.SyncInterval)
	if err != nil {
		log.Fatalf("Failed to initialize customer view sync: %v", err)
	}
	customerSync.Start()
	defer func() {
		if err := customerSync.Stop(); err != nil {
			log.Printf("Failed to stop customer view sync: %v", err)
		}
	}()

	seeder := seed.NewSeeder(userRepo, customerRepo, invoiceRepo, revenueRepo)

	// Create handlers
	dashboardHandlers := handlers.NewDashboardHandlers(dashboardSvc)
	invoiceHandlers := handlers.NewInvoiceHandlers(invoiceSvc)
	customerHandlers := handlers.NewCustomerHandlers(customerSvc)
	authHandlers := handlers.NewAuthHandlers(authSvc)
	adminHandlers := handlers.NewAdminHandlers(seeder, customerSync, summaryRepo, cfg.Production())

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RemoveTrailingSlash())
	e.Use(common.RequestMemoMiddleware())

	// Routes
	e.GET("/health", adminHandlers.Health)
	e.POST("/login", authHandlers.Login)

	e.GET("/dashboard/revenue", dashboardHandlers.Revenue)
	e.GET("/dashboard/latest-invoices", dashboardHandlers.LatestInvoices)
	e.GET("/dashboard/cards", dashboardHandlers.Cards)

	e.GET("/invoices", invoiceHandlers.List)
	e.GET("/invoices/pages", invoiceHandlers.Pages)
	e.GET("/invoices/:id", invoiceHandlers.Get)
	e.POST("/invoices", invoiceHandlers.Create)
	e.PUT("/invoices/:id", invoiceHandlers.Update)
	e.DELETE("/invoices/:id", invoiceHandlers.Delete)

	e.GET("/customers", customerHandlers.List)
	e.GET("/customers/table", customerHandlers.Table)

	e.GET("/seed", adminHandlers.Seed)
	e.POST("/admin/sync", adminHandlers.Sync)
	e.GET("/query", adminHandlers.Query)

	// Serve until interrupted, then drain in-flight requests.
	go func() {
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}
