package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	farmerapp "github.com/poultry/backend/internal/application/farmer"
	financeapp "github.com/poultry/backend/internal/application/finance"
	requestapp "github.com/poultry/backend/internal/application/request"
	stockapp "github.com/poultry/backend/internal/application/stock"
	domainfinance "github.com/poultry/backend/internal/domain/finance"
	domainrequest "github.com/poultry/backend/internal/domain/request"
	"github.com/poultry/backend/internal/infrastructure/config"
	"github.com/poultry/backend/internal/infrastructure/event"
	"github.com/poultry/backend/internal/infrastructure/logger"
	"github.com/poultry/backend/internal/infrastructure/persistence"
	"github.com/poultry/backend/internal/interfaces/http/handler"
	"github.com/poultry/backend/internal/interfaces/http/middleware"
	"github.com/poultry/backend/internal/interfaces/http/router"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting poultry program backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	farmerRepo := persistence.NewGormFarmerRepository(db.DB)
	batchRepo := persistence.NewGormBatchRepository(db.DB)
	requestRepo := persistence.NewGormRequestRepository(db.DB)
	distributionRepo := persistence.NewGormDistributionRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Initialize event bus with the audit log handler
	eventBus := event.NewInMemoryEventBus(log)
	auditHandler := event.NewAuditLogHandler(log)
	eventBus.Subscribe(auditHandler, auditHandler.EventTypes()...)

	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Program rules from configuration
	policy := requestapp.Policy{
		Caps: domainrequest.QuantityCaps{
			Starter:   cfg.Program.StarterCap,
			Returning: cfg.Program.ReturningCap,
		},
		CooldownDays:    cfg.Program.CooldownDays,
		EntitlementBags: cfg.Program.EntitlementBags,
		DueDateDays:     cfg.Program.DueDateDays,
		MaxBatchAgeDays: cfg.Program.MaxBatchAgeDays,
	}
	calculator := domainfinance.NewCalculator(
		decimal.NewFromInt(cfg.Program.ChickPrice),
		cfg.Program.DueSoonLookaheadDays,
	)

	// Initialize application services
	farmerService := farmerapp.NewService(farmerRepo, eventBus)
	stockService := stockapp.NewService(batchRepo, eventBus, log)
	requestService := requestapp.NewService(txScope, farmerRepo, requestRepo, eventBus, policy, log)
	financeService := financeapp.NewService(farmerRepo, requestRepo, distributionRepo, paymentRepo, calculator, eventBus, log)

	// Initialize HTTP handlers
	farmerHandler := handler.NewFarmerHandler(farmerService)
	stockHandler := handler.NewStockHandler(stockService)
	requestHandler := handler.NewRequestHandler(requestService)
	financeHandler := handler.NewFinanceHandler(financeService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Farmer registry
	farmerRoutes := router.NewDomainGroup("farmers", "/farmers")
	farmerRoutes.POST("", farmerHandler.Register)
	farmerRoutes.GET("", farmerHandler.List)
	farmerRoutes.GET("/nin/:nin", farmerHandler.GetByNIN)
	farmerRoutes.GET("/:id", farmerHandler.GetByID)
	farmerRoutes.PUT("/:id", farmerHandler.Update)
	farmerRoutes.POST("/:id/deactivate", farmerHandler.Deactivate)
	// Per-farmer history and money position
	farmerRoutes.GET("/:id/requests", requestHandler.ListByFarmer)
	farmerRoutes.GET("/:id/balance", financeHandler.GetFarmerBalance)
	farmerRoutes.GET("/:id/payments", financeHandler.ListFarmerPayments)
	farmerRoutes.GET("/:id/distributions", financeHandler.ListFarmerDistributions)

	// Store intake and stock position
	stockRoutes := router.NewDomainGroup("stock", "/stock")
	stockRoutes.POST("/chicks", stockHandler.RecordChickIntake)
	stockRoutes.POST("/feeds", stockHandler.RecordFeedIntake)
	stockRoutes.GET("/batches", stockHandler.ListBatches)
	stockRoutes.GET("/batches/:id", stockHandler.GetBatch)
	stockRoutes.GET("/summary", stockHandler.Summary)

	// Request lifecycle
	requestRoutes := router.NewDomainGroup("requests", "/requests")
	requestRoutes.POST("/chicks", requestHandler.SubmitChickRequest)
	requestRoutes.POST("/feeds", requestHandler.SubmitFeedRequest)
	requestRoutes.GET("", requestHandler.List)
	requestRoutes.GET("/awaiting-pickup", requestHandler.ListAwaitingPickup)
	requestRoutes.GET("/:id", requestHandler.GetByID)
	requestRoutes.POST("/:id/approve", requestHandler.Approve)
	requestRoutes.POST("/:id/reject", requestHandler.Reject)
	requestRoutes.POST("/:id/pickup", requestHandler.MarkPicked)

	// Payments and receivables
	financeRoutes := router.NewDomainGroup("finance", "/finance")
	financeRoutes.POST("/payments", financeHandler.RecordPayment)
	financeRoutes.GET("/receivables", financeHandler.Receivables)
	financeRoutes.GET("/due-soon", financeHandler.DueSoon)

	// System routes
	systemHandler := handler.NewSystemHandler()
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(farmerRoutes).
		Register(stockRoutes).
		Register(requestRoutes).
		Register(financeRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Also keep a simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
