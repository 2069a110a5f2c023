package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	catalogapp "github.com/swiftora/marketplace/internal/application/catalog"
	eventapp "github.com/swiftora/marketplace/internal/application/event"
	identityapp "github.com/swiftora/marketplace/internal/application/identity"
	orderingapp "github.com/swiftora/marketplace/internal/application/ordering"
	partnerapp "github.com/swiftora/marketplace/internal/application/partner"
	tieupapp "github.com/swiftora/marketplace/internal/application/tieup"
	"github.com/swiftora/marketplace/internal/infrastructure/auth"
	"github.com/swiftora/marketplace/internal/infrastructure/cache"
	"github.com/swiftora/marketplace/internal/infrastructure/config"
	"github.com/swiftora/marketplace/internal/infrastructure/event"
	"github.com/swiftora/marketplace/internal/infrastructure/geocode"
	"github.com/swiftora/marketplace/internal/infrastructure/logger"
	"github.com/swiftora/marketplace/internal/infrastructure/persistence"
	"github.com/swiftora/marketplace/internal/infrastructure/telemetry"
	"github.com/swiftora/marketplace/internal/interfaces/http/handler"
	"github.com/swiftora/marketplace/internal/interfaces/http/middleware"
	"github.com/swiftora/marketplace/internal/interfaces/http/router"
	"go.uber.org/zap"

	_ "github.com/swiftora/marketplace/docs"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			Marketplace API
//	@version		1.0
//	@description	Supplier and supermarket marketplace: tie-ups, catalog and order tracking.

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logCfg := &logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	}
	bootLog, err := logger.New(logCfg)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	ctx := context.Background()
	otelCfg := telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}

	// OTEL logs need their provider before the final logger is built
	logsCfg := otelCfg
	logsCfg.Enabled = otelCfg.Enabled && cfg.Telemetry.LogsEnabled
	logProvider, err := telemetry.NewLoggerProvider(ctx, logsCfg, bootLog)
	if err != nil {
		bootLog.Fatal("Failed to initialize log provider", zap.Error(err))
	}
	log, err := logger.New(logCfg, logProvider.ZapCore(cfg.Telemetry.ServiceName, logger.ParseLevel(cfg.Log.Level)))
	if err != nil {
		bootLog.Fatal("Failed to initialize logger", zap.Error(err))
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting marketplace",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	tracerProvider, err := telemetry.NewTracerProvider(ctx, otelCfg, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	metricsCfg := otelCfg
	metricsCfg.Enabled = otelCfg.Enabled && cfg.Telemetry.MetricsEnabled
	meterProvider, err := telemetry.NewMeterProvider(ctx, metricsCfg, 0, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:         cfg.Telemetry.ProfilingEnabled,
		ServerAddress:   cfg.Telemetry.ProfilingServer,
		ApplicationName: cfg.Telemetry.ServiceName,
	}, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	defer func() {
		shutdownCtx := context.Background()
		if err := profiler.Stop(); err != nil {
			log.Error("Error stopping profiler", zap.Error(err))
		}
		if err := meterProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down meter provider", zap.Error(err))
		}
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
		if err := logProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down log provider", zap.Error(err))
		}
	}()

	businessMetrics, err := telemetry.NewBusinessMetrics(meterProvider.Meter(telemetry.BusinessMeterName()))
	if err != nil {
		log.Fatal("Failed to create business metrics", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if otelCfg.Enabled && cfg.Telemetry.DBTraceEnabled {
		if err := telemetry.RegisterDBTracing(db.DB, cfg.Database.DBName, false); err != nil {
			log.Warn("Failed to enable database tracing", zap.Error(err))
		}
	}
	log.Info("Database connected successfully")

	// Stays a nil interface unless Redis is enabled and reachable
	var redisClient redis.UniversalClient
	if cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn("Redis unavailable, using in-memory stores", zap.String("addr", cfg.Redis.Addr()), zap.Error(err))
		} else {
			redisClient = client
			defer func() {
				if err := client.Close(); err != nil {
					log.Error("Error closing Redis client", zap.Error(err))
				}
			}()
		}
	}
	idempotencyStore := cache.NewIdempotencyStore(cfg.Idempotency, redisClient, log)
	defer func() {
		if err := idempotencyStore.Close(); err != nil {
			log.Error("Error closing idempotency store", zap.Error(err))
		}
	}()

	var resolver geocode.Resolver
	if cfg.Geocode.Enabled {
		resolver = geocode.NewCachedResolver(
			geocode.NewNominatimClient(cfg.Geocode, log),
			cache.NewTextCache(redisClient, "geocode:"),
			cfg.Geocode.CacheTTL,
			log,
		)
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	supermarketRepo := persistence.NewGormSupermarketRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	tieUpRepo := persistence.NewGormTieUpRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)

	eventBus := event.NewInMemoryEventBus(log)
	eventapp.RegisterActivityHandlers(eventBus, idempotencyStore, businessMetrics, log)
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, supplierRepo, supermarketRepo,
		persistence.NewGormTransactionScope(db.DB), jwtService, log)
	authService.SetEventPublisher(eventBus)

	partnerService := partnerapp.NewPartnerService(supplierRepo, supermarketRepo, resolver, log)
	partnerService.SetMetrics(businessMetrics)

	tieUpService := tieupapp.NewTieUpService(tieUpRepo, supplierRepo, supermarketRepo, resolver, log)
	tieUpService.SetEventPublisher(eventBus)
	tieUpService.SetMetrics(businessMetrics)

	productService := catalogapp.NewProductService(productRepo, log)
	productService.SetEventPublisher(eventBus)

	orderService, err := orderingapp.NewOrderService(orderRepo, productRepo, tieUpRepo, supplierRepo, log,
		orderingapp.WithTransactionScope(persistence.NewGormOrderingTransactionScope(db.DB)),
		orderingapp.WithStockPolicy(cfg.Ordering.StockPolicy),
		orderingapp.WithMetrics(businessMetrics),
	)
	if err != nil {
		log.Fatal("Failed to create order service", zap.Error(err))
	}
	orderService.SetEventPublisher(eventBus)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Tracing(cfg.Telemetry.ServiceName, otelCfg.Enabled))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORS(cfg.HTTP))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.Swagger.Enabled {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r := router.NewRouter(engine, middleware.Authenticate(authService, log),
		router.WithAPIVersion("v1"),
		router.WithProtectedMiddleware(
			middleware.SpanEnricher(),
			middleware.Idempotency(idempotencyStore, cfg.Idempotency.TTL, log),
		),
	)
	r.Setup(router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Supermarket: handler.NewSupermarketHandler(partnerService, tieUpService),
		Supplier:    handler.NewSupplierHandler(tieUpService),
		Order:       handler.NewOrderHandler(orderService),
		Product:     handler.NewProductHandler(productService),
		System:      handler.NewSystemHandler(db, version),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited")
}
