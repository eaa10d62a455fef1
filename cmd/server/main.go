package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/upkyp/visit-booking-service/internal/config"
	"github.com/upkyp/visit-booking-service/internal/database"
	"github.com/upkyp/visit-booking-service/internal/fieldcrypt"
	"github.com/upkyp/visit-booking-service/internal/handler"
	"github.com/upkyp/visit-booking-service/internal/logger"
	"github.com/upkyp/visit-booking-service/internal/middleware"
	"github.com/upkyp/visit-booking-service/internal/queue"
	"github.com/upkyp/visit-booking-service/internal/repository"
	"github.com/upkyp/visit-booking-service/internal/router"
	"github.com/upkyp/visit-booking-service/internal/validation"
)

func main() {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	zlog := logger.New(cfg.LogFile, cfg.Env == "prod")
	defer func() { _ = zlog.Sync() }()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName, database.Pool{
		MaxOpen:     cfg.DBMaxOpenConns,
		MaxIdle:     cfg.DBMaxIdleConns,
		MaxLifetime: cfg.DBConnLifetime,
	})
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	cipher, err := fieldcrypt.New(cfg.EncryptionKey)
	if err != nil {
		log.Fatalf("invalid encryption key: %v", err)
	}

	// Redis backs rate limiting and the public response cache.  A nil
	// client disables both; the API itself keeps working.
	rdb := config.NewRedisClient()
	if rdb == nil {
		zlog.Warn("redis unavailable, rate limiting and caching disabled")
	}

	userRepo := repository.NewUserRepo(db, cipher)
	tokenRepo := repository.NewTokenRepo(db)
	propertyRepo := repository.NewPropertyRepo(db)
	unitRepo := repository.NewUnitRepo(db)
	visitRepo := repository.NewVisitRepo(db, cipher)

	authHandler := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
	landlordProps := handler.NewLandlordPropertyHandler(propertyRepo, unitRepo)
	landlordVisits := handler.NewLandlordVisitHandler(visitRepo, zlog)
	tenantVisits := handler.NewTenantVisitHandler(visitRepo, unitRepo)
	public := handler.NewPublicHandler(propertyRepo)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()

	// The token bucket applies service-wide; the response cache is
	// scoped to the public browse routes during registration.
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterPublic(e, public, cacheMW)
	router.RegisterLandlord(e, landlordProps, cfg.JWTSecret)
	router.RegisterLandlordVisits(e, landlordVisits, cfg.JWTSecret)
	router.RegisterTenant(e, tenantVisits, cfg.JWTSecret)

	// Consume visit status events in the background.  The consumer
	// reconnects on broker failure and never blocks startup.
	go queue.StartVisitStatusConsumer(zlog)

	addr := ":" + cfg.Port
	zlog.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
