package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/swiftship/parcel-backend/internal/config"
	"github.com/swiftship/parcel-backend/internal/database"
	"github.com/swiftship/parcel-backend/internal/handlers"
	"github.com/swiftship/parcel-backend/internal/logger"
	"github.com/swiftship/parcel-backend/internal/middleware"
	"github.com/swiftship/parcel-backend/internal/services"
)

func main() {
	log := logger.New("api")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	// Get underlying SQL DB instance
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get database instance")
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Redis is optional; without it the claim cache is disabled.
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = services.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize Redis")
		}
	}

	ctx := context.Background()

	var verifier services.TokenVerifier
	switch {
	case cfg.FirebaseServiceAccountPath != "":
		verifier, err = services.NewFirebaseVerifier(ctx, cfg.FirebaseServiceAccountPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize Firebase verifier")
		}
	case cfg.JWTSecret != "":
		log.Warn().Msg("FIREBASE_SERVICE_ACCOUNT_PATH not set, verifying tokens with JWT_SECRET")
		verifier = services.NewJWTVerifier(cfg.JWTSecret)
	default:
		log.Fatal().Msg("no token verifier configured: set FIREBASE_SERVICE_ACCOUNT_PATH or JWT_SECRET")
	}
	if rdb != nil {
		verifier = services.NewCachedVerifier(verifier, rdb, 5*time.Minute)
	}

	gateway := services.NewStripeGateway(cfg.PaymentGatewayKey)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	// Routes. Auth is declared per route: only the parcel and payment
	// listings require a verified token.
	r.GET("/", handlers.Health())

	r.POST("/users", handlers.RegisterUser(db))

	r.GET("/parcels", middleware.RequireAuth(verifier), handlers.ListParcels(db))
	r.GET("/parcels/:id", handlers.GetParcel(db))
	r.POST("/parcels", handlers.CreateParcel(db))
	r.DELETE("/parcels/:id", handlers.DeleteParcel(db))

	r.GET("/riders/pending", handlers.ListPendingRiders(db))
	r.GET("/riders/active", handlers.ListActiveRiders(db))
	r.POST("/riders", handlers.CreateRider(db))
	r.PATCH("/riders/:id/status", handlers.UpdateRiderStatus(db))

	r.GET("/payments", middleware.RequireAuth(verifier), handlers.ListPayments(db))
	r.POST("/payments", handlers.RecordPayment(db, log))
	r.POST("/create-payment-intent", handlers.CreatePaymentIntent(gateway))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	stopCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-stopCtx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close Redis client")
		}
	}
	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close database")
	}
}
