package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"example.com/forever-shop/backend/internal/config"
	"example.com/forever-shop/backend/internal/infra/media"
	"example.com/forever-shop/backend/internal/infra/payment"
	"example.com/forever-shop/backend/internal/infra/persistence/mongodb"
	"example.com/forever-shop/backend/internal/infra/security"
	httpapi "example.com/forever-shop/backend/internal/interface/http"
	authuc "example.com/forever-shop/backend/internal/usecase/auth"
	cartuc "example.com/forever-shop/backend/internal/usecase/cart"
	orderuc "example.com/forever-shop/backend/internal/usecase/order"
	productuc "example.com/forever-shop/backend/internal/usecase/product"
)

func main() {
	cfg := config.Load()
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()
	db := client.Database(cfg.MongoDatabase)

	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	err = userRepo.EnsureIndexes(ctx)
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("index creation failed")
	}

	jwtSvc := security.NewJWTService(cfg.JWTSecret, cfg.TokenExpiry)
	hasher := security.NewPasswordHasher(0)
	stripeGw := payment.NewStripeGateway(cfg.StripeSecretKey, cfg.Currency, cfg.DeliveryFee)
	razorpayGw := payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, cfg.Currency)
	uploader, err := media.NewCloudinaryUploader(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		logger.Fatal().Err(err).Msg("cloudinary init failed")
	}

	api := httpapi.NewAPI(httpapi.Dependencies{
		AuthService:    authuc.NewService(userRepo, hasher, jwtSvc, cfg.AdminEmail, cfg.AdminPassword),
		CartService:    cartuc.NewService(userRepo),
		ProductService: productuc.NewService(productRepo, uploader),
		OrderService:   orderuc.NewService(orderRepo, userRepo, stripeGw, razorpayGw, logger),
	})

	srv := &http.Server{
		Addr:    cfg.AppPort,
		Handler: api.Router(),
	}

	go func() {
		logger.Info().Str("addr", cfg.AppPort).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
	}
}
