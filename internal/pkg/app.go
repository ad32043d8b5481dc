package pkg

import (
	"context"
	"fmt"
	"time"

	"github.com/Purva137/Restaurant-Ordering-System/internal/app/config"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/dsn"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/handler"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/middleware"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/payment"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/ratelimit"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/redis"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/repository"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	Handler *handler.APIHandler
}

// NewApp assembles the service: database, Redis, MinIO, the REST handlers
// and their middleware.
func NewApp(ctx context.Context) (*Application, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		return nil, fmt.Errorf("repository: %w", err)
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	minioClient, err := storage.NewMinIOClient(
		cfg.MinIO.Endpoint,
		cfg.MinIO.AccessKey,
		cfg.MinIO.SecretKey,
		cfg.MinIO.Bucket,
		cfg.MinIO.UseSSL,
	)
	if err != nil {
		return nil, fmt.Errorf("minio: %w", err)
	}

	stripeClient := payment.NewStripeClient(cfg.Payment.StripeSecretKey)
	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	apiHandler := handler.NewAPIHandler(repo, minioClient, stripeClient, authHandler, cfg)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)
	limiter := ratelimit.New()
	apiHandler.RegisterAPIRoutes(router, authMiddleware, limiter)

	return &Application{
		Config:  cfg,
		Router:  router,
		Handler: apiHandler,
	}, nil
}

func (a *Application) RunApp() {
	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	logrus.Infof("starting server on %s", serverAddress)

	if err := a.Router.Run(serverAddress); err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("server down")
}
