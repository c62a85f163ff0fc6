package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	appcontext "github.com/SeakMengs/PropDesk/internal/app_context"
	"github.com/SeakMengs/PropDesk/internal/auth"
	"github.com/SeakMengs/PropDesk/internal/config"
	"github.com/SeakMengs/PropDesk/internal/controller"
	"github.com/SeakMengs/PropDesk/internal/database"
	"github.com/SeakMengs/PropDesk/internal/env"
	filestorage "github.com/SeakMengs/PropDesk/internal/file_storage"
	"github.com/SeakMengs/PropDesk/internal/middleware"
	"github.com/SeakMengs/PropDesk/internal/queue"
	ratelimiter "github.com/SeakMengs/PropDesk/internal/rate_limiter"
	"github.com/SeakMengs/PropDesk/internal/repository"
	"github.com/SeakMengs/PropDesk/internal/revalidate"
	"github.com/SeakMengs/PropDesk/internal/route"
	"github.com/SeakMengs/PropDesk/internal/service"
	"github.com/SeakMengs/PropDesk/internal/tracing"
	"github.com/SeakMengs/PropDesk/internal/util"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/minio/minio-go/v7"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	logger.Debugf("Configuration: %+v \n", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, logger, cfg.Tracing, cfg.ENV)
	if err != nil {
		logger.Panic(err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Errorf("Failed to shutdown tracing: %v", err)
		}
	}()

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected \n")

	var s3 *minio.Client
	if cfg.Minio.Enabled() {
		s3, err = filestorage.NewMinioClient(&cfg.Minio)
		if err != nil {
			logger.Error("Error connecting to minio")
			logger.Panic(err)
		}
	} else {
		logger.Warn("MinIO is not configured, report archiving is disabled")
	}

	var store revalidate.Store
	if cfg.Redis.URL == "" {
		memoryStore := revalidate.NewMemoryStore()
		memoryStore.StartCleanup(cfg.Cache.PageTTL, ctx.Done())
		store = memoryStore
	} else {
		redisStore, err := revalidate.NewRedisStore(cfg.Redis.URL)
		if err != nil {
			logger.Panic("Error connecting to redis: ", err)
		}
		defer redisStore.Close()
		store = redisStore
		logger.Info("Redis page cache connected \n")
	}
	cache := revalidate.NewCache(store, cfg.Cache.PageTTL, logger)

	deps := service.Dependencies{
		Logger:      logger,
		Revalidator: cache,
		S3:          s3,
		Bucket:      cfg.Minio.BUCKET,
		FrontendURL: cfg.Mail.FRONTEND_URL,
	}

	if cfg.RabbitMQ.Enabled() {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQ.GetConnectionString())
		if err != nil {
			logger.Panic("Error connecting to RabbitMQ: ", err)
		}
		defer func() {
			if err := rabbitMQ.Close(); err != nil {
				logger.Errorf("Failed to close RabbitMQ connection: %v", err)
			}
		}()
		deps.MailPublisher = rabbitMQ
		logger.Info("RabbitMQ connected \n")
	} else {
		logger.Warn("RabbitMQ is not configured, notification mails are disabled")
	}

	// Custom validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := util.RegisterCustomValidations(v); err != nil {
			logger.Panicf("Failed to register custom validations: %v", err)
		}
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)
	rateLimiter.StartCleanup(time.Minute, ctx.Done())

	jwtService := auth.NewJwt(cfg.Auth, logger)
	repo := repository.NewRepository(db, logger)
	deps.Repository = repo

	app := appcontext.Application{
		Config:     &cfg,
		Repository: repo,
		Service:    service.NewService(deps),
		Logger:     logger,
		JWTService: jwtService,
		Cache:      cache,
		S3:         s3,
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.IsProduction() {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	// Lets handlers pass *gin.Context down and keep the request span
	r.ContextWithFallback = true

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	corsConfig.ExposeHeaders = []string{"Content-Disposition", "Retry-After", "X-Cache"}
	r.Use(cors.New(corsConfig))
	r.Use(_middleware.MetricsMiddleware)
	r.Use(_middleware.RateLimiterMiddleware)

	_controller := controller.NewController(&app)

	route.Index(r, _controller.Index)

	rApi := r.Group("/api")

	route.Register(rApi, _controller, _middleware, cache.CachePage)

	server := &http.Server{
		Addr:              "0.0.0.0:" + app.Config.Port,
		Handler:           otelhttp.NewHandler(r, cfg.Tracing.ServiceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("Listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Panicf("Error running server: %v \n", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}
}
