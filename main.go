package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/chinarfoundation/charity-site/handlers"
	"github.com/chinarfoundation/charity-site/internal/assets"
	"github.com/chinarfoundation/charity-site/internal/config"
	"github.com/chinarfoundation/charity-site/internal/content"
	"github.com/chinarfoundation/charity-site/internal/database"
	"github.com/chinarfoundation/charity-site/internal/mailer"
	"github.com/chinarfoundation/charity-site/internal/sessions"
	"github.com/chinarfoundation/charity-site/pkg/logger"
	"github.com/chinarfoundation/charity-site/pkg/metrics"
	"github.com/chinarfoundation/charity-site/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v minio=%v smtp=%v",
		cfg.Content.MongoURI != "", cfg.Redis.Host != "", cfg.Assets.MinIO.Endpoint != "", cfg.SMTP.Host != "")

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Kept intentionally simple; production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, "+middleware.SessionHeader)
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	ctx := context.Background()

	// Connect to Redis early so the rate limiter and session store can use it
	// when configured
	var importedRedis *redis.Client
	if cfg.Redis.Host != "" {
		importedRedis = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := importedRedis.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			importedRedis = nil
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional global per-IP rate limiter
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && importedRedis != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(importedRedis, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Content repository: MongoDB when configured, otherwise the JSON file.
	var contentRepo content.Repository
	if cfg.Content.MongoURI != "" {
		client, errConn := database.Connect(ctx, cfg.Content.MongoURI, cfg.Content.MongoTimeout)
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB, falling back to file storage: %v", errConn)
		} else {
			defer func() { _ = client.Disconnect(ctx) }()
			col := client.Database(cfg.Content.MongoDatabase).Collection("content")
			contentRepo = content.NewMongoRepository(col)
			logger.Infof("Using MongoDB for content storage")
		}
	}
	if contentRepo == nil {
		contentRepo = content.NewFileRepository(cfg.Content.FilePath)
		logger.Infof("Using file-backed content storage: %s", cfg.Content.FilePath)
	}

	// Sessions: prefer Redis when available, otherwise in-process memory.
	var sessionRepo sessions.Repository
	if importedRedis != nil {
		sessionRepo = sessions.NewRedisRepository(importedRedis, "session:")
		logger.Infof("Using Redis for session storage")
	} else {
		sessionRepo = sessions.NewMemoryRepository()
	}
	sessionsSvc := sessions.NewService(sessionRepo, cfg.Session.TTL)

	// Asset store: MinIO when configured, otherwise local disk. The disk
	// backend doubles as the static /images root.
	var store assets.Store
	diskBacked := true
	if cfg.Assets.MinIO.Endpoint != "" {
		ms, err := assets.NewMinIOStore(assets.MinIOOptions{
			Endpoint:  cfg.Assets.MinIO.Endpoint,
			AccessKey: cfg.Assets.MinIO.AccessKey,
			SecretKey: cfg.Assets.MinIO.SecretKey,
			UseSSL:    cfg.Assets.MinIO.UseSSL,
			Bucket:    cfg.Assets.MinIO.Bucket,
		})
		if err != nil {
			logger.Warnf("failed to initialize MinIO asset store, falling back to disk: %v", err)
		} else {
			store = ms
			diskBacked = false
			logger.Infof("Using MinIO for asset storage: %s/%s", cfg.Assets.MinIO.Endpoint, cfg.Assets.MinIO.Bucket)
		}
	}
	if store == nil {
		ds, err := assets.NewDiskStore(cfg.Assets.Dir)
		if err != nil {
			logger.Fatalf("failed to initialize asset directory: %v", err)
		}
		store = ds
	}
	assetMgr := assets.NewManager(store, cfg.Assets.DefaultLogo)
	if diskBacked {
		r.Static("/images", cfg.Assets.Dir)
	}

	mailSvc := mailer.New(mailer.Config{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		Recipient: cfg.SMTP.Recipient,
		Timeout:   cfg.SMTP.Timeout,
	})
	if !mailSvc.Configured() {
		logger.Warnf("SMTP transport not configured; join submissions will be logged only")
	}

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness endpoint: return 200 only when critical dependencies are available
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		_, errLoad := contentRepo.Load(c.Request.Context())
		deps["content"] = errLoad == nil
		if errLoad != nil {
			ready = false
		}

		// Redis readiness when used for rate limiting or sessions
		if cfg.Redis.Host != "" {
			deps["redis"] = importedRedis != nil && importedRedis.Ping(c.Request.Context()).Err() == nil
			if !deps["redis"] {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		status := http.StatusOK
		label := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			label = "not_ready"
		}
		c.JSON(status, gin.H{"status": label, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	// Register handlers: the login route lives under the secret path segment,
	// everything under /admin requires a valid session.
	admin := r.Group("/admin", middleware.SessionAuth(sessionsSvc))
	handlers.NewAuthHandler(cfg, sessionsSvc).Register(r, admin)
	handlers.NewContentHandler(contentRepo).Register(r, admin)
	handlers.NewUploadHandler(assetMgr, contentRepo).Register(admin)
	handlers.NewJoinHandler(mailSvc).Register(r)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting charity-site service on %s (admin path: /%s)", addr, cfg.Admin.PathSegment)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
