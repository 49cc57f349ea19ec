package main

import (
	"flag"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/campus-connect/CampusTalk/cmd/bootstrap"
	handlers "github.com/campus-connect/CampusTalk/internal/handler"
	"github.com/campus-connect/CampusTalk/internal/models"
	"github.com/campus-connect/CampusTalk/pkg/config"
	"github.com/campus-connect/CampusTalk/pkg/engine"
	"github.com/campus-connect/CampusTalk/pkg/fallback"
	"github.com/campus-connect/CampusTalk/pkg/logger"
	"github.com/campus-connect/CampusTalk/pkg/metrics"
	"github.com/campus-connect/CampusTalk/pkg/middleware"
)

func main() {
	// 1. Parse command line parameters
	mode := flag.String("mode", "", "running environment (development, test, production)")
	initSQL := flag.String("init-sql", "", "path to database init .sql script (optional)")
	flag.Parse()

	if *mode != "" {
		os.Setenv("APP_ENV", *mode)
	}

	// 2. Load global configuration
	if err := config.Load(); err != nil {
		panic("config load failed: " + err.Error())
	}

	// 3. Load log configuration
	if err := logger.Init(&config.GlobalConfig.Log, config.GlobalConfig.Mode); err != nil {
		panic(err)
	}

	logger.Info("checked config -- addr: ", zap.String("addr", config.GlobalConfig.Addr))
	logger.Info("checked config -- db-driver: ",
		zap.String("db-driver", config.GlobalConfig.DBDriver),
		zap.String("dsn", config.GlobalConfig.DSN))
	logger.Info("checked config -- mode: ", zap.String("mode", config.GlobalConfig.Mode))

	// 4. Load data source and seed the FAQ corpus
	db, err := bootstrap.SetupDatabase(&bootstrap.Options{
		InitSQLPath: *initSQL,
		AutoMigrate: true,
		SeedFAQ:     true,
	})
	if err != nil {
		logger.Error("database setup failed", zap.Error(err))
		return
	}

	// 5. Snapshot the corpus and build the engine
	store, err := models.LoadCorpus(db)
	if err != nil {
		logger.Error("corpus load failed", zap.Error(err))
		return
	}
	logger.Info("corpus loaded", zap.Any("sizes", store.Size()))

	chain := fallback.NewChainFromConfig(config.GlobalConfig)
	eng, err := engine.New(store, chain, engine.Options{
		TrackedUsers: config.GlobalConfig.TrackedUsersLimit,
		CacheTTL:     config.GlobalConfig.ResponseCacheTTL,
	})
	if err != nil {
		logger.Error("engine setup failed", zap.Error(err))
		return
	}

	// 6. Initialize gin routing
	if config.GlobalConfig.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false

	// 7. Middleware
	r.Use(metrics.Middleware())
	r.Use(middleware.CorsMiddleware())
	r.Use(middleware.LoggerMiddleware(logger.Lg))
	rateLimit, err := middleware.RateLimitMiddleware(config.GlobalConfig.RateLimit)
	if err != nil {
		logger.Error("rate limit setup failed", zap.Error(err))
		return
	}
	r.Use(rateLimit)

	// 8. Routes
	handlers.NewHandlers(db, eng).Register(r)

	// 9. Serve
	logger.Info("server starting",
		zap.String("name", config.GlobalConfig.ServerName),
		zap.String("addr", config.GlobalConfig.Addr))
	if err := r.Run(config.GlobalConfig.Addr); err != nil {
		logger.Error("server stopped", zap.Error(err))
	}
}
