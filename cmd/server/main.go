package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Emmanu-hec2a/formManagement/config"
	"github.com/Emmanu-hec2a/formManagement/internal/api/handler"
	"github.com/Emmanu-hec2a/formManagement/internal/api/router"
	"github.com/Emmanu-hec2a/formManagement/internal/pdf"
	"github.com/Emmanu-hec2a/formManagement/internal/repository"
	"github.com/Emmanu-hec2a/formManagement/internal/service"
	"github.com/Emmanu-hec2a/formManagement/pkg/ai"
	"github.com/Emmanu-hec2a/formManagement/pkg/database"
	"github.com/Emmanu-hec2a/formManagement/pkg/logger"
	"github.com/Emmanu-hec2a/formManagement/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	// 1. Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// 2. Initialize logger
	zapLogger, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zapLogger.Sync()

	// 3. Open database and run migrations
	db, err := database.NewDB(&cfg.DB, zapLogger)
	if err != nil {
		zapLogger.Fatal("open database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("get sql.DB", zap.Error(err))
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, zapLogger); err != nil {
		zapLogger.Fatal("run migrations", zap.Error(err))
	}

	// 4. Optional Redis for drafting-route rate limits
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redis.NewClient(&cfg.Redis, zapLogger)
		if err != nil {
			zapLogger.Warn("redis unavailable, drafting routes run unthrottled", zap.Error(err))
			rdb = nil
		} else {
			defer rdb.Close()
		}
	}

	// 5. Optional AI drafting backend (nil when no key is configured)
	aiClient := ai.NewClient(&cfg.AI, cfg.School.Name, zapLogger)
	if aiClient == nil {
		zapLogger.Info("no AI credential configured, remote drafting disabled")
	}

	// 6. Wire layers
	repo := repository.NewRepository(db)
	renderer := pdf.NewRenderer(cfg.School)
	svc := service.NewService(cfg, repo, renderer, aiClient, zapLogger)
	h := handler.NewHandler(cfg, svc, zapLogger)
	r := router.Setup(cfg, h, rdb, zapLogger)

	// 7. Start HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		zapLogger.Info("server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("forced shutdown", zap.Error(err))
	}

	zapLogger.Info("server stopped")
}
