package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"user_backend/internal/app/di"
	"user_backend/internal/app/router"
	userhandler "user_backend/internal/feature/user/transport/handler"
	"user_backend/internal/feature/user/service"
	"user_backend/internal/feature/user/usecase"
	"user_backend/internal/platform/config"
	"user_backend/internal/platform/db"
	platformhandler "user_backend/internal/platform/http/handler"
	"user_backend/internal/platform/logger"
	platformredis "user_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.Setup(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})

	if err := run(cfg); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	var (
		gdb    *gorm.DB
		pinger platformhandler.Pinger
	)
	if cfg.DB.Driver != db.DriverMemory {
		var err error
		gdb, err = db.Open(ctx, db.Config{
			Driver:         cfg.DB.Driver,
			User:           cfg.DB.User,
			Password:       cfg.DB.Password,
			Name:           cfg.DB.Name,
			Host:           cfg.DB.Host,
			Port:           cfg.DB.Port,
			SSLMode:        cfg.DB.SSLMode,
			SQLitePath:     cfg.DB.SQLitePath,
			Migrate:        cfg.DB.Migrate,
			ConnectTimeout: cfg.DB.ConnectTimeout,
		})
		if err != nil {
			return err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		defer func() {
			if err := sqlDB.Close(); err != nil {
				slog.Error("failed to close database", "error", err)
			}
		}()
		pinger = sqlDB
	} else {
		slog.Warn("using in-memory user store; data is lost on restart")
	}

	// Redis
	var rdb *redisv9.Client
	if cfg.Redis.Host != "" {
		tmp, err := platformredis.NewRedisClient(ctx, platformredis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			slog.Warn("Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Repository（Redis があればキャッシュでラップ）
	userRepo := di.NewUserRepository(gdb, rdb, cfg.Cache.TTL, cfg.Cache.Namespace)

	// Service / Usecase
	userSvc := service.NewUserService(userRepo)
	findUser := usecase.NewFindUser(userSvc)

	// Handler
	userH := userhandler.NewUserHandler(findUser, userSvc)

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWT.Secret == "" {
		slog.Warn("JWT_SECRET is not set. Every /users request will be rejected.")
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router.NewRouter(userH, pinger, cfg.JWT.Secret),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// シグナル受信までサーバーを起動
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	// グレースフルシャットダウン
	slog.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
