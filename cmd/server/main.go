package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"chatApp/internal/config"
	"chatApp/internal/db"
	grpcserver "chatApp/internal/grpc"
	httpserver "chatApp/internal/http"
	"chatApp/internal/logging"
	"chatApp/internal/service"
	"chatApp/repository"
	"chatApp/repository/gormstore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "chat server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env file is fine; the environment alone is enough.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel, os.Stdout)
	if err != nil {
		return err
	}
	slog.SetDefault(log)
	log.Info("configuration loaded", slog.String("config", cfg.String()))

	store, err := openStorage(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.close(); err != nil {
			log.Error("close storage", slog.Any("error", err))
		}
	}()

	users := service.NewUserService(store.users, log, service.WithHashCost(cfg.BcryptCost))
	messages := service.NewMessageService(store.messages, log, service.WithMaxBodyLength(cfg.MaxMessageLength))

	gin.SetMode(cfg.GinMode)
	stopHTTP, err := httpserver.Start(cfg.HTTPAddress, httpserver.NewRouter(users, messages, log), log)
	if err != nil {
		return fmt.Errorf("start http: %w", err)
	}
	stopGRPC, err := grpcserver.StartGRPC(cfg.GRPCAddress, grpcserver.NewHealthProbe(store.pinger, cfg.HealthInterval, log), log)
	if err != nil {
		_ = stopHTTP(context.Background())
		return fmt.Errorf("start grpc: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return errors.Join(stopHTTP(shutdownCtx), stopGRPC(shutdownCtx))
}

type storage struct {
	users    repository.UserRepositoryI
	messages repository.MessageRepositoryI
	pinger   grpcserver.Pinger
	close    func() error
}

// openStorage picks the database/sql SQLite store or the gorm PostgreSQL store.
func openStorage(cfg *config.Config, log *slog.Logger) (*storage, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		g, err := db.OpenGorm(config.DriverPostgres, cfg.DatabaseURL, log)
		if err != nil {
			return nil, err
		}
		sqlDB, err := g.DB()
		if err != nil {
			return nil, err
		}
		if err := gormstore.AutoMigrate(g); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		log.Info("storage ready", slog.String("driver", cfg.DBDriver))
		return &storage{
			users:    gormstore.NewUserRepository(g, cfg.DBQueryTimeout),
			messages: gormstore.NewMessageRepository(g, cfg.DBQueryTimeout),
			pinger:   sqlDB,
			close:    sqlDB.Close,
		}, nil
	default:
		d, err := db.Open(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open db: %w", err)
		}
		log.Info("storage ready", slog.String("driver", cfg.DBDriver), slog.String("path", cfg.DBPath))
		return &storage{
			users:    repository.NewUserRepository(d, cfg.DBQueryTimeout),
			messages: repository.NewMessageRepository(d, cfg.DBQueryTimeout),
			pinger:   d,
			close:    d.Close,
		}, nil
	}
}
