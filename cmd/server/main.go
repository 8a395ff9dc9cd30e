package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"handpay/docs"
	"handpay/internal/config"
	"handpay/internal/db"
	"handpay/internal/handler"
	"handpay/internal/logging"
	"handpay/internal/repository"
	"handpay/internal/router"
	"handpay/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title HandPay Cloud API
// @version 1.0.0
// @description Account and payment ledger: registration with biometric enrollment, login, simulated payments and per-user history.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := logging.New(cfg.Log)

	gormDB, err := db.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database init: %w", err)
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			logger.Warn("close database", "error", err)
		}
	}()

	if cfg.Database.Reset {
		logger.Warn("DATABASE_RESET=true detected, dropping all tables")
		if err := db.ResetSchema(gormDB); err != nil {
			return fmt.Errorf("reset schema: %w", err)
		}
	}

	if err := db.InitSchema(gormDB); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	logger.Info("database ready", "database", cfg.Database.LogValue())

	userRepo := repository.NewUserRepository(gormDB)
	transactionRepo := repository.NewTransactionRepository(gormDB)

	userService := service.NewUserService(userRepo, logger)
	paymentService := service.NewPaymentService(userRepo, transactionRepo, logger, nil)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	router.Register(
		e,
		logger,
		handler.NewUserHandler(userService),
		handler.NewPaymentHandler(paymentService),
	)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
	}
	logger.Info("swagger documentation available", "url", swaggerURL(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", cfg.Addr())
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server start: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if strings.HasPrefix(host, "http://") || strings.HasPrefix(host, "https://") {
		return host + "/swagger/index.html"
	}
	return "http://" + host + "/swagger/index.html"
}
