package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"order_pricing/internal/bootstrap"
	"order_pricing/internal/config"
	ginserver "order_pricing/internal/infrastructure/http/gin"
	"order_pricing/internal/interfaces/http/handler"
	"order_pricing/internal/interfaces/http/router"
	"order_pricing/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	appLog, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer func() { _ = appLog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, appLog, os.Stdout)
	if err != nil {
		appLog.Fatal("bootstrap failed", logger.Error(err))
	}
	defer app.Close()

	engine := ginserver.NewEngine(cfg.App.Env)
	router.RegisterRoutes(engine,
		handler.NewClientHandler(app.Clients),
		handler.NewOrderHandler(app.Orders),
	)

	server := ginserver.NewServer(cfg.Server, engine)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			appLog.Error("server shutdown failed", logger.Error(err))
		}
	}()

	appLog.Info("server starting",
		logger.String("addr", cfg.Server.Address()),
		logger.String("store", cfg.Store.Driver),
		logger.String("notifier", cfg.Notifier),
	)
	if err := server.Run(); err != nil {
		appLog.Fatal("server run failed", logger.Error(err))
	}
}
