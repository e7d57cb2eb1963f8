package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"order_pricing/internal/config"
	"order_pricing/internal/infrastructure/encoding/avro"
	kafkainfra "order_pricing/internal/infrastructure/messaging/kafka"
	"order_pricing/internal/infrastructure/notification"
	"order_pricing/pkg/logger"
)

// notifier drains the notification topic and prints each email.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.NotificationTopic == "" {
		log.Fatal("KAFKA_BOOTSTRAP_SERVERS and KAFKA_NOTIFICATION_TOPIC are required")
	}

	appLog, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer func() { _ = appLog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	codec, err := avro.NewCodec()
	if err != nil {
		appLog.Fatal("avro codec failed", logger.Error(err))
	}

	consumer := kafkainfra.NewNotificationConsumer(cfg.Kafka, codec, notification.NewConsoleSender(os.Stdout, appLog), appLog)
	defer consumer.Close()

	appLog.Info("notifier started",
		logger.Any("brokers", cfg.Kafka.Brokers),
		logger.String("topic", cfg.Kafka.NotificationTopic),
	)
	if err := consumer.Start(ctx); err != nil {
		appLog.Error("notification consumer stopped", logger.Error(err))
	}
}
