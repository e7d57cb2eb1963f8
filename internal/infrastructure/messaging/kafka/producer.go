package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"order_pricing/internal/config"
	"order_pricing/pkg/logger"
)

type NotificationProducer struct {
	client *kgo.Client
	topic  string
	logger logger.Logger
}

func NewNotificationProducer(cfg config.KafkaConfig, log logger.Logger) (*NotificationProducer, error) {
	log.Info("Creating Kafka producer",
		logger.Any("brokers", cfg.Brokers),
		logger.String("topic", cfg.NotificationTopic),
	)

	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.NotificationTopic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return &NotificationProducer{
		client: client,
		topic:  cfg.NotificationTopic,
		logger: log,
	}, nil
}

// Publish produces one record synchronously.
func (p *NotificationProducer) Publish(ctx context.Context, key string, payload []byte) error {
	if len(payload) == 0 {
		return fmt.Errorf("payload is empty")
	}
	if p.client == nil {
		return fmt.Errorf("kafka producer is not connected")
	}

	rec := &kgo.Record{
		Topic:     p.topic,
		Key:       []byte(key),
		Value:     payload,
		Timestamp: time.Now().UTC(),
	}

	if err := p.client.ProduceSync(ctx, rec).FirstErr(); err != nil {
		p.logger.Error("Failed to publish notification",
			logger.String("topic", p.topic),
			logger.Int("payload_bytes", len(payload)),
			logger.Error(err),
		)
		return fmt.Errorf("publish to kafka topic %s: %w", p.topic, err)
	}

	p.logger.Debug("Published notification", logger.String("topic", p.topic), logger.String("key", key))
	return nil
}

func (p *NotificationProducer) Close(ctx context.Context) error {
	p.logger.Info("Closing Kafka producer", logger.String("topic", p.topic))
	if p.client != nil {
		p.client.Close()
	}
	return nil
}
