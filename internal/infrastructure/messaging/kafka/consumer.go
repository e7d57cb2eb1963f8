package kafka

import (
	"context"
	"errors"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"

	"order_pricing/internal/config"
	"order_pricing/internal/infrastructure/encoding/avro"
	"order_pricing/pkg/logger"
)

// Deliverer hands a decoded email to its final channel.
type Deliverer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type NotificationConsumer struct {
	reader   *kafkago.Reader
	codec    *avro.Codec
	delivery Deliverer
	logger   logger.Logger
}

func NewNotificationConsumer(cfg config.KafkaConfig, codec *avro.Codec, delivery Deliverer, log logger.Logger) *NotificationConsumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.ConsumerGroup,
		Topic:    cfg.NotificationTopic,
		MinBytes: 1,
		MaxBytes: 1e6,
	})

	return &NotificationConsumer{
		reader:   reader,
		codec:    codec,
		delivery: delivery,
		logger:   log,
	}
}

// Start blocks until ctx is canceled or the reader fails. Messages that do not
// decode are logged and skipped.
func (c *NotificationConsumer) Start(ctx context.Context) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("read message: %w", err)
		}

		if err := c.handle(ctx, msg.Value); err != nil {
			c.logger.Warn("Notification skipped",
				logger.Int64("offset", msg.Offset),
				logger.Error(err),
			)
		}
	}
}

func (c *NotificationConsumer) handle(ctx context.Context, value []byte) error {
	email, err := c.codec.Decode(value)
	if err != nil {
		return fmt.Errorf("decode message: %w", err)
	}
	if err := c.delivery.Send(ctx, email.To, email.Subject, email.Body); err != nil {
		return fmt.Errorf("deliver %s: %w", email.ID, err)
	}
	return nil
}

func (c *NotificationConsumer) Close() {
	_ = c.reader.Close()
}
