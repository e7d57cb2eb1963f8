package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"order_pricing/internal/infrastructure/encoding/avro"
)

type Publisher interface {
	Publish(ctx context.Context, key string, payload []byte) error
}

// KafkaSender queues emails on the notification topic as Avro records keyed
// by message id.
type KafkaSender struct {
	codec     *avro.Codec
	publisher Publisher
	now       func() time.Time
}

func NewKafkaSender(codec *avro.Codec, publisher Publisher) *KafkaSender {
	return &KafkaSender{codec: codec, publisher: publisher, now: time.Now}
}

func (s *KafkaSender) Send(ctx context.Context, to, subject, body string) error {
	msg := avro.EmailMessage{
		ID:        uuid.NewString(),
		To:        to,
		Subject:   subject,
		Body:      body,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}

	payload, err := s.codec.Encode(msg)
	if err != nil {
		return fmt.Errorf("encode email: %w", err)
	}
	if err := s.publisher.Publish(ctx, msg.ID, payload); err != nil {
		return fmt.Errorf("publish email: %w", err)
	}
	return nil
}
