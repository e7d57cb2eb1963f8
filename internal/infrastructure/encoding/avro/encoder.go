package avro

import (
	"fmt"
	"time"

	"github.com/linkedin/goavro/v2"
)

type EmailMessage struct {
	ID        string
	To        string
	Subject   string
	Body      string
	CreatedAt time.Time
}

// Codec converts EmailMessage values to and from Avro binary.
type Codec struct {
	codec *goavro.Codec
}

func NewCodec() (*Codec, error) {
	codec, err := goavro.NewCodec(EmailMessageSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to create avro codec: %w", err)
	}
	return &Codec{codec: codec}, nil
}

func (c *Codec) Encode(msg EmailMessage) ([]byte, error) {
	native := map[string]interface{}{
		"id":         msg.ID,
		"to":         msg.To,
		"subject":    msg.Subject,
		"body":       msg.Body,
		"created_at": msg.CreatedAt.UTC(),
	}
	binary, err := c.codec.BinaryFromNative(nil, native)
	if err != nil {
		return nil, fmt.Errorf("failed to encode to avro binary: %w", err)
	}
	return binary, nil
}

func (c *Codec) Decode(data []byte) (EmailMessage, error) {
	native, _, err := c.codec.NativeFromBinary(data)
	if err != nil {
		return EmailMessage{}, fmt.Errorf("failed to decode avro binary: %w", err)
	}
	record, ok := native.(map[string]interface{})
	if !ok {
		return EmailMessage{}, fmt.Errorf("avro payload is not a record")
	}

	var msg EmailMessage
	var okID, okTo, okSubject, okBody, okAt bool
	msg.ID, okID = record["id"].(string)
	msg.To, okTo = record["to"].(string)
	msg.Subject, okSubject = record["subject"].(string)
	msg.Body, okBody = record["body"].(string)
	msg.CreatedAt, okAt = record["created_at"].(time.Time)
	if !okID || !okTo || !okSubject || !okBody || !okAt {
		return EmailMessage{}, fmt.Errorf("avro record has unexpected field types")
	}
	msg.CreatedAt = msg.CreatedAt.UTC()
	return msg, nil
}
