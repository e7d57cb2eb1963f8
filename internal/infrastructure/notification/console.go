package notification

import (
	"context"
	"fmt"
	"io"
	"sync"

	"order_pricing/pkg/logger"
)

// ConsoleSender prints emails instead of delivering them.
type ConsoleSender struct {
	mu     sync.Mutex
	out    io.Writer
	logger logger.Logger
}

func NewConsoleSender(out io.Writer, log logger.Logger) *ConsoleSender {
	if log == nil {
		log = logger.NewNop()
	}
	return &ConsoleSender{out: out, logger: log}
}

func (s *ConsoleSender) Send(ctx context.Context, to, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := fmt.Fprintf(s.out, "--- Email ---\nTo: %s\nSubject: %s\nMessage: %s\n-------------\n", to, subject, body)
	if err != nil {
		return fmt.Errorf("write email: %w", err)
	}
	s.logger.WithContext(ctx).Info("email printed", logger.String("to", to), logger.String("subject", subject))
	return nil
}
