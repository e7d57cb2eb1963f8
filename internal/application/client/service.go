package client

import (
	"context"
	"errors"
	"fmt"

	domain "order_pricing/internal/domain"
	entity "order_pricing/internal/domain/client"
	"order_pricing/internal/domain/repository"
	"order_pricing/pkg/logger"
)

type Validator interface {
	Validate(c entity.Client) error
}

type Service struct {
	repo      repository.ClientRepository
	validator Validator
	notifier  *WelcomeNotifier
	log       logger.Logger
}

func NewService(repo repository.ClientRepository, validator Validator, sender EmailSender, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo:      repo,
		validator: validator,
		notifier:  NewWelcomeNotifier(sender),
		log:       log,
	}
}

type RegisterClientCommand struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Tier  string `json:"tier"`
}

// Register builds the client from raw input and hands it to RegisterClient.
func (s *Service) Register(ctx context.Context, cmd RegisterClientCommand) (entity.Client, error) {
	c, err := entity.NewClient(cmd.Name, cmd.Email, cmd.Tier)
	if err != nil {
		return entity.Client{}, err
	}
	if err := s.RegisterClient(ctx, c); err != nil {
		return entity.Client{}, err
	}
	return c, nil
}

// RegisterClient validates, persists and then welcomes the client. Nothing is
// written or sent when validation or the duplicate check fails. A failing
// sender is logged only; the client is already stored at that point.
func (s *Service) RegisterClient(ctx context.Context, c entity.Client) error {
	if err := s.validator.Validate(c); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, c); err != nil {
		return fmt.Errorf("save client: %w", err)
	}

	log := s.log.WithContext(ctx).WithFields(logger.String("email", c.Email()))
	log.Info("client registered", logger.String("tier", c.Tier()))

	if err := s.notifier.SendWelcome(ctx, c.Email(), c.Name()); err != nil {
		log.Warn("welcome email not sent", logger.Error(err))
	}
	return nil
}

// ListClients treats a store that does not exist yet as "no clients".
func (s *Service) ListClients(ctx context.Context) ([]entity.Client, error) {
	clients, err := s.repo.LoadAll(ctx)
	if errors.Is(err, domain.ErrStoreNotFound) {
		return []entity.Client{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load clients: %w", err)
	}
	return clients, nil
}
