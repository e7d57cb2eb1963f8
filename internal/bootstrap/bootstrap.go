package bootstrap

import (
	"context"
	"fmt"
	"io"

	clientapp "order_pricing/internal/application/client"
	orderapp "order_pricing/internal/application/order"
	"order_pricing/internal/config"
	"order_pricing/internal/domain/client"
	"order_pricing/internal/domain/pricing"
	"order_pricing/internal/domain/repository"
	"order_pricing/internal/infrastructure/encoding/avro"
	kafkainfra "order_pricing/internal/infrastructure/messaging/kafka"
	"order_pricing/internal/infrastructure/notification"
	"order_pricing/internal/infrastructure/persistence/file"
	"order_pricing/internal/infrastructure/persistence/postgres"
	"order_pricing/pkg/logger"
)

// App holds the use cases wired from configuration.
type App struct {
	Clients *clientapp.Service
	Orders  *orderapp.Service

	closers []func()
}

// Close releases pools and producers in reverse order of creation.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// New builds the application. Console notifications are written to out.
func New(ctx context.Context, cfg *config.Config, log logger.Logger, out io.Writer) (*App, error) {
	app := &App{}

	repo, err := app.clientRepository(cfg)
	if err != nil {
		app.Close()
		return nil, err
	}

	sender, err := app.emailSender(ctx, cfg, log, out)
	if err != nil {
		app.Close()
		return nil, err
	}

	rates, err := config.LoadTierRates(cfg.Pricing.TierRatesFile)
	if err != nil {
		app.Close()
		return nil, err
	}
	tax, err := pricing.NewTaxCalculator(cfg.Pricing.TaxRate)
	if err != nil {
		app.Close()
		return nil, err
	}

	validator := client.NewValidator(client.NewEmailValidator())
	app.Clients = clientapp.NewService(repo, validator, sender, log)
	app.Orders = orderapp.NewService(
		pricing.NewTierDiscountCalculator(rates),
		pricing.NewQuantityDiscountCalculator(),
		tax,
		log,
	)
	return app, nil
}

func (a *App) clientRepository(cfg *config.Config) (repository.ClientRepository, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("postgres connection failed: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		return postgres.NewClientRepository(pool), nil
	default:
		return file.NewClientRepository(cfg.Store.Path), nil
	}
}

func (a *App) emailSender(ctx context.Context, cfg *config.Config, log logger.Logger, out io.Writer) (clientapp.EmailSender, error) {
	switch cfg.Notifier {
	case config.NotifierKafka:
		codec, err := avro.NewCodec()
		if err != nil {
			return nil, err
		}
		producer, err := kafkainfra.NewNotificationProducer(cfg.Kafka, log)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = producer.Close(ctx) })
		return notification.NewKafkaSender(codec, producer), nil
	default:
		return notification.NewConsoleSender(out, log), nil
	}
}
