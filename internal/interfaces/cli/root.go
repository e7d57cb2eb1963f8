package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"order_pricing/internal/bootstrap"
	"order_pricing/internal/config"
	"order_pricing/internal/domain/order"
	"order_pricing/pkg/logger"
)

func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	storePath string
	tierRates string
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "pricingctl",
		Short:         "Register clients and price orders",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&opts.storePath, "store", "", "client store file (overrides CLIENT_STORE_PATH)")
	cmd.PersistentFlags().StringVar(&opts.tierRates, "tier-rates", "", "YAML tier discount table (overrides TIER_RATES_FILE)")

	cmd.AddCommand(
		newRegisterCmd(opts),
		newClientsCmd(opts),
		newOrderCmd(opts),
		newQuoteCmd(opts),
	)
	return cmd
}

// withApp loads configuration, applies flag overrides and runs fn against a
// freshly wired application.
func withApp(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, app *bootstrap.App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.storePath != "" {
		cfg.Store.Driver = config.StoreDriverFile
		cfg.Store.Path = opts.storePath
	}
	if opts.tierRates != "" {
		cfg.Pricing.TierRatesFile = opts.tierRates
	}

	log, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	app, err := bootstrap.New(ctx, cfg, log, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer app.Close()

	return fn(ctx, app)
}

// parseItems accepts "name=price" pairs. The last '=' splits, so names may
// contain '='.
func parseItems(args []string) ([]order.Item, error) {
	items := make([]order.Item, 0, len(args))
	for _, arg := range args {
		idx := strings.LastIndex(arg, "=")
		if idx < 0 {
			return nil, fmt.Errorf("item %q: expected name=price", arg)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(arg[idx+1:]), 64)
		if err != nil {
			return nil, fmt.Errorf("item %q: invalid price: %w", arg, err)
		}
		it, err := order.NewItem(arg[:idx], price)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", arg, err)
		}
		items = append(items, it)
	}
	return items, nil
}
