package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	clientapp "order_pricing/internal/application/client"
	orderapp "order_pricing/internal/application/order"
	"order_pricing/internal/bootstrap"
	"order_pricing/internal/domain/client"
)

func newRegisterCmd(opts *rootOptions) *cobra.Command {
	var cmdIn clientapp.RegisterClientCommand

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a client and send the welcome email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				c, err := app.Clients.Register(ctx, cmdIn)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "registered %s <%s> (%s)\n", c.Name(), c.Email(), c.Tier())
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&cmdIn.Name, "name", "", "client name")
	cmd.Flags().StringVar(&cmdIn.Email, "email", "", "client email")
	cmd.Flags().StringVar(&cmdIn.Tier, "tier", "", "client tier (gold, silver, bronze, ...)")
	return cmd
}

func newClientsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clients",
		Short: "List stored clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				clients, err := app.Clients.ListClients(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(clients) == 0 {
					fmt.Fprintln(out, "no clients")
					return nil
				}
				for _, c := range clients {
					fmt.Fprintf(out, "%s\t%s\t%s\n", c.Name(), c.Email(), c.Tier())
				}
				return nil
			})
		},
	}
}

func newOrderCmd(opts *rootOptions) *cobra.Command {
	var name, email, tier string

	cmd := &cobra.Command{
		Use:   "order name=price [name=price...]",
		Short: "Price an order with the client's tier discount and print its summary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client.NewClient(name, email, tier)
			if err != nil {
				return err
			}
			items, err := parseItems(args)
			if err != nil {
				return err
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				o, err := app.Orders.ProcessOrder(ctx, c, items)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), orderapp.Summary(o))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "client name")
	cmd.Flags().StringVar(&email, "email", "", "client email")
	cmd.Flags().StringVar(&tier, "tier", "", "client tier")
	return cmd
}

func newQuoteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "quote name=price [name=price...]",
		Short: "Final price with quantity discount and tax",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := parseItems(args)
			if err != nil {
				return err
			}
			return withApp(cmd, opts, func(ctx context.Context, app *bootstrap.App) error {
				final, err := app.Orders.CalculateFinalPrice(ctx, items)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "final price: R$ %.2f\n", final)
				return nil
			})
		},
	}
}
