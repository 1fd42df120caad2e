package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/fatflowers/gemcashier/internal/app"
	"github.com/fatflowers/gemcashier/internal/app/service/reconcile"
	"github.com/fatflowers/gemcashier/internal/models"
	"github.com/fatflowers/gemcashier/internal/platform/payhere"
)

type staleOptions struct {
	olderThan time.Duration
	limit     int
	asJSON    bool
}

func stalePaymentsCmd() *cobra.Command {
	opts := &staleOptions{}
	cmd := &cobra.Command{
		Use:   "stale-payments",
		Short: "List pending payments that never received a terminal notification",
		Long: `List payment attempts still pending after the given age. These need to be
checked against the gateway's merchant portal by hand.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStalePayments(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().DurationVar(&opts.olderThan, "older-than", 0, "minimum age of a pending payment (default: reconcile.pending_horizon)")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "maximum number of payments to list (default: reconcile.stale_limit)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func runStalePayments(ctx context.Context, out io.Writer, opts *staleOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var engine *reconcile.Engine
	a := fx.New(app.ServiceModule, fx.NopLogger, fx.Populate(&engine))
	if err := a.Err(); err != nil {
		return err
	}
	startCtx, cancel := context.WithTimeout(ctx, app.DefaultStartTimeout)
	defer cancel()
	if err := a.Start(startCtx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), app.DefaultStopTimeout)
		defer cancel()
		_ = a.Stop(stopCtx)
	}()

	rows, err := engine.StalePending(ctx, opts.olderThan, opts.limit)
	if err != nil {
		return err
	}
	return printPayments(out, rows, opts.asJSON)
}

func printPayments(out io.Writer, rows []*models.Payment, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(out, "no stale pending payments")
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER\tATTEMPT\tAMOUNT\tCURRENCY\tCREATED\tAGE")
	now := time.Now()
	for _, p := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n",
			p.OrderID, p.Attempt, payhere.FormatAmount(p.Amount), p.Currency,
			p.CreatedAt.UTC().Format(time.RFC3339), now.Sub(p.CreatedAt).Truncate(time.Minute))
	}
	return tw.Flush()
}
