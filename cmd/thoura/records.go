package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/garrettladley/thoura/internal/client/oura"
)

type listFlags struct {
	from   string
	to     string
	asJSON bool
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", "first summary date, YYYY-MM-DD (default: 7 days ago)")
	cmd.Flags().StringVar(&f.to, "to", "", "last summary date, YYYY-MM-DD (default: today)")
}

func (f *listFlags) params() *oura.ListParams {
	return &oura.ListParams{Start: f.from, End: f.to}
}

type lister[T any] func(ctx context.Context, c *oura.Client, params *oura.ListParams) ([]T, error)

// recordsCmd builds a command that lists one collection and prints it as a
// table or, with --json, as the API envelope.
func recordsCmd[T any](use, short string, list lister[T], table func(io.Writer, []T) error) *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, a, err := newApp(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			records, err := list(ctx, a.client, flags.params())
			if err != nil {
				return err
			}

			if flags.asJSON {
				return writeJSON(cmd.OutOrStdout(), use, records)
			}
			return table(cmd.OutOrStdout(), records)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "print records as JSON")
	return cmd
}

func sleepCmd() *cobra.Command {
	return recordsCmd("sleep", "List sleep periods",
		func(ctx context.Context, c *oura.Client, p *oura.ListParams) ([]oura.Sleep, error) {
			return c.Sleep.List(ctx, p)
		},
		writeSleepTable,
	)
}

func activityCmd() *cobra.Command {
	return recordsCmd("activity", "List activity days",
		func(ctx context.Context, c *oura.Client, p *oura.ListParams) ([]oura.Activity, error) {
			return c.Activity.List(ctx, p)
		},
		writeActivityTable,
	)
}

func readinessCmd() *cobra.Command {
	return recordsCmd("readiness", "List readiness assessments",
		func(ctx context.Context, c *oura.Client, p *oura.ListParams) ([]oura.Readiness, error) {
			return c.Readiness.List(ctx, p)
		},
		writeReadinessTable,
	)
}
