package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garrettladley/thoura/internal/archive"
	"github.com/garrettladley/thoura/internal/xslog"
)

func exportCmd() *cobra.Command {
	var (
		flags listFlags
		dsn   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Archive sleep, activity and readiness records",
		Long: "Fetches the three collections one after another for the same window and upserts them " +
			"into SQLite (default), PostgreSQL (postgres://) or Redis (redis://).",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, a, err := newApp(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if dsn == "" {
				dsn = a.cfg.Archive.DSN
			}
			kind, _, err := archive.ParseDSN(dsn)
			if err != nil {
				return err
			}

			sink, err := archive.Open(ctx, dsn)
			if err != nil {
				return fmt.Errorf("failed to open archive: %w", err)
			}
			defer func() { _ = sink.Close() }()

			ctx = xslog.WithAttrs(ctx, xslog.Sink(string(kind)))

			counts, err := archive.Export(ctx, a.client, sink, flags.params())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "archived %d sleep, %d activity, %d readiness records\n",
				counts.Sleep, counts.Activity, counts.Readiness)
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&dsn, "dsn", "", "archive DSN (default: $ARCHIVE_DSN, else ~/.config/thoura/thoura.db)")
	return cmd
}
