package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/garrettladley/thoura/internal/client/oura"
	"github.com/garrettladley/thoura/internal/config"
	"github.com/garrettladley/thoura/internal/xslog"
)

type app struct {
	cfg    config.Config
	logger *slog.Logger
	client *oura.Client
}

// newApp reads configuration and builds the logger and API client shared by
// every command. The returned context carries the logger.
func newApp(ctx context.Context, logOut io.Writer) (context.Context, *app, error) {
	cfg, err := config.Read()
	if err != nil {
		return ctx, nil, fmt.Errorf("failed to read config: %w", err)
	}

	logger := xslog.NewLogger(logOut, cfg.LogLevel).With(xslog.Version())
	ctx = xslog.WithLogger(ctx, logger)

	client := oura.New(cfg.Oura.AccessToken,
		oura.WithBaseURL(cfg.Oura.BaseURL),
		oura.WithTimeout(cfg.Oura.Timeout),
		oura.WithLogger(logger),
	)

	return ctx, &app{cfg: cfg, logger: logger, client: client}, nil
}
