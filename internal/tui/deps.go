package tui

import (
	"context"
	"log/slog"

	"github.com/garrettladley/thoura/internal/client/oura"
)

type Deps struct {
	Ctx    context.Context
	Logger *slog.Logger
	Client *oura.Client
}
