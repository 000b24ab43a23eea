package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/garrettladley/thoura/internal/paths"
	"github.com/garrettladley/thoura/internal/tui"
)

// runTUI opens the dashboard. Logs go to a file so they do not draw over it.
func runTUI(cmd *cobra.Command, _ []string) error {
	logPath, err := paths.Log()
	if err != nil {
		return err
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	ctx, a, err := newApp(cmd.Context(), logFile)
	if err != nil {
		return err
	}

	model := tui.New(tui.Deps{
		Ctx:    ctx,
		Logger: a.logger,
		Client: a.client,
	})

	if _, err := tea.NewProgram(&model).Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
