package tui

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/thoura/internal/tui/components/footer"
	"github.com/garrettladley/thoura/internal/tui/theme"
)

var _ tea.Model = (*Model)(nil)

type Model struct {
	ready          bool
	loading        bool
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	deps           Deps

	snapshot  Snapshot
	err       error
	fetchedAt time.Time
}

func New(deps Deps) Model {
	return Model{
		loading: true,
		theme:   theme.New(),
		deps:    deps,
	}
}

func (m *Model) Init() tea.Cmd {
	return fetchSnapshotCmd(m.deps.Ctx, m.deps.Client)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			if m.loading {
				return m, nil
			}
			m.loading = true
			return m, fetchSnapshotCmd(m.deps.Ctx, m.deps.Client)
		}

	case SnapshotMsg:
		m.loading = false
		m.snapshot = msg.Snapshot
		m.err = msg.Err
		m.fetchedAt = msg.FetchedAt
		if m.deps.Logger != nil {
			m.deps.Logger.Debug("dashboard refreshed", slog.Time("fetched_at", msg.FetchedAt))
		}
	}

	return m, nil
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true
	view.BackgroundColor = m.theme.Background()

	if !m.ready {
		return view
	}

	view.SetContent(m.render())
	return view
}

// render lays out the page body above the footer.
func (m *Model) render() string {
	var body string
	if m.loading && m.fetchedAt.IsZero() {
		body = lipgloss.JoinVertical(
			lipgloss.Center,
			m.LogoView(),
			"",
			m.theme.Muted().Render("loading…"),
		)
	} else {
		body = m.DashboardView()
	}

	foot := footer.New(m.status(), m.viewportWidth).Render()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.Place(
			m.viewportWidth,
			max(m.viewportHeight-lipgloss.Height(foot), 0),
			lipgloss.Center,
			lipgloss.Center,
			body,
		),
		foot,
	)
}

func (m *Model) status() string {
	switch {
	case m.loading:
		return m.theme.Muted().Render("refreshing…")
	case m.err != nil:
		return m.theme.Error().Render("partial data, see log")
	case !m.fetchedAt.IsZero():
		return m.theme.Muted().Render("updated " + m.fetchedAt.Format("15:04"))
	default:
		return ""
	}
}
