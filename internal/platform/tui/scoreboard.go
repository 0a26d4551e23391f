package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tap-runner/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForStats = 80 // Minimum width to show the stats sidebar
	statsWidth       = 24
	defaultRunLimit  = 100
)

// RunSource is the read side of the run history.
type RunSource interface {
	TopRuns(limit int) ([]storage.RunEntry, error)
	RecentRuns(limit int) ([]storage.RunEntry, error)
	GetStats() (*storage.Stats, error)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "top / recent"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the run history screen.
type ScoreboardModel struct {
	source    RunSource
	limit     int
	recent    bool // Recent runs instead of top runs
	runs      []storage.RunEntry
	stats     *storage.Stats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	showStats bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(source RunSource, limit, width, height int) ScoreboardModel {
	if limit <= 0 {
		limit = defaultRunLimit
	}
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		source:    source,
		limit:     limit,
		keys:      DefaultScoreboardKeyMap(),
		help:      h,
		width:     width,
		height:    height,
		showStats: width >= minWidthForStats,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized for the current window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load fetches runs and stats from the source.
func (m *ScoreboardModel) load() {
	m.runs, m.stats, m.loadErr = nil, nil, nil
	if m.source == nil {
		m.updateTableRows()
		return
	}

	var err error
	if m.recent {
		m.runs, err = m.source.RecentRuns(m.limit)
	} else {
		m.runs, err = m.source.TopRuns(m.limit)
	}
	if err != nil {
		m.loadErr = err
	}
	if stats, statsErr := m.source.GetStats(); statsErr == nil {
		m.stats = stats
	}
	m.updateTableRows()
}

// updateTableRows refreshes the table from the loaded runs.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rank := fmt.Sprintf("#%d", i+1)
		if m.recent {
			rank = fmt.Sprintf("%d", r.ID)
		}
		rows[i] = table.Row{
			rank,
			fmt.Sprintf("%d", r.Score),
			formatDuration(r.Duration),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Rows returns the rendered table rows.
func (m ScoreboardModel) Rows() []table.Row {
	return m.table.Rows()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			m.recent = !m.recent
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showStats = m.width >= minWidthForStats
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "TOP RUNS"
	if m.recent {
		title = "RECENT RUNS"
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := boxStyle.Render(m.renderTableContent())

	if m.showStats {
		statsRendered := boxStyle.Width(statsWidth).Render(m.renderStats())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableRendered, "  ", statsRendered))
	} else {
		b.WriteString(centerText(tableRendered, m.width))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render("Could not load runs:\n" + m.loadErr.Error())
	}
	if len(m.runs) == 0 {
		return emptyStyle.Render("No runs recorded yet.\nPlay a run to set a score!")
	}
	return m.table.View()
}

// renderStats renders the aggregate stats sidebar.
func (m ScoreboardModel) renderStats() string {
	if m.stats == nil || m.stats.Runs == 0 {
		return "Stats\n\nno runs yet"
	}

	var b strings.Builder
	b.WriteString("Stats\n")
	b.WriteString(strings.Repeat("-", statsWidth-4))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Runs     %d\n", m.stats.Runs)
	fmt.Fprintf(&b, "High     %d\n", m.stats.HighScore)
	fmt.Fprintf(&b, "Average  %.1f\n", m.stats.AvgScore)
	fmt.Fprintf(&b, "Played   %s\n", formatDuration(m.stats.TotalTime))
	if !m.stats.LastPlayed.IsZero() {
		fmt.Fprintf(&b, "Last     %s", m.stats.LastPlayed.Format("Jan 02 15:04"))
	}
	return b.String()
}

// IsQuitting returns true if the user closed the scoreboard.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// formatDuration renders a run length as m:ss.t.
func formatDuration(d time.Duration) string {
	d = d.Round(100 * time.Millisecond)
	minutes := int(d / time.Minute)
	seconds := (d % time.Minute).Seconds()
	return fmt.Sprintf("%d:%04.1f", minutes, seconds)
}

// centerText centers each line of text within width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// RunScoreboard runs the scoreboard screen until the user quits.
func RunScoreboard(source RunSource, limit, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(source, limit, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
