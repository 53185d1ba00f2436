package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lunaris/internal/registry"
	"github.com/vovakirdan/lunaris/internal/storage"
)

const (
	boardSize      = 10 // rows per leaderboard page
	stackBelowCols = 72 // narrower terminals stack the stats under the table
)

// allModesName labels the cross-mode page.
const allModesName = "ALL MODES"

type boardKeys struct {
	Prev key.Binding
	Next key.Binding
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Up, k.Down, k.Back, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultBoardKeys = boardKeys{
	Prev: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/h", "prev")),
	Next: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next")),
	Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("b", "menu")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// boardPage is one page of the scoreboard. The zero Mode is the
// cross-mode page.
type boardPage struct {
	Mode    registry.ModeInfo
	Entries []storage.ScoreEntry
}

func (p boardPage) allModes() bool { return p.Mode.ID == "" }

func (p boardPage) title() string {
	if p.allModes() {
		return allModesName
	}
	return p.Mode.Name
}

// ScoreboardModel shows the best runs per mode next to the mode's
// aggregate stats, plus a page ranking runs across all modes.
type ScoreboardModel struct {
	store *storage.Store
	pages []boardPage
	page  int
	stats map[string]*storage.ModeStats
	err   error

	table  table.Model
	help   help.Model
	keys   boardKeys
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates the scoreboard opened on the cross-mode page.
// A nil store shows empty pages.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	pages := []boardPage{{}}
	for _, info := range registry.List() {
		pages = append(pages, boardPage{Mode: info})
	}

	m := ScoreboardModel{
		store:  store,
		pages:  pages,
		help:   help.New(),
		keys:   defaultBoardKeys,
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

// reload refreshes the stats and the entries of the current page.
func (m *ScoreboardModel) reload() {
	m.err = nil
	if m.store != nil {
		stats, err := m.store.GetAllModesStats()
		if err != nil {
			m.err = err
		}
		m.stats = stats

		p := &m.pages[m.page]
		if p.allModes() {
			p.Entries, err = m.store.Leaderboard(boardSize)
		} else {
			p.Entries, err = m.store.TopScores(p.Mode.ID, boardSize)
		}
		if err != nil {
			m.err = err
		}
	}
	m.table = m.newTable()
}

func (m ScoreboardModel) newTable() table.Model {
	p := m.pages[m.page]

	cols := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Tag", Width: 4},
		{Title: "Score", Width: 8},
	}
	if p.allModes() {
		cols = append(cols, table.Column{Title: "Mode", Width: 10})
	}
	cols = append(cols, table.Column{Title: "When", Width: 12})

	rows := make([]table.Row, len(p.Entries))
	for i, e := range p.Entries {
		row := table.Row{fmt.Sprintf("%d", i+1), e.Initials, fmt.Sprintf("%d", e.Score)}
		if p.allModes() {
			row = append(row, modeName(e.ModeID))
		}
		rows[i] = append(row, e.CreatedAt.Format("Jan 02 15:04"))
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(boardSize, max(m.height-10, 3))),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#00f3ff")).
		Bold(true)
	t.SetStyles(s)
	return t
}

func modeName(id string) string {
	if info, ok := registry.Info(id); ok {
		return info.Name
	}
	return strings.ToUpper(id)
}

// statsLines summarizes the page's stats panel.
func statsLines(p boardPage, stats map[string]*storage.ModeStats) []string {
	if p.allModes() {
		lines := []string{"MODE        BEST   RUNS"}
		for _, info := range registry.List() {
			best, runs := "-", "0"
			if st, ok := stats[info.ID]; ok {
				best, runs = fmt.Sprintf("%d", st.HighScore), fmt.Sprintf("%d", st.RunsCount)
			}
			lines = append(lines, fmt.Sprintf("%-10s %6s %6s", info.Name, best, runs))
		}
		return lines
	}

	st, ok := stats[p.Mode.ID]
	if !ok || st.RunsCount == 0 {
		return []string{"Not played yet."}
	}
	return []string{
		fmt.Sprintf("Best     %d", st.HighScore),
		fmt.Sprintf("Runs     %d", st.RunsCount),
		fmt.Sprintf("Average  %.0f", st.AvgScore),
		fmt.Sprintf("Total    %d", st.TotalScore),
		"Last     " + st.LastPlayed.Format("Jan 02 15:04"),
	}
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles paging, scrolling and leaving.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.page = (m.page + 1) % len(m.pages)
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.page = (m.page + len(m.pages) - 1) % len(m.pages)
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the current page.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}
	p := m.pages[m.page]

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd700")).
		Render(centerText("LEADERBOARD", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.pageTabs(), m.width))
	b.WriteString("\n")

	desc := p.Mode.Description
	if p.allModes() {
		desc = "Best runs across every mode"
	}
	b.WriteString(dim.Italic(true).Render(centerText(desc, m.width)))
	b.WriteString("\n\n")

	var board string
	switch {
	case m.err != nil:
		board = dim.Render("Cannot read scores: " + m.err.Error())
	case len(p.Entries) == 0:
		board = dim.Italic(true).Render("No scores recorded yet.")
	default:
		board = m.table.View()
	}
	panels := []string{box.Render(board), box.Render(strings.Join(statsLines(p, m.stats), "\n"))}
	if m.width < stackBelowCols {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, panels...))
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panels[0], "  ", panels[1]))
	}

	b.WriteString("\n")
	b.WriteString(dim.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) pageTabs() string {
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color("#00f3ff")).Padding(0, 1)
	idle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)

	tabs := make([]string, len(m.pages))
	for i, p := range m.pages {
		if i == m.page {
			tabs[i] = active.Render(p.title())
		} else {
			tabs[i] = idle.Render(p.title())
		}
	}
	line := strings.Join(tabs, "")
	if lipgloss.Width(line) > m.width {
		return fmt.Sprintf("‹ %s ›", m.pages[m.page].title())
	}
	return line
}

// PageTitle returns the name of the page on display.
func (m ScoreboardModel) PageTitle() string {
	return m.pages[m.page].title()
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
