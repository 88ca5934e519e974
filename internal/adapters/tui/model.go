// Package tui is the interactive terminal front end.
//
// The model owns the grid the user types into and cycles colors on. Searches
// run as tea.Cmd values on a copy of the grid and report back with a
// searchDoneMsg, so the interface stays responsive while the dictionary is
// scanned.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"svw.info/wordsolver/internal/domain"
	"svw.info/wordsolver/internal/ports"
)

// Searcher runs a full search; usecase.Service implements it.
type Searcher interface {
	Search(ctx context.Context, grid []domain.GuessRow, wordLength, limit int) (*domain.SearchResult, ports.Stats, error)
}

// Config sizes the grid and result list.
type Config struct {
	Rows       int
	WordLength int
	Limit      int
	Theme      string
}

type focus int

const (
	focusGrid focus = iota
	focusSuggestions
)

// searchDoneMsg carries a finished search back to the model.
type searchDoneMsg struct {
	gen    int
	result *domain.SearchResult
	stats  ports.Stats
	err    error
}

const (
	maxHistory      = 5
	lettersToShow   = 10
	statusReady     = "Type a guess. Press space on a letter to cycle its color."
	statusSearching = "Calculating the best words..."
)

// Model is the bubbletea model for the solver grid.
type Model struct {
	ctx      context.Context
	cfg      Config
	searcher Searcher

	grid     []domain.GuessRow
	row, col int
	focus    focus
	selected int

	// gen is bumped on reset so results of an older grid are dropped.
	gen       int
	searching bool
	result    *domain.SearchResult
	history   []string
	status    string

	theme    Theme
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	quitting bool
}

// New creates a model with an empty grid. Searches run under ctx, so
// canceling it stops a search still in flight.
func New(ctx context.Context, s Searcher, cfg Config) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	return Model{
		ctx:      ctx,
		cfg:      cfg,
		searcher: s,
		grid:     newGrid(cfg.Rows, cfg.WordLength),
		status:   statusReady,
		theme:    ThemeByName(cfg.Theme),
		keys:     defaultKeyMap(),
		help:     help.New(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func newGrid(rows, length int) []domain.GuessRow {
	g := make([]domain.GuessRow, rows)
	for i := range g {
		g[i] = make(domain.GuessRow, length)
	}
	return g
}

// Grid returns a copy of the current grid.
func (m Model) Grid() []domain.GuessRow {
	out := make([]domain.GuessRow, len(m.grid))
	for i, r := range m.grid {
		out[i] = append(domain.GuessRow(nil), r...)
	}
	return out
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case spinner.TickMsg:
		if !m.searching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case searchDoneMsg:
		return m.finishSearch(msg), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Reset):
		return m.reset(), nil
	case key.Matches(msg, m.keys.Theme):
		m.theme = m.theme.Toggle()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		if m.focus == focusSuggestions {
			m.focus = focusGrid
		} else if m.result != nil && len(m.result.Ranked) > 0 {
			m.focus = focusSuggestions
		} else {
			m.status = "No suggestions yet. Press enter to search."
		}
		return m, nil
	}
	if m.focus == focusSuggestions {
		return m.handleSuggestionKey(msg)
	}
	return m.handleGridKey(msg)
}

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cell := &m.grid[m.row][m.col]
	switch {
	case key.Matches(msg, m.keys.Search):
		return m.startSearch()
	case key.Matches(msg, m.keys.Cycle):
		cell.State = cell.State.Next()
	case key.Matches(msg, m.keys.Erase):
		if cell.Letter == 0 && m.col > 0 {
			m.col--
			cell = &m.grid[m.row][m.col]
		}
		cell.Letter = 0
	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(msg, m.keys.Down):
		if m.row < len(m.grid)-1 {
			m.row++
		}
	case key.Matches(msg, m.keys.Left):
		if m.col > 0 {
			m.col--
		}
	case key.Matches(msg, m.keys.Right):
		if m.col < m.cfg.WordLength-1 {
			m.col++
		}
	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && unicode.IsLetter(msg.Runes[0]) {
			cell.Letter = domain.NormalizeLetter(msg.Runes[0])
			if m.col < m.cfg.WordLength-1 {
				m.col++
			}
		}
	}
	return m, nil
}

func (m Model) handleSuggestionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.result.Ranked)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Search):
		return m.useSuggestion(), nil
	}
	return m, nil
}

func (m Model) startSearch() (tea.Model, tea.Cmd) {
	if m.searching {
		return m, nil
	}
	m.searching = true
	m.status = statusSearching
	return m, tea.Batch(m.spinner.Tick, searchCmd(m.ctx, m.searcher, m.gen, m.Grid(), m.cfg.WordLength, m.cfg.Limit))
}

func searchCmd(ctx context.Context, s Searcher, gen int, grid []domain.GuessRow, length, limit int) tea.Cmd {
	return func() tea.Msg {
		res, st, err := s.Search(ctx, grid, length, limit)
		return searchDoneMsg{gen: gen, result: res, stats: st, err: err}
	}
}

func (m Model) finishSearch(msg searchDoneMsg) Model {
	if msg.gen != m.gen {
		return m
	}
	m.searching = false
	if msg.err != nil {
		m.status = "Search failed: " + msg.err.Error()
		return m
	}
	if m.result != nil {
		m.history = append([]string{summary(m.result)}, m.history...)
		if len(m.history) > maxHistory {
			m.history = m.history[:maxHistory]
		}
	}
	m.result = msg.result
	m.selected = 0
	m.status = fmt.Sprintf("Search complete in %s. Tab to pick a suggestion.", msg.stats.Duration.Round(time.Microsecond))
	return m
}

// nextEmptyRow returns the first row with no letters, -1 when the grid is full.
func (m Model) nextEmptyRow() int {
	for i, r := range m.grid {
		if r.Empty() {
			return i
		}
	}
	return -1
}

func (m Model) useSuggestion() Model {
	word := m.result.Ranked[m.selected].Word
	letters := []rune(word)
	r := m.nextEmptyRow()
	switch {
	case r < 0:
		m.status = fmt.Sprintf("Grid full: no empty row for %s.", strings.ToUpper(word))
		return m
	case len(letters) != m.cfg.WordLength:
		m.status = fmt.Sprintf("%s does not fit the grid.", strings.ToUpper(word))
		return m
	}
	for c, l := range letters {
		m.grid[r][c] = domain.Cell{Letter: l}
	}
	m.row, m.col = r, 0
	m.focus = focusGrid
	m.status = fmt.Sprintf("Placed %s in row %d. Color it and search again.", strings.ToUpper(word), r+1)
	return m
}

func (m Model) reset() Model {
	m.gen++
	m.grid = newGrid(m.cfg.Rows, m.cfg.WordLength)
	m.row, m.col = 0, 0
	m.focus = focusGrid
	m.selected = 0
	m.searching = false
	m.result = nil
	m.history = nil
	m.status = "Grid reset. Ready for a new attempt."
	return m
}

func summary(res *domain.SearchResult) string {
	words := res.Suggestions()
	if len(words) > 3 {
		words = words[:3]
	}
	return fmt.Sprintf("%d words: %s", res.Total, strings.ToUpper(strings.Join(words, ", ")))
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	title := lipgloss.NewStyle().Bold(true).Render("Word Solver")
	status := m.status
	if m.searching {
		status = m.spinner.View() + " " + status
	}
	left := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		m.gridView(),
		"",
		lipgloss.NewStyle().Width(40).Render(status),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", m.resultsView())
	return body + "\n\n" + m.help.View(m.keys) + "\n"
}

func (m Model) gridView() string {
	lines := make([]string, len(m.grid))
	for r, row := range m.grid {
		tiles := make([]string, len(row))
		for c, cell := range row {
			st := m.theme.tile(cell.State)
			if m.focus == focusGrid && r == m.row && c == m.col {
				st = st.Underline(true).Reverse(true)
			}
			tiles[c] = st.Render(letterOf(cell))
		}
		marker := "  "
		if r == m.row {
			marker = "› "
		}
		lines[r] = marker + lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
	}
	return strings.Join(lines, "\n")
}

func (m Model) resultsView() string {
	muted := m.theme.mutedText()
	if m.result == nil {
		return muted.Render("No search yet.\nType a guess, color it, press enter.")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d possible words.\n", m.result.Total)
	if len(m.result.Ranked) > 0 {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render("Best guesses (tab, enter to use):"))
		b.WriteString("\n")
		for i, rc := range m.result.Ranked {
			line := fmt.Sprintf("  • %s  %s", strings.ToUpper(rc.Word),
				muted.Render(fmt.Sprintf("letters %d, score %d", rc.Coverage, rc.Frequency)))
			if m.focus == focusSuggestions && i == m.selected {
				line = m.theme.accentText().Underline(true).Render(fmt.Sprintf("› %s", strings.ToUpper(rc.Word))) +
					"  " + muted.Render(fmt.Sprintf("letters %d, score %d", rc.Coverage, rc.Frequency))
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	if len(m.result.Letters) > 0 {
		letters := m.result.Letters
		if len(letters) > lettersToShow {
			letters = letters[:lettersToShow]
		}
		parts := make([]string, len(letters))
		for i, f := range letters {
			parts[i] = fmt.Sprintf("%c %d", unicode.ToUpper(f.Letter), f.Words)
		}
		b.WriteString("Common letters: ")
		b.WriteString(strings.Join(parts, " · "))
		b.WriteString("\n")
	}
	for _, h := range m.history {
		b.WriteString(muted.Render(strings.Repeat("─", 30)))
		b.WriteString("\n")
		b.WriteString(muted.Render(h))
		b.WriteString("\n")
	}
	return b.String()
}
