package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svw.info/wordsolver/internal/domain"
)

// Theme colors the grid tiles by feedback state.
type Theme struct {
	Name    string
	absent  lipgloss.Color
	present lipgloss.Color
	correct lipgloss.Color
	text    lipgloss.Color
	muted   lipgloss.Color
	accent  lipgloss.Color
}

var (
	DarkTheme = Theme{
		Name:    "dark",
		absent:  "#3a3a3c",
		present: "#b59f3b",
		correct: "#538d4e",
		text:    "#ffffff",
		muted:   "#777777",
		accent:  "#66b3ff",
	}
	LightTheme = Theme{
		Name:    "light",
		absent:  "#787c7e",
		present: "#c9b458",
		correct: "#6aaa64",
		text:    "#ffffff",
		muted:   "#777777",
		accent:  "#0078d4",
	}
)

// ThemeByName falls back to the dark theme for unknown names.
func ThemeByName(name string) Theme {
	if strings.EqualFold(name, LightTheme.Name) {
		return LightTheme
	}
	return DarkTheme
}

// Toggle switches between dark and light.
func (t Theme) Toggle() Theme {
	if t.Name == LightTheme.Name {
		return DarkTheme
	}
	return LightTheme
}

func (t Theme) tile(state domain.CellState) lipgloss.Style {
	bg := t.absent
	switch state {
	case domain.Present:
		bg = t.present
	case domain.Correct:
		bg = t.correct
	}
	return lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(t.text).
		Background(bg)
}

func (t Theme) mutedText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.muted)
}

func (t Theme) accentText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.accent)
}

// RenderRow draws a row as colored tiles; empty cells show as '·'.
func RenderRow(t Theme, row domain.GuessRow) string {
	tiles := make([]string, len(row))
	for i, c := range row {
		tiles[i] = t.tile(c.State).Render(letterOf(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func letterOf(c domain.Cell) string {
	if c.Letter == 0 {
		return "·"
	}
	return strings.ToUpper(string(c.Letter))
}
