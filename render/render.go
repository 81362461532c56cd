package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Shape is the number of hexes on each row of the board, top to bottom.
var Shape = []int{1, 2, 3, 4, 3, 4, 3, 4, 3, 2, 1}

// Cell is what the renderer needs to know about a hex.
type Cell struct {
	Value      int
	Set        bool
	Color      string // "blue", "red" or "" when unowned
	Emphasized bool
}

type Options struct {
	// Plain disables colors, leaving only the layout.
	Plain bool
}

var (
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))

	ansiColors = map[string]lipgloss.Color{
		"blue": lipgloss.Color("4"),
		"red":  lipgloss.Color("1"),
	}
)

// Board lays the hexes out as a rhombus with the names of player 1 above and
// player 2 below. cells must be in board order (H1 first).
func Board(cells []Cell, player1, player2 string, opts Options) (string, error) {
	total := 0
	for _, width := range Shape {
		total += width
	}
	if len(cells) != total {
		return "", fmt.Errorf("board has %d hexes, layout needs %d", len(cells), total)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(strings.Repeat("\t", nameTabs(player1)))
	b.WriteString(player1)
	b.WriteString("\n\n")

	next := 0
	for _, width := range Shape {
		b.WriteString(strings.Repeat("\t", 4-width))
		for _, c := range cells[next : next+width] {
			b.WriteString(cellString(c, opts))
			b.WriteString("\t\t")
		}
		b.WriteString("\n\n")
		next += width
	}

	b.WriteString(strings.Repeat("\t", nameTabs(player2)))
	b.WriteString(player2)
	return b.String(), nil
}

// nameTabs centers short names a little further. Length is in characters.
func nameTabs(name string) int {
	if utf8.RuneCountInString(name) < 6 {
		return 3
	}
	return 2
}

func cellText(c Cell) string {
	if !c.Set {
		return "{ }"
	}
	return fmt.Sprintf(" %d ", c.Value)
}

func cellString(c Cell, opts Options) string {
	text := cellText(c)
	if opts.Plain {
		return text
	}
	return cellStyle(c).Render(text)
}

func cellStyle(c Cell) lipgloss.Style {
	color, ok := ansiColors[c.Color]
	if !ok {
		return emptyStyle
	}
	if c.Emphasized {
		return lipgloss.NewStyle().
			Foreground(color).
			Background(lipgloss.Color("7")).
			Bold(true)
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(color).
		Bold(true).
		Faint(true)
}
