// Package display renders cards and decks for terminal output.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/anguschiu1/cardgame/internal/french"
	"github.com/anguschiu1/cardgame/spotit"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	symbolStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4"))

	indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	redSuitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	blackSuitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)
)

// HasColor reports whether the terminal supports colored output.
func HasColor() bool {
	return termenv.EnvColorProfile() != termenv.Ascii
}

// Card renders one Spot It! card as a bordered box listing its symbols
// in alphabet order.
func Card(index int, c spotit.Card) string {
	var b strings.Builder
	b.WriteString(indexStyle.Render(fmt.Sprintf("#%d", index)))
	for _, s := range c.Symbols() {
		b.WriteString("\n")
		b.WriteString(symbolStyle.Render(s.String()))
	}
	return cardStyle.Render(b.String())
}

// Deck renders the whole deck as rows of cards.
func Deck(d *spotit.Deck, perRow int) string {
	if perRow < 1 {
		perRow = 4
	}

	var rows []string
	var row []string
	for i, c := range d.Cards() {
		row = append(row, Card(i, c))
		if len(row) == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// FrenchCard renders a rank-and-suit card, red suits in red.
func FrenchCard(c french.Card) string {
	style := blackSuitStyle
	if c.Suit == french.Hearts || c.Suit == french.Diamonds {
		style = redSuitStyle
	}
	return style.Render(c.String())
}

// FrenchDeck renders the deck as a single wrapped line of cards.
func FrenchDeck(d *french.Deck, perRow int) string {
	if perRow < 1 {
		perRow = 13
	}

	var b strings.Builder
	for i, c := range d.Cards() {
		if i > 0 {
			if i%perRow == 0 {
				b.WriteString("\n")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString(FrenchCard(c))
	}
	return b.String()
}
