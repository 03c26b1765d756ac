// Package tui implements the interactive match game: two cards from a
// generated deck are shown and the player has to name the one symbol
// both cards carry.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anguschiu1/cardgame/spotit"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "pick symbol"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Confirm, k.Quit}}
}

// Model is the Bubble Tea model for the match game.
type Model struct {
	deck *spotit.Deck

	left    spotit.Card
	right   spotit.Card
	choices []spotit.Symbol // symbols of the left card, cursor targets
	cursor  int

	rounds   int
	score    int
	feedback string
	done     bool

	keys keyMap
	help help.Model
}

// NewModel starts a game over the given deck. The deck should already
// be shuffled; it is consumed as rounds are played.
func NewModel(deck *spotit.Deck) Model {
	m := Model{
		deck: deck,
		keys: defaultKeyMap(),
		help: help.New(),
	}

	left, ok := deck.Pop()
	if !ok {
		m.done = true
		return m
	}
	m.left = left
	m.nextRound()
	return m
}

// nextRound keeps the right card in play (as the physical game does)
// and draws a fresh challenger from the deck.
func (m *Model) nextRound() {
	right, ok := m.deck.Pop()
	if !ok {
		m.done = true
		return
	}
	if m.right != nil {
		m.left = m.right
	}
	m.right = right
	m.choices = m.left.Symbols()
	m.cursor = 0
}

// Score returns correct guesses so far.
func (m Model) Score() (score, rounds int) {
	return m.score, m.rounds
}

// Done reports whether the deck has been played out.
func (m Model) Done() bool {
	return m.done
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Confirm):
			if m.done {
				return m, tea.Quit
			}
			m.rounds++
			picked := m.choices[m.cursor]
			if m.right.Has(picked) {
				m.score++
				m.feedback = successStyle.Render(fmt.Sprintf("Spot on! Both cards show %s.", picked))
			} else if shared := m.left.SharedSymbols(m.right); len(shared) > 0 {
				m.feedback = failureStyle.Render(fmt.Sprintf("No, the shared symbol was %s.", shared[0]))
			} else {
				m.feedback = failureStyle.Render("No, these cards share nothing.")
			}
			m.nextRound()
			if m.done {
				return m, tea.Quit
			}
			return m, nil
		}
	}
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.done {
		return fmt.Sprintf("%s\n\nFinal score: %d/%d\n",
			headerStyle.Render(" Spot It! "), m.score, m.rounds)
	}

	var left strings.Builder
	for i, s := range m.choices {
		if i > 0 {
			left.WriteString("\n")
		}
		if i == m.cursor {
			left.WriteString(cursorStyle.Render("> " + s.String()))
		} else {
			left.WriteString(symbolStyle.Render("  " + s.String()))
		}
	}

	var right strings.Builder
	for i, s := range m.right.Symbols() {
		if i > 0 {
			right.WriteString("\n")
		}
		right.WriteString(symbolStyle.Render("  " + s.String()))
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		cardStyle.Render(left.String()),
		cardStyle.Render(right.String()),
	)

	sections := []string{
		headerStyle.Render(" Spot It! ") + scoreStyle.Render(fmt.Sprintf("  score %d/%d  cards left %d", m.score, m.rounds, m.deck.Len())),
		cards,
	}
	if m.feedback != "" {
		sections = append(sections, m.feedback)
	}
	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}
