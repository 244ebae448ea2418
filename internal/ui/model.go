package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/tictac/internal/game"
)

type focusArea int

const (
	focusBoard focusArea = iota
	focusMoves
)

// Model is the Bubble Tea model for one game session. The whole view is a
// projection of the game state; nothing derived from it is stored.
type Model struct {
	state  game.State
	cursor int // board cell under the cursor
	sel    int // selected move-list entry
	focus  focusArea

	keys  KeyMap
	help  help.Model
	moves viewport.Model
	theme Theme
}

// NewModel returns a model showing a fresh game with the cursor on the
// center cell.
func NewModel(t Theme) Model {
	m := Model{
		state:  game.New(),
		cursor: 4,
		keys:   defaultKeyMap(),
		help:   help.New(),
		moves:  viewport.New(24, 11),
		theme:  t,
	}
	return m.syncMoves()
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		// Board pane is fixed; give the move list whatever height is left
		// after title, status, and help.
		h := msg.Height - 8
		if h < 3 {
			h = 3
		}
		m.moves.Height = h
		return m.syncMoves(), nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.New):
			m.state = game.New()
			m.cursor, m.sel, m.focus = 4, 0, focusBoard
			return m.syncMoves(), nil

		case key.Matches(msg, m.keys.Focus):
			if m.focus == focusBoard {
				m.focus = focusMoves
				m.sel = m.state.CurrentMove()
			} else {
				m.focus = focusBoard
			}
			return m.syncMoves(), nil

		case key.Matches(msg, m.keys.Cell):
			return m.play(int(msg.String()[0] - '1')), nil

		case key.Matches(msg, m.keys.Select):
			if m.focus == focusBoard {
				return m.play(m.cursor), nil
			}
			m.state = m.state.JumpTo(m.sel)
			return m.syncMoves(), nil

		case key.Matches(msg, m.keys.Up):
			return m.moveCursor(-3, -1), nil
		case key.Matches(msg, m.keys.Down):
			return m.moveCursor(3, 1), nil
		case key.Matches(msg, m.keys.Left):
			return m.moveCursor(-1, 0), nil
		case key.Matches(msg, m.keys.Right):
			return m.moveCursor(1, 0), nil
		}
	}
	return m, nil
}

// play drops a mark on the current board. Illegal cells are silent no-ops,
// same as the core: a click on a filled square does nothing.
func (m Model) play(cell int) Model {
	m.state = m.state.Play(cell)
	m.sel = m.state.CurrentMove()
	return m.syncMoves()
}

// moveCursor shifts the board cursor by boardDelta or the move-list
// selection by listDelta, depending on focus. Both clamp at the edges.
func (m Model) moveCursor(boardDelta, listDelta int) Model {
	if m.focus == focusBoard {
		next := m.cursor + boardDelta
		if next >= 0 && next < 9 {
			m.cursor = next
		}
		return m
	}
	next := m.sel + listDelta
	if next >= 0 && next < m.state.Len() {
		m.sel = next
	}
	return m.syncMoves()
}

// syncMoves rebuilds the move-list viewport content and keeps the selected
// entry scrolled into view.
func (m Model) syncMoves() Model {
	t := m.theme
	lines := make([]string, m.state.Len())
	for i := range lines {
		prefix := "  "
		if m.focus == focusMoves && i == m.sel {
			prefix = t.Selected.Render("> ")
		}
		label := MoveLabel(i)
		if i == m.state.CurrentMove() {
			label = t.Accent.Render(label)
		} else {
			label = t.Muted.Render(label)
		}
		lines[i] = prefix + label
	}
	m.moves.SetContent(strings.Join(lines, "\n"))

	if m.sel < m.moves.YOffset {
		m.moves.SetYOffset(m.sel)
	}
	if m.sel >= m.moves.YOffset+m.moves.Height {
		m.moves.SetYOffset(m.sel - m.moves.Height + 1)
	}
	return m
}

func (m Model) View() string {
	t := m.theme

	cursor := -1
	if m.focus == focusBoard {
		cursor = m.cursor
	}
	board := Panel(t, BoardView(t, m.state.Board(), cursor))
	moves := Panel(t, t.Title.Render("Moves")+"\n"+m.moves.View())

	title := t.Title.Render("tictac") +
		t.Muted.Render(fmt.Sprintf("  move %d of %d", m.state.CurrentMove(), m.state.Len()-1))

	status := t.Accent.Render(m.state.Status())
	if m.state.Winner() != game.Empty {
		status = t.Winner.Render(m.state.Status())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, board, " ", moves),
		status,
		m.help.View(m.keys),
	) + "\n"
}

// Run starts the interactive game and blocks until the player quits.
func Run(t Theme, altScreen bool) error {
	var opts []tea.ProgramOption
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(NewModel(t), opts...).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
