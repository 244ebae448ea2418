package ui

import (
	"strconv"
	"strings"

	"github.com/idilsaglam/tictac/internal/game"
)

// BoardView renders the 3x3 grid. cursor is the highlighted cell, or -1 for
// none. Empty cells show their 1-based key hint; winning cells take the
// winner style.
func BoardView(t Theme, b game.Board, cursor int) string {
	win, hasWin := game.WinningLine(b)

	rule := strings.Repeat(t.GridH, 3) + t.GridX +
		strings.Repeat(t.GridH, 3) + t.GridX +
		strings.Repeat(t.GridH, 3)

	var rows []string
	for r := 0; r < 3; r++ {
		cells := make([]string, 3)
		for c := 0; c < 3; c++ {
			i := r*3 + c
			onLine := hasWin && (i == win[0] || i == win[1] || i == win[2])
			cells[c] = cellView(t, b[i], i, i == cursor, onLine)
		}
		rows = append(rows, strings.Join(cells, t.Muted.Render(t.GridV)))
		if r < 2 {
			rows = append(rows, t.Muted.Render(rule))
		}
	}
	return strings.Join(rows, "\n")
}

func cellView(t Theme, m game.Mark, idx int, selected, onLine bool) string {
	glyph := strconv.Itoa(idx + 1)
	style := t.Muted
	switch m {
	case game.X:
		glyph, style = "X", t.XMark
	case game.O:
		glyph, style = "O", t.OMark
	}
	if onLine {
		style = t.Winner
	}
	if selected {
		return t.Cursor.Render(" " + glyph + " ")
	}
	return " " + style.Render(glyph) + " "
}

// MoveLabel is the button text for a history entry.
func MoveLabel(move int) string {
	if move == 0 {
		return "Go to game start"
	}
	return "Go to move #" + strconv.Itoa(move)
}
