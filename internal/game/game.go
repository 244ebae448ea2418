// Package game implements the tic-tac-toe rules and the move-history state
// machine. It knows nothing about rendering or input.
package game

// Mark is a cell occupant.
type Mark string

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

// Board is a 3x3 grid stored row-major (index = row*3 + col).
type Board [9]Mark

// winLines are the 8 winning triples, in fixed order: rows top to bottom,
// columns left to right, then the two diagonals.
var winLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Winner returns the mark owning the first completed line, or Empty when no
// line is complete. A full board with no line also reports Empty, so callers
// cannot tell a draw from a game still in progress.
func Winner(b Board) Mark {
	for _, ln := range winLines {
		a := b[ln[0]]
		if a != Empty && a == b[ln[1]] && a == b[ln[2]] {
			return a
		}
	}
	return Empty
}

// WinningLine returns the cell indices of the first completed line, for
// callers that want to highlight it. ok is false when there is no winner.
func WinningLine(b Board) (line [3]int, ok bool) {
	for _, ln := range winLines {
		a := b[ln[0]]
		if a != Empty && a == b[ln[1]] && a == b[ln[2]] {
			return ln, true
		}
	}
	return [3]int{}, false
}
