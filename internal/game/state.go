package game

import "fmt"

// State is a game seen through its move history: every board that existed
// since the start plus a pointer to the one currently displayed. State is a
// value type; Play and JumpTo return a new State and never mutate the
// receiver, so a previously held State keeps reading what it always read.
type State struct {
	history []Board
	current int
}

// New returns a fresh game: one empty board, X to move.
func New() State {
	return State{history: make([]Board, 1)}
}

// Play places the mark of the player to move at cell and returns the
// resulting state. History is truncated to the displayed move before the new
// board is appended, so playing from a past move discards the old future.
// Playing an occupied cell, a cell outside the board, or any cell once the
// game is won does nothing and returns the receiver unchanged.
func (s State) Play(cell int) State {
	if cell < 0 || cell >= len(s.history[s.current]) {
		return s
	}
	b := s.Board()
	if b[cell] != Empty || Winner(b) != Empty {
		return s
	}
	if s.XIsNext() {
		b[cell] = X
	} else {
		b[cell] = O
	}
	// Full slice expression: appending after a jump must never write into a
	// backing array that an earlier State still references.
	return State{
		history: append(s.history[:s.current+1:s.current+1], b),
		current: s.current + 1,
	}
}

// JumpTo moves the display pointer to a recorded move. History is untouched.
// move must index an existing entry; anything else is a bug in the caller,
// since move indices only ever come from this history.
func (s State) JumpTo(move int) State {
	if move < 0 || move >= len(s.history) {
		panic(fmt.Sprintf("game: jump to move %d with %d recorded", move, len(s.history)))
	}
	s.current = move
	return s
}

// XIsNext reports whether X owns the next move. Turn order is derived from
// the move pointer, never stored: even moves belong to X.
func (s State) XIsNext() bool { return s.current%2 == 0 }

// Board returns the currently displayed board.
func (s State) Board() Board { return s.history[s.current] }

// Winner returns the winner on the currently displayed board, or Empty.
func (s State) Winner() Mark { return Winner(s.Board()) }

// CurrentMove returns the index of the displayed history entry.
func (s State) CurrentMove() int { return s.current }

// Len returns the number of recorded boards, the initial empty one included.
func (s State) Len() int { return len(s.history) }

// Entry returns the board recorded at move i.
func (s State) Entry(i int) Board { return s.history[i] }

// Status renders the one-line game status shown under the board.
func (s State) Status() string {
	if w := s.Winner(); w != Empty {
		return "Winner: " + string(w)
	}
	if s.XIsNext() {
		return "Next player: X"
	}
	return "Next player: O"
}
