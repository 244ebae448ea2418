package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// play applies a sequence of cells and fails the test if any of them was a
// no-op, so scripted setups cannot silently drift.
func play(t *testing.T, s State, cells ...int) State {
	t.Helper()
	for _, c := range cells {
		next := s.Play(c)
		require.NotEqualf(t, s.CurrentMove(), next.CurrentMove(), "move at %d was rejected", c)
		s = next
	}
	return s
}

// diffCells returns the indices where two boards disagree.
func diffCells(a, b Board) []int {
	var out []int
	for i := range a {
		if a[i] != b[i] {
			out = append(out, i)
		}
	}
	return out
}

func TestNew(t *testing.T) {
	s := New()

	require.Equal(t, 1, s.Len())
	require.Equal(t, 0, s.CurrentMove())
	require.True(t, s.XIsNext())
	require.Equal(t, Board{}, s.Board())
	require.Equal(t, "Next player: X", s.Status())
}

func TestState_Play(t *testing.T) {
	t.Run("first move", func(t *testing.T) {
		s := New().Play(0)

		require.Equal(t, X, s.Board()[0])
		require.Equal(t, 1, s.CurrentMove())
		require.Equal(t, 2, s.Len())
		require.Equal(t, "Next player: O", s.Status())
	})

	t.Run("turns alternate by parity", func(t *testing.T) {
		s := play(t, New(), 4, 0, 8)

		require.Equal(t, X, s.Board()[4])
		require.Equal(t, O, s.Board()[0])
		require.Equal(t, X, s.Board()[8])
		require.False(t, s.XIsNext())
	})

	t.Run("occupied cell is a no-op", func(t *testing.T) {
		s := New().Play(0)
		again := s.Play(0)

		require.Equal(t, s, again)
		require.Equal(t, 1, again.CurrentMove())
	})

	t.Run("out-of-range cell is a no-op", func(t *testing.T) {
		s := New()
		require.Equal(t, s, s.Play(-1))
		require.Equal(t, s, s.Play(9))
	})

	t.Run("play after a win is a no-op", func(t *testing.T) {
		// X takes the top row, O sits at 3 and 4.
		s := play(t, New(), 0, 3, 1, 4, 2)
		require.Equal(t, X, s.Winner())
		require.Equal(t, "Winner: X", s.Status())

		require.Equal(t, s, s.Play(5))
		require.Equal(t, s, s.Play(8))
	})
}

func TestState_HistoryInvariants(t *testing.T) {
	s := play(t, New(), 4, 0, 8, 2, 6)

	// Every play leaves the pointer at the last entry.
	require.Equal(t, s.Len(), s.CurrentMove()+1)

	// Consecutive entries differ in exactly one cell, empty before, the
	// mover's mark after, alternating X then O.
	for i := 1; i < s.Len(); i++ {
		prev, cur := s.Entry(i-1), s.Entry(i)
		d := diffCells(prev, cur)
		require.Lenf(t, d, 1, "entries %d and %d", i-1, i)
		require.Equal(t, Empty, prev[d[0]])
		want := X
		if i%2 == 0 {
			want = O
		}
		assert.Equal(t, want, cur[d[0]])
	}
}

func TestState_JumpTo(t *testing.T) {
	t.Run("moves the pointer only", func(t *testing.T) {
		s := play(t, New(), 0, 4, 8)
		back := s.JumpTo(1)

		require.Equal(t, 1, back.CurrentMove())
		require.Equal(t, s.Len(), back.Len())
		require.Equal(t, Board{0: X}, back.Board())
		require.Equal(t, "Next player: O", back.Status())

		// The jumped-from state still sees the full game.
		require.Equal(t, 3, s.CurrentMove())
		require.Equal(t, X, s.Board()[8])
	})

	t.Run("jumping after a win stays legal", func(t *testing.T) {
		s := play(t, New(), 0, 3, 1, 4, 2)
		require.Equal(t, X, s.Winner())

		back := s.JumpTo(0)
		require.Equal(t, Empty, back.Winner())
		require.Equal(t, "Next player: X", back.Status())
	})

	t.Run("out of range panics", func(t *testing.T) {
		s := New().Play(0)
		require.Panics(t, func() { s.JumpTo(-1) })
		require.Panics(t, func() { s.JumpTo(2) })
	})
}

func TestState_PlayAfterJumpTruncates(t *testing.T) {
	s := play(t, New(), 0, 4, 8)

	branched := s.JumpTo(1).Play(5)

	require.Equal(t, 3, branched.Len())
	require.Equal(t, 2, branched.CurrentMove())
	require.Equal(t, Board{}, branched.Entry(0))
	require.Equal(t, Board{0: X}, branched.Entry(1))
	require.Equal(t, Board{0: X, 5: O}, branched.Entry(2))
}

func TestState_BranchDoesNotClobberSibling(t *testing.T) {
	s := play(t, New(), 0, 4, 8)

	// Branch twice from the same past move. Each branch gets its own future;
	// neither overwrites the original entry at index 2 or the other branch.
	a := s.JumpTo(1).Play(5)
	b := s.JumpTo(1).Play(7)

	require.Equal(t, Board{0: X, 4: O, 8: X}, s.Entry(3))
	require.Equal(t, Board{0: X, 4: O}, s.Entry(2))
	require.Equal(t, Board{0: X, 5: O}, a.Entry(2))
	require.Equal(t, Board{0: X, 7: O}, b.Entry(2))
}

func TestState_FullGameScenario(t *testing.T) {
	// The end-to-end walk: play, rejected click, win, jump, branch.
	s := New()

	s = s.Play(0)
	require.Equal(t, X, s.Board()[0])
	require.Equal(t, 1, s.CurrentMove())
	require.Equal(t, "Next player: O", s.Status())

	s = s.Play(0) // occupied, ignored
	require.Equal(t, 1, s.CurrentMove())

	s = play(t, s, 3, 1, 4, 2) // X completes the top row
	require.Equal(t, "Winner: X", s.Status())
	require.Equal(t, s, s.Play(6))

	back := s.JumpTo(1)
	require.Equal(t, Board{0: X}, back.Board())

	branched := back.Play(5)
	require.Equal(t, 3, branched.Len())
	require.Equal(t, Board{0: X, 5: O}, branched.Board())
}
