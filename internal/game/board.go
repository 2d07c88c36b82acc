// Package game contains the pure Whack-a-Ferret logic: the board, the smash
// propagation rule, and the move-history state machine. It has no external
// dependencies (especially no Bubble Tea) so every transition stays a pure,
// testable function; the platform layer owns rendering and input.
package game

import "fmt"

// Board is a row of boxes. true means the box holds a ferret.
// Length is always at least 1.
type Board []bool

// NewBoard creates a board of n boxes, all occupied.
// n is clamped to a minimum of 1.
func NewBoard(n int) Board {
	if n < 1 {
		n = 1
	}
	b := make(Board, n)
	for i := range b {
		b[i] = true
	}
	return b
}

// Clone returns an independent copy of the board.
func (b Board) Clone() Board {
	c := make(Board, len(b))
	copy(c, b)
	return c
}

// Occupied reports whether box i holds a ferret.
// Out-of-range indices read as empty, not as an error; the propagation
// rule relies on this for candidates that fall off either end.
func (b Board) Occupied(i int) bool {
	if i < 0 || i >= len(b) {
		return false
	}
	return b[i]
}

// AllEmpty reports whether every box is empty (the round is cleared).
func (b Board) AllEmpty() bool {
	for _, occupied := range b {
		if occupied {
			return false
		}
	}
	return true
}

// Equal reports whether two boards have identical length and contents.
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for i := range b {
		if b[i] != other[i] {
			return false
		}
	}
	return true
}

// Smash applies the propagation rule to a copy of b and returns the result.
// The clicked box is emptied, then every position is recomputed from that
// post-smash board: a box ends up occupied iff any of its mirror candidates
// at distance speed held a ferret. The first and last box additionally see
// the whole range within speed steps inward (edge extension).
//
// index must be within [0, len(b)); anything else is a programmer error and
// panics. speed must be >= 1, which State guarantees.
func Smash(b Board, speed, index int) Board {
	if index < 0 || index >= len(b) {
		panic(fmt.Sprintf("game: smash index %d out of range [0,%d)", index, len(b)))
	}

	post := b.Clone()
	post[index] = false

	next := make(Board, len(post))
	for x := range post {
		next[x] = spreadsTo(post, speed, x)
	}

	// The clicked box never regains a ferret in the same move, even when
	// one of its own mirror candidates is occupied.
	next[index] = false
	return next
}

// spreadsTo reports whether any candidate of position x is occupied in the
// post-smash board.
func spreadsTo(post Board, speed, x int) bool {
	if post.Occupied(x-speed) || post.Occupied(x+speed) {
		return true
	}

	last := len(post) - 1
	if x == 0 {
		// First box also sees every box within speed steps forward.
		for i := 1; i <= speed; i++ {
			if post.Occupied(i) {
				return true
			}
		}
	}
	if x == last {
		// Last box also sees every box within speed steps backward.
		// When speed >= length the range starts below zero; those
		// candidates simply read as empty.
		for i := last - speed; i <= last-1; i++ {
			if post.Occupied(i) {
				return true
			}
		}
	}
	return false
}
