package game

// Default configuration for a fresh game.
const (
	DefaultBoxes = 5
	DefaultSpeed = 1
)

// State is the complete game state: the board, the ferret speed, and the
// undo history. Transitions take the old state by value and return a new
// one; the hosting event loop keeps the single current value in a mutable
// slot, but nothing here mutates in place.
type State struct {
	Board   Board
	Speed   int
	History History
}

// New creates a fresh state: boxes all occupied, empty history.
// Both boxes and speed are clamped to a minimum of 1.
func New(boxes, speed int) State {
	if speed < 1 {
		speed = 1
	}
	return State{
		Board: NewBoard(boxes),
		Speed: speed,
	}
}

// Smash records the current board in history and applies the propagation
// rule at index. index must be a valid board position (the adapter only
// exposes controls for valid indices); Smash panics otherwise.
func (s State) Smash(index int) State {
	return State{
		Board:   Smash(s.Board, s.Speed, index),
		Speed:   s.Speed,
		History: s.History.Push(s.Board),
	}
}

// Undo restores the board from before the most recent smash.
// With empty history it returns the state unchanged; repeated undos walk
// back to the initial board and then become no-ops.
func (s State) Undo() State {
	board, rest, ok := s.History.Pop()
	if !ok {
		return s
	}
	return State{
		Board:   board,
		Speed:   s.Speed,
		History: rest,
	}
}

// Reset refills every box at the current length and clears history.
// Speed is kept.
func (s State) Reset() State {
	return State{
		Board: NewBoard(len(s.Board)),
		Speed: s.Speed,
	}
}

// ChangeBoxCount resizes the board by delta boxes, never below 1.
// The board is refilled and history cleared: reconfiguration deliberately
// discards the in-progress round.
func (s State) ChangeBoxCount(delta int) State {
	n := len(s.Board) + delta
	if n < 1 {
		n = 1
	}
	return State{
		Board: NewBoard(n),
		Speed: s.Speed,
	}
}

// ChangeSpeed adjusts the ferret speed by delta, never below 1.
// The board is refilled at its current length and history cleared.
func (s State) ChangeSpeed(delta int) State {
	speed := s.Speed + delta
	if speed < 1 {
		speed = 1
	}
	return State{
		Board: NewBoard(len(s.Board)),
		Speed: speed,
	}
}

// Boxes returns the current board length.
func (s State) Boxes() int {
	return len(s.Board)
}

// Moves returns the number of smashes since the last reset or
// reconfiguration. Equals the history depth.
func (s State) Moves() int {
	return s.History.Len()
}

// Cleared reports whether every ferret is gone.
func (s State) Cleared() bool {
	return s.Board.AllEmpty()
}

// CanUndo reports whether there is a move to undo. The undo control stays
// enabled regardless; this only feeds the status display.
func (s State) CanUndo() bool {
	return !s.History.Empty()
}
