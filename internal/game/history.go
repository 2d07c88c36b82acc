package game

// History is a last-in-first-out stack of board snapshots, one per smash.
// Like the rest of the package it is a value type: Push returns a new
// History and never mutates the receiver.
type History struct {
	boards []Board
}

// Push returns a new history with a snapshot of b on top.
func (h History) Push(b Board) History {
	boards := make([]Board, 0, len(h.boards)+1)
	boards = append(boards, h.boards...)
	boards = append(boards, b.Clone())
	return History{boards: boards}
}

// Pop returns the most recent snapshot and the remaining history.
// ok is false when the history is empty; the returned history is then
// unchanged.
func (h History) Pop() (top Board, rest History, ok bool) {
	n := len(h.boards)
	if n == 0 {
		return nil, h, false
	}
	top = h.boards[n-1].Clone()
	rest = History{boards: h.boards[:n-1]}
	return top, rest, true
}

// Len returns the number of recorded snapshots.
func (h History) Len() int {
	return len(h.boards)
}

// Empty reports whether there is nothing to undo.
func (h History) Empty() bool {
	return len(h.boards) == 0
}
