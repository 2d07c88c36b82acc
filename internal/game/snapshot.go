package game

// Snapshot captures the externally visible game state for inspection and
// determinism tests.
type Snapshot struct {
	Boxes   int
	Speed   int
	Board   []bool
	Moves   int
	Cleared bool
}

// Snapshot returns the current snapshot. The board is copied, so the
// snapshot stays valid after further transitions.
func (s State) Snapshot() Snapshot {
	return Snapshot{
		Boxes:   s.Boxes(),
		Speed:   s.Speed,
		Board:   s.Board.Clone(),
		Moves:   s.Moves(),
		Cleared: s.Cleared(),
	}
}
