package engine

// MoveStatus is the outcome of submitting a move.
type MoveStatus int

const (
	// Done means the move was accepted and produced a new position.
	Done MoveStatus = iota
	// IllegalMove means the move is not in the player's legal set.
	IllegalMove
	// LeavesPlayerInCheck means the move would expose the mover's king.
	LeavesPlayerInCheck
)

// IsDone reports whether the move was accepted.
func (s MoveStatus) IsDone() bool {
	return s == Done
}

// String returns the name of the status.
func (s MoveStatus) String() string {
	switch s {
	case Done:
		return "Done"
	case IllegalMove:
		return "IllegalMove"
	case LeavesPlayerInCheck:
		return "LeavesPlayerInCheck"
	default:
		return "Unknown"
	}
}

// Transition records a submitted move. When Status is not Done, To is the
// unchanged From position.
type Transition struct {
	From   *Position
	To     *Position
	Move   Move
	Status MoveStatus
}
