package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// PositionChange is published after a piece has been relocated and the
// threatened squares recomputed.
type PositionChange struct {
	Origin      chess.Vector
	Destination chess.Vector

	// The piece that moved.
	Piece *Piece

	// The opponent piece removed from Destination, if any.
	Captured *Piece
}

// Listener receives position-change events from a Board.
type Listener interface {
	PositionChanged(ev PositionChange)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(ev PositionChange)

// PositionChanged calls f(ev).
func (f ListenerFunc) PositionChanged(ev PositionChange) {
	f(ev)
}
