package chess

import "fmt"

// Move records a single applied move and its classification.
// A record is produced once per applied move. A promotion chosen after
// the move is filled in when it is resolved.
type Move struct {
	// Player who made the move.
	Player Player

	// The model of the piece that moved.
	Piece Model

	// Origin and destination squares.
	Origin      Vector
	Destination Vector

	// The model of the captured piece (NoModel if nothing was captured).
	Captured Model

	// The model the pawn was promoted to (NoModel if none).
	Promotion Model

	// Classification of the move.
	Type MoveType
}

// IsCapture returns true if this move removed an opponent piece.
func (m Move) IsCapture() bool {
	return m.Captured != NoModel
}

// IsPromotion returns true if a promotion was resolved with this move.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoModel
}

// IsCastle returns true if this move was classified as castling.
func (m Move) IsCastle() bool {
	return m.Type.IsCastling()
}

// Text renders the move in long coordinate form, e.g. "Ng1-f3", "e7xd8=Q".
func (m Move) Text() string {
	switch m.Type {
	case KingSideCastling:
		return "O-O"
	case QueenSideCastling:
		return "O-O-O"
	}

	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	text := SquareName(m.Origin) + sep + SquareName(m.Destination)
	if m.Piece != Pawn {
		text = string(m.Piece.Letter()) + text
	}
	if m.IsPromotion() {
		text += "=" + string(m.Promotion.Letter())
	}
	return text
}

// String returns the move text followed by its classification.
func (m Move) String() string {
	return fmt.Sprintf("%s (%s)", m.Text(), m.Type)
}
