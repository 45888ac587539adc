package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Position is the read-only view of a board that move classification needs.
// *Board implements it.
type Position interface {
	Piece(sq chess.Vector) *Piece
	Width() int
	IsKingInCheck(player chess.Player) bool
	EndingMove() (chess.MoveType, bool)
	PendingPromotion() *Piece
}

// Pending describes a move to classify.
type Pending struct {
	// The piece that moves or has moved.
	Piece *Piece

	// The opponent piece removed by the move, if any.
	Captured *Piece

	// Where the piece started. Castling is only detected when HasOrigin is set.
	Origin    chess.Vector
	HasOrigin bool

	Destination chess.Vector
}

// Detect classifies a move. Rules are applied in order and the first match wins:
//
//  1. no board: Draw
//  2. a piece was captured: Capture
//  3. the board reports checkmate or stalemate: that type
//  4. the opponent's king is in check: Check
//  5. a king moved two files: king- or queen-side castling
//  6. a promotion is pending: Promotion
//  7. otherwise: Normal
//
// Detect expects the move to be applied and the turn advanced: rule 3 asks
// EndingMove about the player to move, who must be the mover's opponent.
//
// Rule 5 returns ErrInvalidCastling when no rook of the mover stands on the
// matching corner (castling not yet played) or on the square the king
// crossed (castling already played).
func Detect(pos Position, m Pending) (chess.MoveType, error) {
	if pos == nil {
		return chess.Draw, nil
	}
	if b, ok := pos.(*Board); ok && b == nil {
		return chess.Draw, nil
	}

	if m.Captured != nil {
		return chess.Capture, nil
	}

	if t, ok := pos.EndingMove(); ok {
		return t, nil
	}

	if pos.IsKingInCheck(m.Piece.player.Opponent()) {
		return chess.Check, nil
	}

	if m.HasOrigin && isCastlingMove(m.Piece, m.Origin, m.Destination) {
		_, crossed, side, err := castlingRook(pos, m.Piece.player, m.Origin, m.Destination)
		if err != nil && !isRookOf(pos.Piece(crossed), m.Piece.player) {
			return chess.Normal, err
		}
		return side, nil
	}

	if pos.PendingPromotion() != nil {
		return chess.Promotion, nil
	}

	return chess.Normal, nil
}
