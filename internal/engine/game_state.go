package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// EndingMove reports whether the player to move is checkmated or
// stalemated. Positions where that player has no king never end.
func (b *Board) EndingMove() (chess.MoveType, bool) {
	player := b.Turn()
	if b.King(player) == nil {
		return chess.Normal, false
	}
	if b.HasSafeMoves(player) {
		return chess.Normal, false
	}
	if b.IsKingInCheck(player) {
		return chess.Checkmate, true
	}
	return chess.Stalemate, true
}
