package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// LeavesKingInCheck plays origin->destination on a copy of the board and
// reports whether the mover's king is in check afterwards.
func (b *Board) LeavesKingInCheck(origin, destination chess.Vector) (bool, error) {
	piece := b.Piece(origin)
	if piece == nil {
		return false, fmt.Errorf("%s: %w", chess.SquareName(origin), errors.ErrNoPiece)
	}

	sim := b.Clone()
	if _, err := sim.Move(origin, destination); err != nil {
		return false, errors.Wrap(err, "simulating move")
	}
	return sim.IsKingInCheck(piece.player), nil
}

// SafeMoves returns the legal moves of the piece at sq that do not leave
// its own king in check, in legal-move order.
func (b *Board) SafeMoves(sq chess.Vector) []chess.Vector {
	m := b.Movement(sq)
	if m == nil {
		return nil
	}

	var moves []chess.Vector
	for _, dest := range m.LegalMoves() {
		check, err := b.LeavesKingInCheck(sq, dest)
		if err != nil || check {
			continue
		}
		moves = append(moves, dest)
	}
	return moves
}

// HasSafeMoves returns true if player has at least one move that does not
// leave their king in check.
func (b *Board) HasSafeMoves(player chess.Player) bool {
	for _, p := range b.Pieces() {
		if p.player != player {
			continue
		}
		if len(b.SafeMoves(p.pos)) > 0 {
			return true
		}
	}
	return false
}
