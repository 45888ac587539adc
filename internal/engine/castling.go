package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// isCastlingMove reports whether p moving origin->destination is a king
// moving exactly two files along its rank.
func isCastlingMove(p *Piece, origin, destination chess.Vector) bool {
	d := destination.Sub(origin)
	return p.model == chess.King && d.Y == 0 && (d.X == 2 || d.X == -2)
}

// castlingSide returns the castling type for a king moving from origin to
// destination: towards increasing file is king side.
func castlingSide(origin, destination chess.Vector) chess.MoveType {
	if destination.X > origin.X {
		return chess.KingSideCastling
	}
	return chess.QueenSideCastling
}

// castlingCorner returns the corner square the castling rook starts on.
func castlingCorner(width int, side chess.MoveType, rank int) chess.Vector {
	if side == chess.KingSideCastling {
		return chess.V(width-1, rank)
	}
	return chess.V(0, rank)
}

// castlingRook locates the rook a castling king needs. It returns the rook's
// corner square, the square it lands on (the one the king crosses) and the
// castling type, or ErrInvalidCastling if the corner holds no rook of player.
func castlingRook(pos Position, player chess.Player, origin, destination chess.Vector) (chess.Vector, chess.Vector, chess.MoveType, error) {
	side := castlingSide(origin, destination)
	corner := castlingCorner(pos.Width(), side, destination.Y)
	crossed := origin.Add(destination.Sub(origin).Unit())

	if !isRookOf(pos.Piece(corner), player) {
		return corner, crossed, side, fmt.Errorf("%s needs a rook on %s: %w",
			side, chess.SquareName(corner), errors.ErrInvalidCastling)
	}
	return corner, crossed, side, nil
}

func isRookOf(p *Piece, player chess.Player) bool {
	return p != nil && p.model == chess.Rook && p.player == player
}

// castlingDestinations returns the squares king may castle to: the king and
// the rook are unmoved on the same rank, every square between them is empty,
// and the king neither stands on, crosses nor lands on a threatened square.
func castlingDestinations(b *Board, king *Piece) []chess.Vector {
	if king.moved {
		return nil
	}
	opponent := king.player.Opponent()
	if b.IsThreatened(king.pos, opponent) {
		return nil
	}

	var moves []chess.Vector
	for _, side := range []chess.MoveType{chess.KingSideCastling, chess.QueenSideCastling} {
		corner := castlingCorner(b.width, side, king.pos.Y)
		rook := b.Piece(corner)
		if !isRookOf(rook, king.player) || rook.moved {
			continue
		}

		step := corner.Sub(king.pos).Unit()
		crossed := king.pos.Add(step)
		dest := crossed.Add(step)
		if (corner.X-dest.X)*step.X <= 0 {
			continue
		}
		if !pathEmpty(b, king.pos, corner, step) {
			continue
		}
		if b.IsThreatened(crossed, opponent) || b.IsThreatened(dest, opponent) {
			continue
		}
		moves = append(moves, dest)
	}
	return moves
}

// pathEmpty reports whether every square strictly between from and to is empty.
func pathEmpty(b *Board, from, to, step chess.Vector) bool {
	for sq := from.Add(step); sq != to; sq = sq.Add(step) {
		if b.Piece(sq) != nil {
			return false
		}
	}
	return true
}
