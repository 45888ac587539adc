package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// CastRay walks from origin in steps of dir on behalf of piece and returns
// the squares it may move to, in walking order. The walk stops at the first
// square that is occupied or off the board. An opponent piece on that square
// is included as a capture and returned as the blocking piece.
func (b *Board) CastRay(piece *Piece, origin, dir chess.Vector) ([]chess.Vector, *Piece) {
	if dir == (chess.Vector{}) {
		return nil, nil
	}
	return b.castSquares(piece, raySquares(b, origin, dir))
}

// castSquares applies the ray rule to a precomputed sequence of squares.
func (b *Board) castSquares(piece *Piece, squares []chess.Vector) ([]chess.Vector, *Piece) {
	var moves []chess.Vector
	var blocking *Piece

	for _, sq := range squares {
		if !b.CanMoveTo(sq, nil) {
			if other := b.Piece(sq); other != nil && other.player != piece.player {
				moves = append(moves, sq)
				blocking = other
			}
			break
		}
		moves = append(moves, sq)
	}

	return moves, blocking
}

// raySquares lists origin+k*dir for k = 1.. while on the board, plus the
// first square off it so the walk terminates on the bounds check.
func raySquares(b *Board, origin, dir chess.Vector) []chess.Vector {
	var squares []chess.Vector
	for sq := origin.Add(dir); ; sq = sq.Add(dir) {
		squares = append(squares, sq)
		if !b.InBounds(sq) {
			return squares
		}
	}
}
