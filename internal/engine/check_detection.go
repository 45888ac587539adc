package engine

import (
	"sort"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// RecomputeThreats rebuilds both threatened-square sets from scratch.
// Each piece adds the squares it attacks to its opponent's set only:
// pawns their forward diagonals, kings their adjacent squares and every
// other piece its legal moves.
func (b *Board) RecomputeThreats() {
	for _, set := range b.threatened {
		for sq := range set {
			delete(set, sq)
		}
	}

	for _, occ := range b.squares {
		var squares []chess.Vector
		if t, ok := occ.movement.(threatener); ok {
			squares = t.ThreatenedSquares()
		} else {
			squares = occ.movement.LegalMoves()
		}

		set := b.threatened[occ.piece.player.Opponent()]
		for _, sq := range squares {
			set[sq] = struct{}{}
		}
	}
}

// IsThreatened reports whether a piece of player by could move or capture
// onto sq next turn.
func (b *Board) IsThreatened(sq chess.Vector, by chess.Player) bool {
	_, ok := b.threatened[by.Opponent()][sq]
	return ok
}

// ThreatsAgainst returns the squares on which player's pieces would be
// attacked, ordered by rank, then file.
func (b *Board) ThreatsAgainst(player chess.Player) []chess.Vector {
	set := b.threatened[player]
	squares := make([]chess.Vector, 0, len(set))
	for sq := range set {
		squares = append(squares, sq)
	}
	sort.Slice(squares, func(i, j int) bool {
		if squares[i].Y != squares[j].Y {
			return squares[i].Y < squares[j].Y
		}
		return squares[i].X < squares[j].X
	})
	return squares
}

// IsKingInCheck returns true if player's king stands on a square the
// opponent threatens. A player without a king is never in check.
func (b *Board) IsKingInCheck(player chess.Player) bool {
	king := b.King(player)
	if king == nil {
		return false
	}
	return b.IsThreatened(king.pos, player.Opponent())
}
