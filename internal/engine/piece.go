package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Piece is a single piece on a board. Its position is written only by the
// owning Board when a move is applied, so it always matches the square the
// board indexes it under.
type Piece struct {
	model  chess.Model
	player chess.Player
	pos    chess.Vector
	moved  bool
}

// NewPiece creates an unmoved piece.
func NewPiece(model chess.Model, player chess.Player, pos chess.Vector) *Piece {
	return &Piece{model: model, player: player, pos: pos}
}

// Model returns the archetype of the piece.
func (p *Piece) Model() chess.Model {
	return p.model
}

// Player returns the owner of the piece.
func (p *Piece) Player() chess.Player {
	return p.player
}

// Position returns the square the piece stands on.
func (p *Piece) Position() chess.Vector {
	return p.pos
}

// Moved reports whether the piece has been relocated since setup.
func (p *Piece) Moved() bool {
	return p.moved
}

// String returns e.g. "White Knight g1".
func (p *Piece) String() string {
	return fmt.Sprintf("%s %s %s", p.player, p.model, chess.SquareName(p.pos))
}
