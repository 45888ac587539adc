// Package engine provides chess move generation, check detection and board manipulation.
package engine

import (
	"fmt"
	"sort"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// DefaultSize is the width and height of a standard board.
const DefaultSize = 8

// occupant pairs a piece with the strategy that moves it.
type occupant struct {
	piece    *Piece
	movement Movement
}

// Board is the authoritative owner of all pieces in a game.
// It indexes pieces by square, tracks whose turn it is and keeps,
// per player, the set of squares on which that player's pieces would
// be attacked. A Board is not safe for concurrent use.
type Board struct {
	width  int
	height int

	// Number of moves applied so far; Turn is derived from it.
	moveNumber int

	squares map[chess.Vector]occupant

	// threatened[p] holds the squares the opponent of p could move or
	// capture onto next turn.
	threatened [chess.NumPlayers]map[chess.Vector]struct{}

	// Pawn waiting for its promotion choice.
	promotion *Piece

	listeners []Listener
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	b := &Board{
		width:   width,
		height:  height,
		squares: make(map[chess.Vector]occupant),
	}
	for i := range b.threatened {
		b.threatened[i] = make(map[chess.Vector]struct{})
	}
	return b
}

// Width returns the number of files.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of ranks.
func (b *Board) Height() int {
	return b.height
}

// MoveNumber returns the number of moves applied so far.
func (b *Board) MoveNumber() int {
	return b.moveNumber
}

// Turn returns the player to move.
func (b *Board) Turn() chess.Player {
	return chess.Player(b.moveNumber % chess.NumPlayers)
}

// AdvanceTurn passes the move to the other player.
func (b *Board) AdvanceTurn() {
	b.moveNumber++
}

// Piece returns the piece at sq, or nil if the square is empty.
func (b *Board) Piece(sq chess.Vector) *Piece {
	occ, ok := b.squares[sq]
	if !ok {
		return nil
	}
	return occ.piece
}

// Movement returns the strategy of the piece at sq, or nil if the square is empty.
func (b *Board) Movement(sq chess.Vector) Movement {
	occ, ok := b.squares[sq]
	if !ok {
		return nil
	}
	return occ.movement
}

// Pieces returns every piece ordered by rank, then file.
func (b *Board) Pieces() []*Piece {
	pieces := make([]*Piece, 0, len(b.squares))
	for _, occ := range b.squares {
		pieces = append(pieces, occ.piece)
	}
	sort.Slice(pieces, func(i, j int) bool {
		pi, pj := pieces[i].pos, pieces[j].pos
		if pi.Y != pj.Y {
			return pi.Y < pj.Y
		}
		return pi.X < pj.X
	})
	return pieces
}

// InBounds reports whether sq lies on the board.
func (b *Board) InBounds(sq chess.Vector) bool {
	return sq.X >= 0 && sq.X < b.width && sq.Y >= 0 && sq.Y < b.height
}

// CanMoveTo reports whether a piece may land on sq.
// With a moving piece, sq must be empty or hold an opponent piece.
// With a nil piece, sq must be empty.
func (b *Board) CanMoveTo(sq chess.Vector, piece *Piece) bool {
	if !b.InBounds(sq) {
		return false
	}
	other := b.Piece(sq)
	if piece == nil {
		return other == nil
	}
	return other == nil || other.player != piece.player
}

// AddPiece places a piece together with its movement strategy and
// recomputes threatened squares. It is a no-op returning false if the
// square is already occupied.
func (b *Board) AddPiece(p *Piece) bool {
	if _, ok := b.squares[p.pos]; ok {
		return false
	}
	b.squares[p.pos] = occupant{piece: p, movement: NewMovement(p, b)}
	b.RecomputeThreats()
	return true
}

// AddPieces places each piece in turn.
func (b *Board) AddPieces(pieces ...*Piece) {
	for _, p := range pieces {
		b.AddPiece(p)
	}
}

// Subscribe registers a listener for position changes.
func (b *Board) Subscribe(l Listener) {
	b.listeners = append(b.listeners, l)
}

func (b *Board) publish(ev PositionChange) {
	for _, l := range b.listeners {
		l.PositionChanged(ev)
	}
}

// OnPositionChange moves the entry at origin to destination, updates the
// piece's position and recomputes threatened squares. Any occupant of
// destination is replaced. Nothing happens if origin is empty.
func (b *Board) OnPositionChange(origin, destination chess.Vector) {
	occ, ok := b.squares[origin]
	if !ok {
		return
	}
	delete(b.squares, origin)
	occ.piece.pos = destination
	b.squares[destination] = occ
	b.RecomputeThreats()
}

// Move applies the move origin->destination as one transaction: it removes
// a captured opponent piece, relocates the mover (and the rook when a king
// castles), flags a pawn that reached its last rank for promotion and
// publishes a PositionChange per relocated piece. It does not check the
// move against the piece's legal moves and does not advance the turn.
// On error the board is left untouched.
func (b *Board) Move(origin, destination chess.Vector) (*Piece, error) {
	if !b.InBounds(origin) || !b.InBounds(destination) {
		return nil, fmt.Errorf("%v-%v: %w", origin, destination, errors.ErrOutOfBounds)
	}
	occ, ok := b.squares[origin]
	if !ok {
		return nil, fmt.Errorf("%s: %w", chess.SquareName(origin), errors.ErrNoPiece)
	}
	piece := occ.piece

	var rookFrom, rookTo chess.Vector
	castling := isCastlingMove(piece, origin, destination)
	if castling {
		var err error
		rookFrom, rookTo, _, err = castlingRook(b, piece.player, origin, destination)
		if err != nil {
			return nil, err
		}
	}

	var captured *Piece
	if destination != origin {
		if other, ok := b.squares[destination]; ok {
			if other.piece.player == piece.player {
				return nil, fmt.Errorf("%s: %w", chess.SquareName(destination), errors.ErrOccupied)
			}
			captured = other.piece
			delete(b.squares, destination)
		}
	}

	piece.moved = true
	b.OnPositionChange(origin, destination)
	b.publish(PositionChange{Origin: origin, Destination: destination, Piece: piece, Captured: captured})

	if castling {
		rook := b.squares[rookFrom].piece
		rook.moved = true
		b.OnPositionChange(rookFrom, rookTo)
		b.publish(PositionChange{Origin: rookFrom, Destination: rookTo, Piece: rook})
	}

	if piece.model == chess.Pawn && b.isLastRank(piece) {
		b.promotion = piece
	}

	return captured, nil
}

// PromotionRank returns the rank on which player's pawns promote.
func (b *Board) PromotionRank(player chess.Player) int {
	if player == chess.PlayerOne {
		return b.height - 1
	}
	return 0
}

func (b *Board) isLastRank(p *Piece) bool {
	return p.pos.Y == b.PromotionRank(p.player)
}

// PendingPromotion returns the pawn awaiting promotion, or nil.
func (b *Board) PendingPromotion() *Piece {
	return b.promotion
}

// Promote turns the pending pawn into model and gives it a matching strategy.
func (b *Board) Promote(model chess.Model) error {
	p := b.promotion
	if p == nil {
		return errors.ErrNoPromotion
	}
	if !model.CanPromoteTo() {
		return fmt.Errorf("%s: %w", model, errors.ErrInvalidPromotion)
	}
	p.model = model
	b.squares[p.pos] = occupant{piece: p, movement: NewMovement(p, b)}
	b.promotion = nil
	b.RecomputeThreats()
	return nil
}

// King returns the first king of player in rank-file order, or nil.
func (b *Board) King(player chess.Player) *Piece {
	for _, p := range b.Pieces() {
		if p.model == chess.King && p.player == player {
			return p
		}
	}
	return nil
}

// Clone returns a deep copy with fresh pieces and strategies.
// Listeners are not copied.
func (b *Board) Clone() *Board {
	c := NewBoard(b.width, b.height)
	c.moveNumber = b.moveNumber
	for sq, occ := range b.squares {
		p := *occ.piece
		c.squares[sq] = occupant{piece: &p, movement: NewMovement(&p, c)}
		if occ.piece == b.promotion {
			c.promotion = &p
		}
	}
	for i, set := range b.threatened {
		for sq := range set {
			c.threatened[i][sq] = struct{}{}
		}
	}
	return c
}
