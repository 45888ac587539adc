package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Movement computes the legal destination squares of one piece on one board.
// LegalMoves recomputes from the current board on every call and never
// mutates the board; the order of the result is stable for a given position.
type Movement interface {
	Piece() *Piece
	LegalMoves() []chess.Vector
}

// threatener is implemented by strategies whose attacked squares differ
// from their legal moves.
type threatener interface {
	ThreatenedSquares() []chess.Vector
}

// NewMovement returns the strategy matching the piece's model.
func NewMovement(p *Piece, b *Board) Movement {
	base := baseMovement{piece: p, board: b}
	switch p.model {
	case chess.Pawn:
		return &PawnMovement{baseMovement: base}
	case chess.Knight:
		return &KnightMovement{baseMovement: base}
	case chess.Bishop:
		return &SlidingMovement{baseMovement: base, directions: chess.Diagonals}
	case chess.Rook:
		return &SlidingMovement{baseMovement: base, directions: chess.Orthogonals}
	case chess.Queen:
		return &SlidingMovement{baseMovement: base, directions: chess.AllDirections()}
	case chess.King:
		return &KingMovement{baseMovement: base}
	}
	return &base
}

// baseMovement holds the piece, the board and the last computed moves.
// Used directly it moves nowhere.
type baseMovement struct {
	piece *Piece
	board *Board
	last  []chess.Vector
}

// Piece returns the piece this strategy moves.
func (m *baseMovement) Piece() *Piece {
	return m.piece
}

// Last returns the result of the most recent LegalMoves call.
func (m *baseMovement) Last() []chess.Vector {
	return m.last
}

// LegalMoves returns nothing.
func (m *baseMovement) LegalMoves() []chess.Vector {
	m.last = nil
	return nil
}

// steps keeps the squares piece position+offset it may land on.
func (m *baseMovement) steps(offsets []chess.Vector) []chess.Vector {
	var moves []chess.Vector
	for _, off := range offsets {
		sq := m.piece.pos.Add(off)
		if m.board.CanMoveTo(sq, m.piece) {
			moves = append(moves, sq)
		}
	}
	return moves
}

// KnightMovement jumps to the eight L-shaped squares.
type KnightMovement struct {
	baseMovement
}

// LegalMoves returns the reachable knight squares.
func (m *KnightMovement) LegalMoves() []chess.Vector {
	m.last = m.steps(chess.KnightJumps)
	return m.last
}

// SlidingMovement casts a ray along each of its directions.
// Bishops, rooks and queens differ only in their direction set.
type SlidingMovement struct {
	baseMovement
	directions []chess.Vector
}

// LegalMoves returns the rays in direction order.
func (m *SlidingMovement) LegalMoves() []chess.Vector {
	var moves []chess.Vector
	for _, dir := range m.directions {
		ray, _ := m.board.CastRay(m.piece, m.piece.pos, dir)
		moves = append(moves, ray...)
	}
	m.last = moves
	return moves
}

// PawnMovement pushes forward and captures diagonally forward.
type PawnMovement struct {
	baseMovement
}

// Direction returns the forward step: up the board for the first player,
// down for the second.
func (m *PawnMovement) Direction() chess.Vector {
	return chess.V(0, pawnDirection(m.piece.player))
}

func pawnDirection(player chess.Player) int {
	if player == chess.PlayerOne {
		return 1
	}
	return -1
}

// onStartRank reports whether the pawn stands on its owner's second rank.
func (m *PawnMovement) onStartRank() bool {
	if m.piece.player == chess.PlayerOne {
		return m.piece.pos.Y == 1
	}
	return m.piece.pos.Y == m.board.height-2
}

// captureSquares returns the two forward diagonals.
func (m *PawnMovement) captureSquares() []chess.Vector {
	ahead := m.piece.pos.Add(m.Direction())
	return []chess.Vector{ahead.Add(chess.V(-1, 0)), ahead.Add(chess.V(1, 0))}
}

// LegalMoves returns forward pushes onto empty squares followed by
// diagonal captures of opponent pieces.
func (m *PawnMovement) LegalMoves() []chess.Vector {
	var moves []chess.Vector
	dir := m.Direction()

	one := m.piece.pos.Add(dir)
	if m.board.CanMoveTo(one, nil) {
		moves = append(moves, one)
		two := one.Add(dir)
		if m.onStartRank() && m.board.CanMoveTo(two, nil) {
			moves = append(moves, two)
		}
	}

	for _, sq := range m.captureSquares() {
		if other := m.board.Piece(sq); other != nil && other.player != m.piece.player {
			moves = append(moves, sq)
		}
	}

	m.last = moves
	return moves
}

// ThreatenedSquares returns the in-bounds forward diagonals, occupied or not.
func (m *PawnMovement) ThreatenedSquares() []chess.Vector {
	var squares []chess.Vector
	for _, sq := range m.captureSquares() {
		if m.board.InBounds(sq) {
			squares = append(squares, sq)
		}
	}
	return squares
}

// kingSteps are the eight adjacent offsets.
var kingSteps = chess.AllDirections()

// KingMovement steps to adjacent squares and castles.
type KingMovement struct {
	baseMovement
}

// LegalMoves returns adjacent squares followed by castling destinations.
func (m *KingMovement) LegalMoves() []chess.Vector {
	moves := m.steps(kingSteps)
	moves = append(moves, castlingDestinations(m.board, m.piece)...)
	m.last = moves
	return moves
}

// ThreatenedSquares returns the adjacent squares only; castling never captures.
func (m *KingMovement) ThreatenedSquares() []chess.Vector {
	return m.steps(kingSteps)
}
