// Package chess provides core chess types and operations.
package chess

// Player identifies one side of the game: 0 moves first, 1 second.
type Player int

// NumPlayers is the number of players sharing a board.
const NumPlayers = 2

const (
	PlayerOne Player = iota
	PlayerTwo
)

// String returns the conventional colour name of a player.
func (p Player) String() string {
	if p == PlayerOne {
		return "White"
	}
	return "Black"
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	return (p + 1) % NumPlayers
}

// Model identifies the archetype of a piece.
type Model int

const (
	NoModel Model = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a model.
func (m Model) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if m >= 0 && int(m) < len(names) {
		return names[m]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter of a model, 'P' for pawns.
func (m Model) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if m >= 0 && int(m) < len(letters) {
		return letters[m]
	}
	return '?'
}

// CanPromoteTo reports whether a pawn may become this model.
func (m Model) CanPromoteTo() bool {
	switch m {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// ParseModel converts a letter (either case) to a model.
func ParseModel(c byte) Model {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoModel
	}
}

// MoveType classifies a completed or pending move.
type MoveType int

const (
	Normal MoveType = iota
	Capture
	Check
	Checkmate
	Stalemate
	KingSideCastling
	QueenSideCastling
	Promotion
	Draw
)

// String returns the string representation of a move type.
func (t MoveType) String() string {
	names := []string{
		"move", "capture", "check", "checkmate", "stalemate",
		"king-side castling", "queen-side castling", "promotion", "draw",
	}
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "unknown"
}

// IsCastling returns true for either castling type.
func (t MoveType) IsCastling() bool {
	return t == KingSideCastling || t == QueenSideCastling
}

// IsEnding returns true for move types that end the game.
func (t MoveType) IsEnding() bool {
	return t == Checkmate || t == Stalemate
}
