package chess

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Constants for square naming.
const (
	ColBase  = 'a'
	RankBase = 1

	// MaxFiles is the widest board that algebraic file letters can name.
	MaxFiles = 26
)

// SquareName returns the algebraic name of a square, e.g. (4, 1) -> "e2".
// Squares that cannot be named fall back to the vector form.
func SquareName(v Vector) string {
	if v.X < 0 || v.X >= MaxFiles || v.Y < 0 {
		return v.String()
	}
	return fmt.Sprintf("%c%d", ColBase+v.X, v.Y+RankBase)
}

// ParseSquare converts an algebraic square name to a vector.
func ParseSquare(name string) (Vector, error) {
	if len(name) < 2 {
		return Vector{}, fmt.Errorf("square %q: %w", name, errors.ErrOutOfBounds)
	}

	col := name[0]
	if col >= 'A' && col <= 'Z' {
		col += 'a' - 'A'
	}
	if col < 'a' || col > 'z' {
		return Vector{}, fmt.Errorf("square %q: bad file: %w", name, errors.ErrOutOfBounds)
	}

	for i := 1; i < len(name); i++ {
		if c := name[i]; c < '0' || c > '9' {
			return Vector{}, fmt.Errorf("square %q: bad rank: %w", name, errors.ErrOutOfBounds)
		}
	}
	rank, err := strconv.Atoi(name[1:])
	if err != nil || rank < RankBase {
		return Vector{}, fmt.Errorf("square %q: bad rank: %w", name, errors.ErrOutOfBounds)
	}

	return Vector{X: int(col - ColBase), Y: rank - RankBase}, nil
}

// ParseCoordinateMove parses a move in coordinate notation such as "e2e4",
// "e2-e4", "d4xe5" or "e7e8q" into its squares and requested promotion.
func ParseCoordinateMove(text string) (origin, destination Vector, promotion Model, err error) {
	s := strings.ReplaceAll(strings.TrimSpace(text), "-", "")

	// The destination starts at the first letter after the origin's rank.
	split := -1
	for i := 1; i < len(s); i++ {
		if isLetter(s[i]) {
			split = i
			break
		}
	}
	if split < 0 {
		return Vector{}, Vector{}, NoModel, fmt.Errorf("move %q: missing destination: %w", text, errors.ErrOutOfBounds)
	}

	rest := s[split:]
	if (rest[0] == 'x' || rest[0] == 'X') && len(rest) > 1 && isLetter(rest[1]) {
		rest = rest[1:]
	}
	if n := len(rest); n > 2 && isLetter(rest[n-1]) {
		promotion = ParseModel(rest[n-1])
		if !promotion.CanPromoteTo() {
			return Vector{}, Vector{}, NoModel, fmt.Errorf("move %q: %w", text, errors.ErrInvalidPromotion)
		}
		rest = rest[:n-1]
	}

	if origin, err = ParseSquare(s[:split]); err != nil {
		return Vector{}, Vector{}, NoModel, err
	}
	if destination, err = ParseSquare(rest); err != nil {
		return Vector{}, Vector{}, NoModel, err
	}
	return origin, destination, promotion, nil
}

// CoordinateText formats a move as ParseCoordinateMove reads it.
func CoordinateText(origin, destination Vector, promotion Model) string {
	text := SquareName(origin) + SquareName(destination)
	if promotion != NoModel {
		text += strings.ToLower(string(promotion.Letter()))
	}
	return text
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
