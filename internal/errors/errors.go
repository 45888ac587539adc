// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidCastling indicates a two-file king move without the matching rook.
	ErrInvalidCastling = errors.New("castling is not allowed")

	// ErrDivisionByZero indicates vector division by a zero component.
	ErrDivisionByZero = errors.New("division by zero in vector math")

	// ErrIllegalMove indicates a destination outside the piece's legal moves.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoPiece indicates that no piece occupies the origin square.
	ErrNoPiece = errors.New("no piece on square")

	// ErrNotYourTurn indicates a piece moved by the player not on move.
	ErrNotYourTurn = errors.New("not this player's turn")

	// ErrOccupied indicates a destination held by a piece of the same player.
	ErrOccupied = errors.New("square occupied by own piece")

	// ErrOutOfBounds indicates a square outside the board.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrSelfCheck indicates a move that leaves the mover's own king in check.
	ErrSelfCheck = errors.New("move leaves king in check")

	// ErrPromotionPending indicates a move attempted before a promotion was resolved.
	ErrPromotionPending = errors.New("promotion pending")

	// ErrNoPromotion indicates a promotion request with nothing to promote.
	ErrNoPromotion = errors.New("no promotion pending")

	// ErrInvalidPromotion indicates a promotion to a pawn, king or unknown model.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context: the ply being attempted,
// the squares involved and the moving piece. It implements the error
// interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err         error  // The underlying error
	Ply         int    // 1-based ply number of the attempted move (0 if not applicable)
	Origin      string // Origin square name (if known)
	Destination string // Destination square name (if known)
	Piece       string // Moving piece description (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}

	switch {
	case e.Origin != "" && e.Destination != "":
		parts = append(parts, fmt.Sprintf("%s-%s", e.Origin, e.Destination))
	case e.Origin != "":
		parts = append(parts, fmt.Sprintf("from %s", e.Origin))
	case e.Destination != "":
		parts = append(parts, fmt.Sprintf("to %s", e.Destination))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
