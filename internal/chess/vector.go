package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Vector is an immutable 2D integer coordinate. It identifies a board
// square when used as a position and a step when used as a direction.
// Vectors are comparable and may be used as map keys.
type Vector struct {
	X int
	Y int
}

// V is shorthand for Vector{X: x, Y: y}.
func V(x, y int) Vector {
	return Vector{X: x, Y: y}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y}
}

// Scale multiplies both components by k.
func (v Vector) Scale(k int) Vector {
	return Vector{v.X * k, v.Y * k}
}

// Mul multiplies component-wise.
func (v Vector) Mul(o Vector) Vector {
	return Vector{v.X * o.X, v.Y * o.Y}
}

// Div divides component-wise, truncating toward zero.
// It returns ErrDivisionByZero if either component of o is zero.
func (v Vector) Div(o Vector) (Vector, error) {
	if o.X == 0 {
		return Vector{}, fmt.Errorf("x component of %v: %w", o, errors.ErrDivisionByZero)
	}
	if o.Y == 0 {
		return Vector{}, fmt.Errorf("y component of %v: %w", o, errors.ErrDivisionByZero)
	}
	return Vector{v.X / o.X, v.Y / o.Y}, nil
}

// Unit clamps each component to -1, 0 or 1, turning an offset into a step.
func (v Vector) Unit() Vector {
	return Vector{unit(v.X), unit(v.Y)}
}

func unit(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

// String returns the vector as "(x, y)".
func (v Vector) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

// Direction tables shared by the movement strategies.
var (
	// Orthogonals are the rank and file steps.
	Orthogonals = []Vector{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	// Diagonals are the four diagonal steps.
	Diagonals = []Vector{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}

	// KnightJumps are the eight L-shaped offsets.
	KnightJumps = []Vector{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
)

// AllDirections returns the orthogonal steps followed by the diagonal ones.
func AllDirections() []Vector {
	dirs := make([]Vector, 0, len(Orthogonals)+len(Diagonals))
	dirs = append(dirs, Orthogonals...)
	return append(dirs, Diagonals...)
}
