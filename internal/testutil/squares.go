package testutil

import "github.com/lgbarn/chessrules-go/internal/chess"

// Sq converts an algebraic square name to a vector and panics on bad input.
// It is meant for literal names in test tables.
func Sq(name string) chess.Vector {
	v, err := chess.ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Squares converts a list of algebraic square names to vectors.
func Squares(names ...string) []chess.Vector {
	squares := make([]chess.Vector, 0, len(names))
	for _, name := range names {
		squares = append(squares, Sq(name))
	}
	return squares
}
