package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Only success paths can be exercised without mocking *testing.T.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, []chess.Vector{{X: 1, Y: 2}}, []chess.Vector{{X: 1, Y: 2}})
	AssertEqual(t, []int(nil), []int{}, "nil and empty slices are equal")
}

func TestAssertSameElements_Success(t *testing.T) {
	AssertSameElements(t, []int{3, 1, 2}, []int{1, 2, 3})
	AssertSameElements(t, []string{}, nil)
}

func TestAssertErrorIs_Success(t *testing.T) {
	base := errors.New("base")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", base), base)
	AssertNoError(t, nil, "operation should succeed")
}

func TestAssertBool_Success(t *testing.T) {
	AssertTrue(t, true)
	AssertFalse(t, false, "value should be %v", false)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"empty", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"format string", []interface{}{"value is %d", 42}, "value is 42"},
		{"non-string", []interface{}{42}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSquares(t *testing.T) {
	AssertEqual(t, Squares("a1", "e2", "h8"), []chess.Vector{{X: 0, Y: 0}, {X: 4, Y: 1}, {X: 7, Y: 7}})
}
