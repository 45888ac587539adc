package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Board dimension limits. Files are lettered a..z.
const (
	MinBoardSize     = 1
	MaxBoardSize     = 26
	DefaultBoardSize = 8
)

// BoardConfig holds settings for the board a game starts on.
type BoardConfig struct {
	Width  int
	Height int

	// Setup is the initial layout. Ignored when FEN is set.
	Setup Setup

	// FEN, when non-empty, gives the starting position; the board takes
	// its dimensions from it.
	FEN string
}

// NewBoardConfig creates a BoardConfig for a standard 8x8 game.
func NewBoardConfig() *BoardConfig {
	return &BoardConfig{
		Width:  DefaultBoardSize,
		Height: DefaultBoardSize,
		Setup:  SetupStandard,
	}
}

// Validate checks that the board configuration is valid.
func (b *BoardConfig) Validate() error {
	if b.FEN != "" {
		return nil
	}
	if b.Width < MinBoardSize || b.Width > MaxBoardSize {
		return fmt.Errorf("board width %d outside %d..%d: %w",
			b.Width, MinBoardSize, MaxBoardSize, errors.ErrInvalidConfig)
	}
	if b.Height < MinBoardSize || b.Height > MaxBoardSize {
		return fmt.Errorf("board height %d outside %d..%d: %w",
			b.Height, MinBoardSize, MaxBoardSize, errors.ErrInvalidConfig)
	}

	switch b.Setup {
	case SetupStandard:
		if b.Width != DefaultBoardSize || b.Height < 4 {
			return fmt.Errorf("standard setup needs %d files and at least 4 ranks, got %dx%d: %w",
				DefaultBoardSize, b.Width, b.Height, errors.ErrInvalidConfig)
		}
	case SetupPawns:
		if b.Height < 4 {
			return fmt.Errorf("pawn setup needs at least 4 ranks, got %d: %w", b.Height, errors.ErrInvalidConfig)
		}
	case SetupEmpty:
	default:
		return fmt.Errorf("unknown setup %v: %w", b.Setup, errors.ErrInvalidConfig)
	}
	return nil
}
