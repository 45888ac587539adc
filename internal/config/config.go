// Package config provides configuration for games and the chessplay command.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Setup selects the initial piece layout of a new game.
type Setup int

const (
	SetupStandard Setup = iota // Full standard layout
	SetupPawns                 // Both pawn ranks only
	SetupEmpty                 // No pieces
)

var setupNames = [...]string{
	SetupStandard: "standard",
	SetupPawns:    "pawns",
	SetupEmpty:    "empty",
}

func (s Setup) String() string {
	if s < 0 || int(s) >= len(setupNames) {
		return fmt.Sprintf("Setup(%d)", int(s))
	}
	return setupNames[s]
}

// ParseSetup converts a setup name, case-insensitively, to a Setup.
func ParseSetup(name string) (Setup, error) {
	for i, n := range setupNames {
		if strings.EqualFold(name, n) {
			return Setup(i), nil
		}
	}
	return SetupStandard, fmt.Errorf("unknown setup %q: %w", name, errors.ErrInvalidConfig)
}

// Config holds all game and program configuration.
type Config struct {
	// 0=nothing, 1=warnings, 2=every move
	Verbosity int

	Board  *BoardConfig
	Rules  *RulesConfig
	Output *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Board:      NewBoardConfig(),
		Rules:      NewRulesConfig(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every sub-config.
func (c *Config) Validate() error {
	if c.Board == nil || c.Rules == nil || c.Output == nil {
		return fmt.Errorf("incomplete config: %w", errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	return c.Board.Validate()
}
