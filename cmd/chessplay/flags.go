// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Starting position
	setupName = flag.String("setup", "standard", "Starting layout: standard, pawns, empty")
	fenStart  = flag.String("fen", "", "Start from this FEN position (overrides -setup and board size)")
	width     = flag.Int("width", 0, "Board width in files (0 = 8)")
	height    = flag.Int("height", 0, "Board height in ranks (0 = 8)")

	// Moves
	moveList  = flag.String("m", "", "Moves in coordinate notation, e.g. \"e2e4 e7e5 e7e8q\"")
	batchFile = flag.String("b", "", "File with one move list per line (- for stdin)")

	// Rules
	allowSelfCheck = flag.Bool("allow-self-check", false, "Accept moves that leave the mover's king in check")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	showFEN    = flag.Bool("fenout", false, "Print the final position as FEN")
	noBoard    = flag.Bool("noboard", false, "Don't draw the final board")
	noCoords   = flag.Bool("nocoords", false, "Draw the board without rank and file labels")
	noChecks   = flag.Bool("nochecks", false, "Don't mark checks and mates in move text")
	lineLength = flag.Int("w", 80, "Maximum line length")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", 1, "Diagnostic level: 0 silent, 1 errors, 2 every move")
	quiet     = flag.Bool("s", false, "Silent mode (no summary)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyBoardFlags(cfg); err != nil {
		return err
	}
	applyOutputFlags(cfg)

	cfg.Rules.RejectSelfCheck = !*allowSelfCheck
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}

// applyBoardFlags configures the starting position.
func applyBoardFlags(cfg *config.Config) error {
	setup, err := config.ParseSetup(*setupName)
	if err != nil {
		return err
	}
	cfg.Board.Setup = setup
	cfg.Board.FEN = *fenStart

	if *width > 0 {
		cfg.Board.Width = *width
	}
	if *height > 0 {
		cfg.Board.Height = *height
	}
	return nil
}

// applyOutputFlags configures output settings.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowFEN = *showFEN
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.Coordinates = !*noCoords
	cfg.Output.KeepChecks = !*noChecks
	cfg.Output.MaxLineLength = *lineLength
}
