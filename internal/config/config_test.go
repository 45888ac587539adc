package config

import (
	"bytes"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// TestConfig_Defaults verifies NewConfig describes a standard game
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.Board.Width != 8 || cfg.Board.Height != 8 {
		t.Errorf("board = %dx%d, want 8x8", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Board.Setup != SetupStandard {
		t.Errorf("Setup = %v, want %v", cfg.Board.Setup, SetupStandard)
	}
	if cfg.Board.FEN != "" {
		t.Errorf("FEN = %q, want empty", cfg.Board.FEN)
	}
	if !cfg.Rules.RejectSelfCheck {
		t.Error("RejectSelfCheck should be true by default")
	}
	if !cfg.Output.ShowBoard {
		t.Error("ShowBoard should be true by default")
	}
	if cfg.Output.ShowFEN {
		t.Error("ShowFEN should be false by default")
	}
	if !cfg.Output.KeepChecks || cfg.Output.JSONFormat {
		t.Errorf("Output = %+v, want check marks and text output", *cfg.Output)
	}
	if cfg.Output.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d, want 80", cfg.Output.MaxLineLength)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	out := &bytes.Buffer{}
	log := &bytes.Buffer{}

	cfg.SetOutput(out)
	cfg.SetLog(log)

	if cfg.OutputFile != out {
		t.Error("SetOutput did not set OutputFile")
	}
	if cfg.LogFile != log {
		t.Error("SetLog did not set LogFile")
	}
}

// TestBoardConfig_Validate verifies board dimension and setup checks
func TestBoardConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     BoardConfig
		wantErr bool
	}{
		{
			name:    "standard",
			cfg:     BoardConfig{Width: 8, Height: 8, Setup: SetupStandard},
			wantErr: false,
		},
		{
			name:    "short standard",
			cfg:     BoardConfig{Width: 8, Height: 6, Setup: SetupStandard},
			wantErr: false,
		},
		{
			name:    "wide standard",
			cfg:     BoardConfig{Width: 10, Height: 8, Setup: SetupStandard},
			wantErr: true,
		},
		{
			name:    "wide pawns",
			cfg:     BoardConfig{Width: 12, Height: 8, Setup: SetupPawns},
			wantErr: false,
		},
		{
			name:    "pawns on a tiny board",
			cfg:     BoardConfig{Width: 3, Height: 3, Setup: SetupPawns},
			wantErr: true,
		},
		{
			name:    "single square",
			cfg:     BoardConfig{Width: 1, Height: 1, Setup: SetupEmpty},
			wantErr: false,
		},
		{
			name:    "zero width",
			cfg:     BoardConfig{Width: 0, Height: 8, Setup: SetupEmpty},
			wantErr: true,
		},
		{
			name:    "too tall",
			cfg:     BoardConfig{Width: 8, Height: 27, Setup: SetupEmpty},
			wantErr: true,
		},
		{
			name:    "unknown setup",
			cfg:     BoardConfig{Width: 8, Height: 8, Setup: Setup(42)},
			wantErr: true,
		},
		{
			name:    "FEN skips dimension checks",
			cfg:     BoardConfig{FEN: "8/8 w - -"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfig_ValidateIncomplete verifies nil sub-configs are rejected
func TestConfig_ValidateIncomplete(t *testing.T) {
	cfg := NewConfig()
	cfg.Rules = nil

	if err := cfg.Validate(); !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
	}

	cfg = NewConfig()
	cfg.Verbosity = -1
	if err := cfg.Validate(); !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
	}
}

func TestParseSetup(t *testing.T) {
	tests := []struct {
		in      string
		want    Setup
		wantErr bool
	}{
		{"standard", SetupStandard, false},
		{"Pawns", SetupPawns, false},
		{"EMPTY", SetupEmpty, false},
		{"chess960", SetupStandard, true},
		{"", SetupStandard, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSetup(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSetup(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSetup(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetup_String(t *testing.T) {
	if got := SetupPawns.String(); got != "pawns" {
		t.Errorf("SetupPawns.String() = %q", got)
	}
	if got := Setup(9).String(); got != "Setup(9)" {
		t.Errorf("Setup(9).String() = %q", got)
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithBoardSize(10, 10).
		WithSetup(SetupPawns).
		RejectSelfCheck(false).
		ShowBoard(false).
		ShowFEN(true).
		WithJSONOutput(true).
		WithMaxLineLength(120).
		WithOutput(out).
		WithVerbosity(2).
		Build()

	if cfg.Board.Width != 10 || cfg.Board.Height != 10 {
		t.Errorf("board = %dx%d, want 10x10", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Board.Setup != SetupPawns {
		t.Errorf("Setup = %v, want pawns", cfg.Board.Setup)
	}
	if cfg.Rules.RejectSelfCheck {
		t.Error("RejectSelfCheck should be false")
	}
	if cfg.Output.ShowBoard || !cfg.Output.ShowFEN {
		t.Errorf("Output = %+v", *cfg.Output)
	}
	if !cfg.Output.JSONFormat || cfg.Output.MaxLineLength != 120 {
		t.Errorf("Output = %+v, want JSON with 120 columns", *cfg.Output)
	}
	if cfg.OutputFile != out {
		t.Error("WithOutput did not set OutputFile")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	cfg = NewConfigBuilder().WithFEN("8/8 w - -").Build()
	if cfg.Board.FEN != "8/8 w - -" {
		t.Errorf("FEN = %q", cfg.Board.FEN)
	}
}
