package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithBoardSize sets the board dimensions.
func (b *ConfigBuilder) WithBoardSize(width, height int) *ConfigBuilder {
	b.cfg.Board.Width = width
	b.cfg.Board.Height = height
	return b
}

// WithSetup sets the initial layout.
func (b *ConfigBuilder) WithSetup(setup Setup) *ConfigBuilder {
	b.cfg.Board.Setup = setup
	return b
}

// WithFEN sets a starting position, overriding the setup.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.Board.FEN = fen
	return b
}

// RejectSelfCheck controls whether moves into check are refused.
func (b *ConfigBuilder) RejectSelfCheck(reject bool) *ConfigBuilder {
	b.cfg.Rules.RejectSelfCheck = reject
	return b
}

// ShowBoard controls whether the board is printed.
func (b *ConfigBuilder) ShowBoard(show bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = show
	return b
}

// ShowFEN controls whether the final FEN is printed.
func (b *ConfigBuilder) ShowFEN(show bool) *ConfigBuilder {
	b.cfg.Output.ShowFEN = show
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length int) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
