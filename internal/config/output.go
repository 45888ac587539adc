package config

// OutputConfig holds settings for printing games.
type OutputConfig struct {
	// ShowBoard prints a diagram of the final position
	ShowBoard bool

	// ShowFEN prints the final position as FEN
	ShowFEN bool

	// Coordinates labels the diagram with file letters and rank numbers
	Coordinates bool

	// KeepChecks appends + and # to checking moves
	KeepChecks bool

	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// MaxLineLength is the maximum line length of move lists
	MaxLineLength int
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard:     true,
		Coordinates:   true,
		KeepChecks:    true,
		MaxLineLength: 80,
	}
}
