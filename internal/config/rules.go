package config

// RulesConfig holds settings that change which moves a game accepts.
type RulesConfig struct {
	// RejectSelfCheck refuses moves that leave the mover's own king in check.
	RejectSelfCheck bool
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		RejectSelfCheck: true,
	}
}
