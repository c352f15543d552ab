package board

import "fmt"

// ConfigurationError reports a difficulty that cannot produce a playable board.
type ConfigurationError struct {
	Difficulty  string
	PairCount   int
	PaletteSize int
	Reason      string
}

func (e *ConfigurationError) Error() string {
	name := e.Difficulty
	if name == "" {
		name = "custom"
	}
	return fmt.Sprintf("invalid %s board: %s", name, e.Reason)
}
