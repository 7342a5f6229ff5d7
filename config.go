package piglatin

import (
	"io"

	"go.uber.org/zap"
)

// Config holds I/O options for a conversion run.
// The conversion rules themselves are fixed.
type Config struct {
	// Output is the writer for the converted text.
	// If nil, output is captured and returned from Run.
	Output io.Writer

	// Logger receives a warning for every word left unchanged.
	// If nil, warnings are discarded.
	Logger *zap.Logger
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}
