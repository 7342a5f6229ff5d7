package piglatin

import (
	"io"

	"github.com/kolkov/piglatin/internal/transform"
)

var defaultConverter = New(nil)

// Convert converts every word in s and joins the results with single
// spaces. A word that cannot be transposed is copied through unchanged;
// use Converter.Convert to find out which.
//
// Example:
//
//	piglatin.Convert("Hello, world!")
//	// "Ello-hay, orld-way!"
func Convert(s string) string {
	out, _ := defaultConverter.Convert(s)
	return out
}

// ConvertWord converts a single token, keeping leading and trailing
// punctuation in place. A token that cannot be transposed is returned
// unchanged.
//
// Example:
//
//	piglatin.ConvertWord("!Hi!")
//	// "!I-hay!"
func ConvertWord(tok string) string {
	out, _ := transform.Word(tok)
	return out
}

// Run reads all of input and returns the converted text.
// This is a convenience function for one-off conversion.
//
// If config is nil, default configuration is used.
// If config.Output is set, output is written there and the returned
// string will be empty.
func Run(input io.Reader, config *Config) (string, error) {
	return New(config).Run(input)
}

// Exec reads all of input and writes the converted text to output.
//
// This function is useful for integration with I/O pipelines
// where you need control over the output writer.
//
// Example:
//
//	err := piglatin.Exec(os.Stdin, os.Stdout, nil)
func Exec(input io.Reader, output io.Writer, config *Config) error {
	var c Config
	if config != nil {
		c = *config
	}
	c.Output = output

	_, err := New(&c).Run(input)
	return err
}
