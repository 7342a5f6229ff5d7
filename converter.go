package piglatin

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/kolkov/piglatin/internal/lexer"
	"github.com/kolkov/piglatin/internal/runtime"
	"github.com/kolkov/piglatin/internal/transform"
)

// Converter converts text. It is safe for concurrent use; it holds no
// mutable state.
type Converter struct {
	output io.Writer
	logger *zap.Logger
}

// New returns a Converter for the given configuration.
// If config is nil, default configuration is used.
func New(config *Config) *Converter {
	var c Config
	if config != nil {
		c = *config
	}
	c.applyDefaults()
	return &Converter{output: c.Output, logger: c.Logger}
}

// Convert converts every word in s and joins the results with single
// spaces. Words that cannot be transposed are copied through unchanged and
// reported in the returned slice, in input order.
func (c *Converter) Convert(s string) (string, []*WordError) {
	var (
		b     strings.Builder
		words []*WordError
	)
	b.Grow(len(s) + len(s)/2)

	l := lexer.New(s)
	for i := 0; ; i++ {
		tok, ok := l.Scan()
		if !ok {
			break
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		out, err := transform.Word(tok.Text)
		if err != nil {
			words = append(words, &WordError{
				Word:   tok.Text,
				Line:   tok.Pos.Line,
				Column: tok.Pos.Column,
				Offset: tok.Pos.Offset,
				Err:    err,
			})
		}
		b.WriteString(out)
	}
	return b.String(), words
}

// Run reads all of input, converts it and writes the result.
// Returns the output as a string when the Converter has no Output writer;
// otherwise the output goes to the writer and the returned string is empty.
//
// Word-level problems are logged and do not fail the run. Errors are
// *InputReadError or *OutputWriteError.
func (c *Converter) Run(input io.Reader) (string, error) {
	text, err := runtime.ReadAll(input)
	if err != nil {
		var encErr *runtime.EncodingError
		if errors.As(err, &encErr) {
			return "", &InputReadError{Offset: encErr.Offset, Err: err}
		}
		return "", &InputReadError{Offset: -1, Err: err}
	}

	converted, words := c.Convert(text)
	for _, we := range words {
		c.logger.Warn("word left unchanged",
			zap.String("word", we.Word),
			zap.Int("line", we.Line),
			zap.Int("column", we.Column),
			zap.Error(we.Err))
	}

	// Capture output if no writer was provided
	var outputBuf *bytes.Buffer
	w := c.output
	if w == nil {
		outputBuf = &bytes.Buffer{}
		w = outputBuf
	}

	out := runtime.NewOutput(w)
	if err := out.WriteString(converted); err != nil {
		return "", &OutputWriteError{Err: err}
	}
	if err := out.Flush(); err != nil {
		return "", &OutputWriteError{Err: err}
	}

	if outputBuf != nil {
		return outputBuf.String(), nil
	}
	return "", nil
}
