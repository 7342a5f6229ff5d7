package piglatin

import (
	"errors"
	"fmt"

	"github.com/kolkov/piglatin/internal/transform"
)

// Sentinel errors for programmatic error checking via errors.Is().
var (
	// ErrInputRead indicates the input could not be read as UTF-8 text.
	ErrInputRead = errors.New("input read error")

	// ErrOutputWrite indicates the converted text could not be written.
	ErrOutputWrite = errors.New("output write error")

	// ErrLoneCapital indicates a word made of a single uppercase consonant,
	// which has no following letter to capitalize.
	ErrLoneCapital = transform.ErrLoneCapital
)

// InputReadError represents a failure to read the input.
type InputReadError struct {
	Offset int   // Byte offset of the first invalid UTF-8 sequence, or -1
	Err    error // Underlying error
}

func (e *InputReadError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("read error: invalid UTF-8 at byte offset %d", e.Offset)
	}
	return fmt.Sprintf("read error: %v", e.Err)
}

func (e *InputReadError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInputRead}
	}
	return []error{ErrInputRead, e.Err}
}

// OutputWriteError represents a failure to write or flush the output.
type OutputWriteError struct {
	Err error // Underlying error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("write error: %v", e.Err)
}

func (e *OutputWriteError) Unwrap() []error {
	return []error{ErrOutputWrite, e.Err}
}

// WordError represents a word that could not be transposed.
// The word is left unchanged in the output; this is not fatal.
type WordError struct {
	Word   string // The whole token, punctuation included
	Line   int    // 1-based line number
	Column int    // 1-based byte column
	Offset int    // 0-based byte offset
	Err    error  // Why the word was left alone
}

func (e *WordError) Error() string {
	return fmt.Sprintf("word %q at %d:%d: %v", e.Word, e.Line, e.Column, e.Err)
}

func (e *WordError) Unwrap() error { return e.Err }

// IsWordError reports whether err is a WordError and returns it.
func IsWordError(err error) (*WordError, bool) {
	var we *WordError
	if errors.As(err, &we) {
		return we, true
	}
	return nil, false
}
