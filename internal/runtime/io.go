package runtime

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"
)

// EncodingError reports input that is not valid UTF-8.
type EncodingError struct {
	Offset int // Byte offset of the first invalid sequence
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid UTF-8 at byte offset %d", e.Offset)
}

// ReadAll reads r to EOF and returns its contents as text.
// The whole input is held in memory; there is no incremental mode.
func ReadAll(r io.Reader) (string, error) {
	if r == nil {
		return "", nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if off := invalidOffset(data); off >= 0 {
		return "", &EncodingError{Offset: off}
	}
	return string(data), nil
}

// invalidOffset returns the offset of the first invalid UTF-8 sequence in
// data, or -1 if data is valid.
func invalidOffset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for i := 0; i < len(data); {
		if data[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// Output wraps a writer with buffering. Nothing reaches the underlying
// writer until Flush.
type Output struct {
	writer *bufio.Writer
}

// NewOutput creates a buffered output for w. If w is already a
// *bufio.Writer it is used directly.
func NewOutput(w io.Writer) *Output {
	if bw, ok := w.(*bufio.Writer); ok {
		return &Output{writer: bw}
	}
	return &Output{writer: bufio.NewWriter(w)}
}

// WriteString buffers s.
func (o *Output) WriteString(s string) error {
	_, err := o.writer.WriteString(s)
	return err
}

// Flush writes any buffered data to the underlying writer.
func (o *Output) Flush() error {
	return o.writer.Flush()
}
