package token

// Position represents a position in the input text.
type Position struct {
	// Line number (1-indexed).
	Line int
	// Column is the byte offset on the line (1-indexed).
	Column int
	// Offset is the byte offset from the start of input (0-indexed).
	Offset int
}
