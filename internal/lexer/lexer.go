// Package lexer splits input text into whitespace-delimited tokens.
package lexer

import (
	"github.com/kolkov/piglatin/internal/runtime"
	"github.com/kolkov/piglatin/internal/token"
)

// separatorRegex finds the whitespace between tokens. Compiled once; Regex
// is safe for concurrent use.
var separatorRegex = runtime.MustCompile(runtime.SeparatorPattern)

// Lexer tokenizes input text.
type Lexer struct {
	src    string         // Input text
	fields [][]int        // Remaining token spans
	offset int            // Byte offset up to which pos is current
	pos    token.Position // Position at offset
}

// New creates a new Lexer for the given input.
func New(src string) *Lexer {
	return &Lexer{
		src:    src,
		fields: separatorRegex.Fields(src),
		pos: token.Position{
			Line:   1,
			Column: 1,
		},
	}
}

// Scan returns the next token. ok is false once the input is exhausted.
func (l *Lexer) Scan() (tok token.Token, ok bool) {
	if len(l.fields) == 0 {
		return token.Token{}, false
	}
	span := l.fields[0]
	l.fields = l.fields[1:]

	l.advance(span[0])
	tok = token.Token{
		Text: l.src[span[0]:span[1]],
		Pos:  l.pos,
	}
	l.advance(span[1])
	return tok, true
}

// advance moves the current position forward to offset.
func (l *Lexer) advance(offset int) {
	for ; l.offset < offset; l.offset++ {
		if l.src[l.offset] == '\n' {
			l.pos.Line++
			l.pos.Column = 1
		} else {
			l.pos.Column++
		}
	}
	l.pos.Offset = offset
}
