// Package token defines the transient values produced while converting text:
// whitespace-delimited tokens and their punctuation splits.
package token

// Token is a maximal run of non-whitespace characters from the input.
type Token struct {
	Text string
	Pos  Position
}

// Split is a token separated into leading punctuation, the core word
// and trailing punctuation. Prefix+Core+Suffix is the original token.
type Split struct {
	Prefix string
	Core   string
	Suffix string
}

// Join returns the split with its core replaced by word.
func (s Split) Join(word string) string {
	return s.Prefix + word + s.Suffix
}
