package runtime

import (
	"github.com/coregx/coregex"
)

// SeparatorPattern matches one run of whitespace between fields. The class
// is the Unicode White_Space property, so a no-break space separates words
// just like an ASCII space does.
const SeparatorPattern = `[\t\n\v\f\r \x{85}\x{A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}]+`

// Regex wraps coregex for separator matching.
// Simple character class patterns use a lookup-table fast path.
type Regex struct {
	re        *coregex.Regexp
	charClass *CharClassSearcher // Fast path for SeparatorPattern on ASCII input
}

// Compile creates a new Regex from pattern.
// Automatically uses fast path for simple character class patterns.
func Compile(pattern string) (*Regex, error) {
	// Still compile the full regex as fallback for input the fast path
	// cannot classify
	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return &Regex{
		re:        re,
		charClass: analyzeCharClass(pattern),
	}, nil
}

// MustCompile creates a Regex, panicking on error.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// FindAllStringIndex returns all non-overlapping matches.
func (r *Regex) FindAllStringIndex(s string, n int) [][]int {
	if r.charClass != nil && r.charClass.Applies(s) {
		return r.charClass.FindAllStringIndex(s, n)
	}
	return r.re.FindAllStringIndex(s, n)
}

// Fields returns the spans of s between matches, skipping empty ones.
// With SeparatorPattern these are the whitespace-delimited words.
func (r *Regex) Fields(s string) [][]int {
	var fields [][]int
	start := 0
	for _, sep := range r.FindAllStringIndex(s, -1) {
		if sep[0] > start {
			fields = append(fields, []int{start, sep[0]})
		}
		start = sep[1]
	}
	if start < len(s) {
		fields = append(fields, []int{start, len(s)})
	}
	return fields
}
