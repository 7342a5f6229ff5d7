// Package runtime provides the byte classification, pattern matching and
// I/O support used while converting text.
package runtime

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CharClassSearcher finds runs of bytes from one class, standing in for a
// pattern like [...]+. Uses a 256-byte lookup table instead of NFA execution.
type CharClassSearcher struct {
	membership [256]bool // O(1) byte classification
	asciiOnly  bool      // Table agrees with the regex only on ASCII haystacks
}

// Pre-built character class tables
var (
	spaceTable [256]bool // ASCII White_Space: space, \t, \n, \v, \f, \r
	punctTable [256]bool // [[:punct:]]: !"#$%&'()*+,-./:;<=>?@[\]^_`{|}~
	vowelTable [256]bool // [aeiouAEIOU]
	upperTable [256]bool // [A-Z]
	lowerTable [256]bool // [a-z]
)

func init() {
	// Initialize space table
	spaceTable[' '] = true
	spaceTable['\t'] = true
	spaceTable['\n'] = true
	spaceTable['\r'] = true
	spaceTable['\f'] = true
	spaceTable['\v'] = true

	// Punctuation is every printable ASCII character that is not a letter,
	// digit or space.
	for c := '!'; c <= '~'; c++ {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		default:
			punctTable[c] = true
		}
	}

	for _, c := range "aeiouAEIOU" {
		vowelTable[c] = true
	}

	for c := 'A'; c <= 'Z'; c++ {
		upperTable[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		lowerTable[c] = true
	}
}

// IsVowel reports whether r is one of aeiou in either case.
// Vowels outside ASCII are not recognised.
func IsVowel(r rune) bool {
	return r < utf8.RuneSelf && vowelTable[r]
}

// IsUpper reports whether r is an uppercase letter.
func IsUpper(r rune) bool {
	if r < utf8.RuneSelf {
		return upperTable[r]
	}
	return unicode.IsUpper(r)
}

// ToLowerASCII lowercases r if it is an ASCII uppercase letter and
// returns it unchanged otherwise.
func ToLowerASCII(r rune) rune {
	if r < utf8.RuneSelf && upperTable[r] {
		return r + ('a' - 'A')
	}
	return r
}

// ToUpper returns the full uppercase mapping of r. Some runes expand to
// more than one character (ß becomes SS), so the result is a string.
func ToUpper(r rune) string {
	if r < utf8.RuneSelf {
		if lowerTable[r] {
			r -= 'a' - 'A'
		}
		return string(r)
	}
	// A Caser keeps state between calls and must not be shared.
	return cases.Upper(language.Und).String(string(r))
}

// IsASCII reports whether s contains only ASCII bytes.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// TrimPunct splits s into its leading punctuation run, the middle and its
// trailing punctuation run. The two ends are trimmed independently. When s
// is nothing but punctuation, all of it lands in prefix.
// prefix+core+suffix is always s.
func TrimPunct(s string) (prefix, core, suffix string) {
	start := 0
	for start < len(s) && punctTable[s[start]] {
		start++
	}
	end := len(s)
	for end > start && punctTable[s[end-1]] {
		end--
	}
	return s[:start], s[start:end], s[end:]
}

// NewSpaceSearcher returns a searcher for runs of whitespace on ASCII input.
func NewSpaceSearcher() *CharClassSearcher {
	return &CharClassSearcher{membership: spaceTable, asciiOnly: true}
}

// Applies reports whether the searcher gives the same answer as the full
// regex for haystack.
func (s *CharClassSearcher) Applies(haystack string) bool {
	return !s.asciiOnly || IsASCII(haystack)
}

// FindAllStringIndex returns all non-empty, non-overlapping matches.
// If n >= 0, at most n matches are returned.
func (s *CharClassSearcher) FindAllStringIndex(haystack string, n int) [][]int {
	var out [][]int
	for i := 0; i < len(haystack) && (n < 0 || len(out) < n); {
		if !s.membership[haystack[i]] {
			i++
			continue
		}
		end := i + 1
		for end < len(haystack) && s.membership[haystack[end]] {
			end++
		}
		out = append(out, []int{i, end})
		i = end
	}
	return out
}

// analyzeCharClass checks if a pattern is a simple character class pattern
// that can use the fast path. Returns nil if not applicable.
func analyzeCharClass(pattern string) *CharClassSearcher {
	switch pattern {
	case SeparatorPattern:
		return NewSpaceSearcher()
	default:
		return nil
	}
}
