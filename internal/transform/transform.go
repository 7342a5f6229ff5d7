// Package transform implements the word rules: splitting a token into
// punctuation and core word, and transposing the core word.
package transform

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/kolkov/piglatin/internal/runtime"
	"github.com/kolkov/piglatin/internal/token"
)

// ErrLoneCapital is returned by Transpose for a word made of a single
// uppercase consonant. Such a word has no second letter to capitalize.
var ErrLoneCapital = errors.New("lone uppercase consonant")

// Split separates tok into its leading punctuation, core word and trailing
// punctuation. A token made only of punctuation goes entirely to Prefix.
func Split(tok string) token.Split {
	prefix, core, suffix := runtime.TrimPunct(tok)
	return token.Split{Prefix: prefix, Core: core, Suffix: suffix}
}

// Transpose applies the transposition rule to word:
//
//	""      -> ""
//	"apple" -> "apple-hay"
//	"world" -> "orld-way"
//	"Hello" -> "Ello-hay"
func Transpose(word string) (string, error) {
	if word == "" {
		return "", nil
	}

	first, size := utf8.DecodeRuneInString(word)
	if runtime.IsVowel(first) {
		return word + "-hay", nil
	}

	rest := word[size:]
	var b strings.Builder
	b.Grow(len(word) + 3)

	if runtime.IsUpper(first) {
		second, n := utf8.DecodeRuneInString(rest)
		if n == 0 {
			return "", ErrLoneCapital
		}
		b.WriteString(runtime.ToUpper(second))
		b.WriteString(rest[n:])
		b.WriteByte('-')
		b.WriteRune(runtime.ToLowerASCII(first))
	} else {
		b.WriteString(rest)
		b.WriteByte('-')
		b.WriteRune(first)
	}
	b.WriteString("ay")
	return b.String(), nil
}

// Word converts a single token: punctuation is kept in place around the
// transposed core. On error the token is returned unchanged along with the
// error.
func Word(tok string) (string, error) {
	s := Split(tok)
	converted, err := Transpose(s.Core)
	if err != nil {
		return tok, err
	}
	return s.Join(converted), nil
}
