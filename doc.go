// Package piglatin converts text into a Pig-Latin-like form.
//
// Every whitespace-delimited word is rearranged while the punctuation
// around it stays where it was:
//
//	piglatin.Convert("Hello, world!")
//	// "Ello-hay, orld-way!"
//
// # Rules
//
// A word starting with a vowel (a, e, i, o, u in either case) gets "-hay"
// appended. A word starting with any other character has that character
// moved to the end behind a hyphen, followed by "ay". When the moved
// character was uppercase, it is lowercased and the new first character is
// capitalized instead, so "Hello" becomes "Ello-hay".
//
// ASCII punctuation at either end of a word is split off before the rule
// is applied and put back afterwards. Runs of whitespace, newlines
// included, become a single space.
//
// A word that is a single uppercase consonant, such as "C", has no second
// character to capitalize. It is copied through unchanged and reported as a
// [WordError].
//
// # Streams
//
// [Run] and [Exec] read all of their input before converting it:
//
//	err := piglatin.Exec(os.Stdin, os.Stdout, &piglatin.Config{Logger: logger})
//
// # Error Handling
//
// Errors are returned as specific types for detailed handling:
//   - [InputReadError]: input could not be read or is not valid UTF-8
//   - [OutputWriteError]: output could not be written
//   - [WordError]: a word left unchanged; never fails a run
//
// # Thread Safety
//
// A [Converter] holds no mutable state and is safe for concurrent use.
package piglatin
