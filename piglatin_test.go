package piglatin_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kolkov/piglatin"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"sentence", "Hello, world!", "Ello-hay, orld-way!"},
		{"single uppercase vowel", "I", "I-hay"},
		{"single lowercase vowel", "a", "a-hay"},
		{"punctuation both sides", "!Hi!", "!I-hay!"},
		{"empty", "", ""},
		{"trailing punctuation run", "I?!", "I-hay?!"},
		{"lowercase vowel with punctuation", "a?!", "a-hay?!"},
		{"whitespace only", " \t\n ", ""},
		{"whitespace collapses", "The   quick\t\tbrown\n\nfox", "He-tay uick-qay rown-bay ox-fay"},
		{"trailing newline dropped", "Hello\n", "Ello-hay"},
		{"punctuation only token", "wait ... what?!", "ait-way ... hat-way?!"},
		{"lone capital passes through", "Plan C now", "Lan-pay C ow-nay"},
		{"unicode spaces separate", "pig\u00a0latin", "ig-pay atin-lay"},
		{"non-ASCII words between unicode spaces", "h\u00e9llo\u0085w\u00f6rld\u2028\u00dcnd\u3000ja", "\u00e9llo-hay \u00f6rld-way Nd-\u00dcay a-jay"},
		{"hair space separates", "x\u200ay", "-xay -yay"},
		{"leading no-break spaces", "\u00a0\u00a0x", "-xay"},
		{"sharp s uppercases to SS", "Sßx", "SSx-say"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, piglatin.Convert(tt.input))
		})
	}
}

func TestConvertWord(t *testing.T) {
	assert.Equal(t, "", piglatin.ConvertWord(""))
	assert.Equal(t, "I-hay", piglatin.ConvertWord("I"))
	assert.Equal(t, "I-hay?!", piglatin.ConvertWord("I?!"))
	assert.Equal(t, "a-hay?!", piglatin.ConvertWord("a?!"))
	assert.Equal(t, "!I-hay!", piglatin.ConvertWord("!Hi!"))
	assert.Equal(t, "C", piglatin.ConvertWord("C"))
	assert.Equal(t, "C.", piglatin.ConvertWord("C."))
}

func TestConverterReportsWordErrors(t *testing.T) {
	c := piglatin.New(nil)
	out, words := c.Convert("Vitamin C\nand\tD!")

	assert.Equal(t, "Itamin-vay C and-hay D!", out)
	require.Len(t, words, 2)

	assert.Equal(t, "C", words[0].Word)
	assert.Equal(t, 1, words[0].Line)
	assert.Equal(t, 9, words[0].Column)
	assert.Equal(t, 8, words[0].Offset)
	assert.ErrorIs(t, words[0], piglatin.ErrLoneCapital)

	assert.Equal(t, "D!", words[1].Word)
	assert.Equal(t, 2, words[1].Line)
	assert.Equal(t, 5, words[1].Column)
	assert.Equal(t, `word "D!" at 2:5: lone uppercase consonant`, words[1].Error())

	we, ok := piglatin.IsWordError(fmt.Errorf("wrapped: %w", words[1]))
	require.True(t, ok)
	assert.Same(t, words[1], we)
}

func TestWordErrorColumnCountsBytes(t *testing.T) {
	out, words := piglatin.New(nil).Convert("Crème brûlée B")

	assert.Equal(t, "Rème-cay rûlée-bay B", out)
	require.Len(t, words, 1)
	assert.Equal(t, 16, words[0].Offset)
	assert.Equal(t, 17, words[0].Column)
}

func TestRun(t *testing.T) {
	out, err := piglatin.Run(strings.NewReader("Hello, world!"), nil)
	require.NoError(t, err)
	assert.Equal(t, "Ello-hay, orld-way!", out)

	var buf bytes.Buffer
	out, err = piglatin.Run(strings.NewReader("Hello, world!"), &piglatin.Config{Output: &buf})
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "Ello-hay, orld-way!", buf.String())
}

func TestExec(t *testing.T) {
	var buf bytes.Buffer
	err := piglatin.Exec(strings.NewReader("  Pig   Latin  \n"), &buf, nil)
	require.NoError(t, err)
	assert.Equal(t, "Ig-pay Atin-lay", buf.String())
}

func TestExecDoesNotModifyConfig(t *testing.T) {
	var buf bytes.Buffer
	config := &piglatin.Config{}
	require.NoError(t, piglatin.Exec(strings.NewReader("a"), &buf, config))
	assert.Nil(t, config.Output)
	assert.Nil(t, config.Logger)
}

func TestRunLogsWordErrors(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	var buf bytes.Buffer

	err := piglatin.Exec(strings.NewReader("Plan C"), &buf, &piglatin.Config{Logger: zap.New(core)})
	require.NoError(t, err)
	assert.Equal(t, "Lan-pay C", buf.String())

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "word left unchanged", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "C", fields["word"])
	assert.EqualValues(t, 1, fields["line"])
	assert.EqualValues(t, 6, fields["column"])
}

func TestRunInvalidUTF8(t *testing.T) {
	_, err := piglatin.Run(bytes.NewReader([]byte("ok \xff bad")), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, piglatin.ErrInputRead)

	var readErr *piglatin.InputReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, 3, readErr.Offset)
	assert.Equal(t, "read error: invalid UTF-8 at byte offset 3", err.Error())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestRunReadFailure(t *testing.T) {
	_, err := piglatin.Run(failingReader{}, nil)
	var readErr *piglatin.InputReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, -1, readErr.Offset)
	assert.ErrorIs(t, err, piglatin.ErrInputRead)
	assert.Equal(t, "read error: device gone", err.Error())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestExecWriteFailure(t *testing.T) {
	err := piglatin.Exec(strings.NewReader("Hello"), failingWriter{}, nil)
	var writeErr *piglatin.OutputWriteError
	require.ErrorAs(t, err, &writeErr)
	assert.ErrorIs(t, err, piglatin.ErrOutputWrite)
	assert.Equal(t, "write error: broken pipe", err.Error())
}

// Benchmark tests
func BenchmarkConvert(b *testing.B) {
	input := strings.Repeat("The quick brown fox jumps over the lazy dog! ", 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = piglatin.Convert(input)
	}
}

func BenchmarkRun(b *testing.B) {
	input := strings.NewReader("Hello, world!\n")
	for i := 0; i < b.N; i++ {
		input.Reset("Hello, world!\n")
		_, _ = piglatin.Run(input, nil)
	}
}

// Example functions for documentation
func ExampleConvert() {
	fmt.Print(piglatin.Convert("Hello, world!"))
	// Output: Ello-hay, orld-way!
}

func ExampleConvertWord() {
	fmt.Print(piglatin.ConvertWord("!Hi!"))
	// Output: !I-hay!
}

func ExampleConverter_Convert() {
	out, words := piglatin.New(nil).Convert("Plan C")
	fmt.Println(out)
	for _, we := range words {
		fmt.Println(we)
	}
	// Output:
	// Lan-pay C
	// word "C" at 1:6: lone uppercase consonant
}
