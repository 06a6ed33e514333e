package parser

import (
	"regexp"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recoverParseError runs f and returns the *ParseError it raised, if any.
func recoverParseError(f func()) (err error) {
	defer catchParseError(&err)
	f()
	return nil
}

func TestScannerBasics(t *testing.T) {
	s := NewScanner("ab")
	assert.Equal(t, byte('a'), s.Peek())
	assert.Equal(t, "ab", s.Rest())
	assert.False(t, s.IsEOF())

	s.Pos = 2
	assert.True(t, s.IsEOF())
	assert.Equal(t, byte(0), s.Peek())
	assert.Equal(t, "", s.Rest())
}

type matcherTestcase struct {
	name    string
	re      string
	in      string
	want    string
	wantPos int
}

func TestRegexMatcher(t *testing.T) {
	tests := []matcherTestcase{
		{"capture group", `^<([a-z]+)`, "<div>", "div", 4},
		{"whole match", `^[0-9]+`, "123abc", "123", 3},
		{"empty group falls back to match", `^<([a-z]*)`, "<>", "<", 1},
		{"no match", `^[0-9]+`, "abc", "", 0},
		{"match not at cursor", `[0-9]+`, "ab12", "", 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := NewScanner(tt.in)
			got := RegexMatcher(regexp.MustCompile(tt.re))(s)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantPos, s.Pos)
		})
	}
}

func TestPeekMatcherRestoresPosition(t *testing.T) {
	s := NewScanner("xx123")
	s.Pos = 2
	m := RegexMatcher(regexp.MustCompile(`^[0-9]+`))

	assert.Equal(t, "123", PeekMatcher(s, m))
	assert.Equal(t, 2, s.Pos)

	s.Pos = 0
	assert.Equal(t, "", PeekMatcher(s, m))
	assert.Equal(t, 0, s.Pos)
}

func TestFatalPosition(t *testing.T) {
	s := NewScanner("ab\ncdé f")
	s.Pos = strings.IndexByte(s.Input, 'f')

	err := recoverParseError(func() { s.Fatal("boom") })
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "boom", pe.Message)
	assert.Equal(t, 8, pe.Offset)
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, 5, pe.Col)
	assert.Same(t, s, pe.Scanner)
	assert.Contains(t, pe.Error(), "boom (line 2, col 5)")
}

func TestFatalSnippet(t *testing.T) {
	s := NewScanner("abc")
	s.Pos = 1
	err := recoverParseError(func() { s.Fatal("x") })
	pe, ok := asParseError(err)
	require.True(t, ok)
	assert.Equal(t, "abc\n ^", pe.Snippet)

	long := strings.Repeat("x", 30) + "y"
	s = NewScanner(long)
	s.Pos = 30
	err = recoverParseError(func() { s.Fatal("x") })
	pe, ok = asParseError(err)
	require.True(t, ok)
	assert.Equal(t, "..."+strings.Repeat("x", 20)+"y\n"+strings.Repeat(" ", 23)+"^", pe.Snippet)

	s = NewScanner("a\nb")
	s.Pos = 2
	pe, _ = asParseError(recoverParseError(func() { s.Fatal("x") }))
	assert.Equal(t, "a b\n  ^", pe.Snippet)
}

func TestAbort(t *testing.T) {
	inner := NewScanner("inner")
	inner.Pos = 3
	innerErr := recoverParseError(func() { inner.Fatal("nested failure") })

	outer := NewScanner("outer")
	err := recoverParseError(func() { outer.Abort(innerErr) })
	assert.Same(t, innerErr, err)

	err = recoverParseError(func() { outer.Abort(errors.New("plain")) })
	pe, ok := asParseError(err)
	require.True(t, ok)
	assert.Equal(t, "plain", pe.Message)
	assert.Same(t, outer, pe.Scanner)
}

func TestCatchParseErrorRepanics(t *testing.T) {
	assert.PanicsWithValue(t, "not a parse error", func() {
		_ = recoverParseError(func() { panic("not a parse error") })
	})
}
