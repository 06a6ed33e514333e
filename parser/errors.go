package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const contextAmount = 20

// ParseError describes a fatal problem in the source. Offset is a byte offset
// into Scanner.Input; Line and Col are 1-based, Col counted in characters.
type ParseError struct {
	Message string
	Offset  int
	Line    int
	Col     int
	// Snippet shows the input around Offset with a caret under it.
	Snippet string
	Scanner *Scanner
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (line %d, col %d)\n%s", e.Message, e.Line, e.Col, e.Snippet)
}

func newParseError(s *Scanner, msg string) *ParseError {
	if msg == "" {
		msg = "Parse error"
	}
	pos := s.Pos
	if pos > len(s.Input) {
		pos = len(s.Input)
	}
	past := s.Input[:pos]
	lastNewline := strings.LastIndexByte(past, '\n')

	return &ParseError{
		Message: msg,
		Offset:  pos,
		Line:    1 + strings.Count(past, "\n"),
		Col:     1 + utf8.RuneCountInString(past[lastNewline+1:]),
		Snippet: snippet(s.Input, pos),
		Scanner: s,
	}
}

func snippet(input string, pos int) string {
	start := pos - contextAmount
	for start > 0 && !utf8.RuneStart(input[start]) {
		start--
	}
	if start < 0 {
		start = 0
	}
	pastInput := input[start:pos]
	if start > 0 {
		pastInput = "..." + pastInput
	}

	end := pos + contextAmount
	if end > len(input) {
		end = len(input)
	}
	for end < len(input) && !utf8.RuneStart(input[end]) {
		end++
	}
	upcomingInput := input[pos:end]
	if end < len(input) {
		upcomingInput += "..."
	}

	line := strings.ReplaceAll(pastInput+upcomingInput, "\n", " ")
	return line + "\n" + strings.Repeat(" ", utf8.RuneCountInString(pastInput)) + "^"
}

func asParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// catchParseError converts a Fatal panic back into an error at a public entry
// point. Other panics keep unwinding.
func catchParseError(err *error) {
	if r := recover(); r != nil {
		if pe, ok := r.(*ParseError); ok {
			*err = pe
			return
		}
		panic(r)
	}
}
