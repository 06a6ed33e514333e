package parser

import "regexp"

// Scanner holds an immutable source string and a cursor into it. Every
// tokenizer function reads from and advances the same Scanner, so a host can
// parse part of a template itself and hand the Scanner back.
//
// A Scanner must not be used from more than one goroutine at a time.
type Scanner struct {
	Input string
	Pos   int
}

// NewScanner returns a Scanner positioned at the start of input.
func NewScanner(input string) *Scanner {
	return &Scanner{Input: input}
}

// Rest returns the input after the cursor.
func (s *Scanner) Rest() string {
	return s.Input[s.Pos:]
}

// IsEOF reports whether the cursor is at or past the end of the input.
func (s *Scanner) IsEOF() bool {
	return s.Pos >= len(s.Input)
}

// Peek returns the byte at the cursor, or 0 at EOF. Callers that care about
// NUL must check IsEOF first.
func (s *Scanner) Peek() byte {
	if s.IsEOF() {
		return 0
	}
	return s.Input[s.Pos]
}

// Fatal aborts the parse with a *ParseError at the cursor. It does not
// return; ParseFragment turns it back into an error.
func (s *Scanner) Fatal(msg string) {
	panic(newParseError(s, msg))
}

// Abort re-raises err, typically returned by a nested ParseFragmentScanner
// call made from inside a TemplateTagSource, so that it unwinds the outer
// parse too.
func (s *Scanner) Abort(err error) {
	if pe, ok := asParseError(err); ok {
		panic(pe)
	}
	s.Fatal(err.Error())
}

// A Matcher tries to consume something at the cursor. On success it advances
// the cursor and returns the match; on failure it returns "" and leaves the
// cursor alone.
type Matcher func(s *Scanner) string

// RegexMatcher builds a Matcher from a pattern that must match at the start
// of Rest(). It returns capture group 1 when that group matched a non-empty
// string, otherwise the whole match.
func RegexMatcher(re *regexp.Regexp) Matcher {
	return func(s *Scanner) string {
		rest := s.Rest()
		loc := re.FindStringSubmatchIndex(rest)
		if loc == nil || loc[0] != 0 {
			return ""
		}
		s.Pos += loc[1]
		if len(loc) >= 4 && loc[2] >= 0 && loc[3] > loc[2] {
			return rest[loc[2]:loc[3]]
		}
		return rest[:loc[1]]
	}
}

// PeekMatcher runs m and puts the cursor back where it was. A Fatal raised by
// m is not suppressed.
func PeekMatcher(s *Scanner, m Matcher) string {
	start := s.Pos
	result := m(s)
	s.Pos = start
	return result
}
