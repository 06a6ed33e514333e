package parser

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/heathj/htmltools/parser/spec"
)

var (
	getPossibleNamedEntityStart = RegexMatcher(regexp.MustCompile(`^&[a-zA-Z0-9]`))
	getApparentNamedEntity      = RegexMatcher(regexp.MustCompile(`^&[a-zA-Z0-9]+;`))
	getCharRefNumber            = RegexMatcher(regexp.MustCompile(`^(?:[xX][0-9a-fA-F]+|[0-9]+);`))

	namedEntityMatchersOnce sync.Once
	namedEntityMatchers     map[byte]Matcher
)

// namedEntityMatcher returns a Matcher for every named reference starting with
// "&"+c, or nil if there are none. The matchers are compiled on first use and
// choose the longest name that matches.
func namedEntityMatcher(c byte) Matcher {
	namedEntityMatchersOnce.Do(func() {
		namedEntityMatchers = make(map[byte]Matcher)
		for first, rests := range spec.EntityNamesByFirstChar() {
			quoted := make([]string, len(rests))
			for i, r := range rests {
				quoted[i] = regexp.QuoteMeta(r)
			}
			re := regexp.MustCompile("^&" + regexp.QuoteMeta(string(first)) + "(?:" + strings.Join(quoted, "|") + ")")
			re.Longest()
			namedEntityMatchers[first] = RegexMatcher(re)
		}
	})
	return namedEntityMatchers[c]
}

func isASCIIAlphanumeric(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func isAllowedAfterAmp(c byte) bool {
	switch c {
	case '\t', '\n', '\f', ' ', '<', '&':
		return true
	}
	return false
}

// getNamedCharRef consumes a named reference such as "&amp;" and returns it,
// or returns "" without moving when there is none.
//
// A name that matches without its ";" is accepted only when it cannot be
// mistaken for part of a longer word, so "&ampx" in an attribute value stays
// literal text.
func getNamedCharRef(s *Scanner, inAttribute bool) string {
	if PeekMatcher(s, getPossibleNamedEntityStart) == "" {
		return ""
	}

	entity := ""
	if m := namedEntityMatcher(s.Input[s.Pos+1]); m != nil {
		entity = PeekMatcher(s, m)
	}

	if entity != "" {
		if !strings.HasSuffix(entity, ";") {
			next := s.Pos + len(entity)
			if inAttribute && next < len(s.Input) && isASCIIAlphanumeric(s.Input[next]) {
				return ""
			}
			s.Fatal("Character reference requires semicolon: " + entity)
		}
		s.Pos += len(entity)
		return entity
	}

	if badEntity := PeekMatcher(s, getApparentNamedEntity); badEntity != "" {
		s.Fatal("Invalid character reference: " + badEntity)
	}
	return ""
}

// getCharacterReference consumes a character reference at the cursor. It
// returns nil without moving when the "&" does not start one. allowedChar is
// the quote or ">" that ends the enclosing attribute value, or 0.
func getCharacterReference(s *Scanner, inAttribute bool, allowedChar byte) *Token {
	if s.IsEOF() || s.Peek() != '&' {
		return nil
	}
	if s.Pos+1 >= len(s.Input) {
		return nil
	}

	afterAmp := s.Input[s.Pos+1]
	if afterAmp == '#' {
		s.Pos += 2
		ref := getCharRefNumber(s)
		if ref == "" {
			s.Fatal("Invalid numerical character reference starting with &#")
		}

		var cp int64
		if ref[0] == 'x' || ref[0] == 'X' {
			hex := strings.TrimLeft(ref[1:len(ref)-1], "0")
			if len(hex) > 6 {
				s.Fatal("Numerical character reference too large: 0x" + hex)
			}
			cp = parseDigits(hex, 16)
		} else {
			dec := strings.TrimLeft(ref[:len(ref)-1], "0")
			if len(dec) > 7 {
				s.Fatal("Numerical character reference too large: " + dec)
			}
			cp = parseDigits(dec, 10)
		}

		if !spec.IsLegalCodepoint(int(cp)) {
			s.Fatal("Illegal codepoint in numerical character reference: &#" + ref)
		}

		return &Token{
			TokenType:  CharRefToken,
			Data:       "&#" + ref,
			CodePoints: []rune{rune(cp)},
		}
	}

	if (allowedChar != 0 && afterAmp == allowedChar) || isAllowedAfterAmp(afterAmp) {
		return nil
	}

	name := getNamedCharRef(s, inAttribute)
	if name == "" {
		return nil
	}
	entity, _ := spec.LookupEntity(name)
	return &Token{
		TokenType:  CharRefToken,
		Data:       name,
		CodePoints: entity.Codepoints,
	}
}

func parseDigits(digits string, base int) int64 {
	if digits == "" {
		return 0
	}
	// The length checks above keep this within range.
	n, _ := strconv.ParseInt(digits, base, 64)
	return n
}
