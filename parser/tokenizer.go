package parser

import (
	"regexp"
	"strings"

	"github.com/heathj/htmltools/parser/spec"
	"github.com/sirupsen/logrus"
)

// TokenizerState selects how text and markup are recognized.
type TokenizerState uint

const (
	// DataState recognizes tags, comments, doctypes and character
	// references.
	DataState TokenizerState = iota
	// RCDataState treats "<" as text but still decodes character
	// references. Used for textarea.
	RCDataState
	// RawTextState treats both "<" and "&" as text. Used for script and
	// style.
	RawTextState
)

func (s TokenizerState) String() string {
	switch s {
	case DataState:
		return "data"
	case RCDataState:
		return "rcdata"
	case RawTextState:
		return "rawtext"
	}
	return "unknown"
}

func (s TokenizerState) templateTagPosition() TemplateTagPosition {
	switch s {
	case RCDataState:
		return PositionInRCData
	case RawTextState:
		return PositionInRawText
	}
	return PositionElement
}

// "{" may only start a run of text, so a template tag source gets a chance
// to see it.
var (
	getChars         = RegexMatcher(regexp.MustCompile(`^[^&<\x00][^&<\x00{]*`))
	getTagName       = RegexMatcher(regexp.MustCompile(`^[a-zA-Z][^\f\n\r\t />{]*`))
	getAttributeName = RegexMatcher(regexp.MustCompile(`^[^>/\x00"'<=\f\n\r\t ][^\f\n\r\t /=>"'<\x00]*`))
	endTagStart      = regexp.MustCompile(`^</([a-zA-Z]+)`)

	crlf = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

func convertCRLF(str string) string {
	return crlf.Replace(str)
}

func isHTMLSpace(c byte) bool {
	switch c {
	case '\f', '\n', '\r', '\t', ' ':
		return true
	}
	return false
}

// HTMLTokenizer reads HTML tokens from a Scanner. It never buffers: each
// call to Token consumes exactly the input of the token it returns.
type HTMLTokenizer struct {
	scanner      *Scanner
	templateTags TemplateTagSource
	cases        *spec.CaseNormalizer
	tokenBuilder *TokenBuilder
	log          *logrus.Entry
}

// NewHTMLTokenizer creates a tokenizer reading from s. opts may be nil.
func NewHTMLTokenizer(s *Scanner, opts *Options) *HTMLTokenizer {
	o := opts.withDefaults()
	cases := spec.DefaultCaseNormalizer()
	if o.KnownElements != spec.DefaultKnownElements() {
		cases = spec.NewCaseNormalizer(o.KnownElements)
	}
	return &HTMLTokenizer{
		scanner:      s,
		templateTags: o.TemplateTags,
		cases:        cases,
		tokenBuilder: newTokenBuilder(),
		log:          o.Logger.WithField("component", "tokenizer"),
	}
}

// Next reports whether there is input left.
func (p *HTMLTokenizer) Next() bool {
	return !p.scanner.IsEOF()
}

// Token returns the next token in the given state. It returns nil with a nil
// error at EOF, and also when a template tag source consumed input without
// producing a tag; keep calling while Next reports true.
func (p *HTMLTokenizer) Token(state TokenizerState) (tok *Token, err error) {
	defer catchParseError(&err)
	return p.nextToken(state), nil
}

func (p *HTMLTokenizer) trace(tok *Token, state TokenizerState, start int) *Token {
	if tok != nil && p.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		p.log.WithFields(logrus.Fields{
			"type":  tok.TokenType,
			"state": state,
			"start": start,
			"end":   p.scanner.Pos,
		}).Debugf("[TOKEN] %q", p.scanner.Input[start:p.scanner.Pos])
	}
	return tok
}

func (p *HTMLTokenizer) nextToken(state TokenizerState) *Token {
	s := p.scanner
	start := s.Pos

	if tt, ok := getTemplateTag(p.templateTags, s, state.templateTagPosition()); ok {
		if tt == nil {
			return nil
		}
		return p.trace(p.tokenBuilder.TemplateTagToken(tt), state, start)
	}

	if chars := getChars(s); chars != "" {
		return p.trace(p.tokenBuilder.CharacterToken(convertCRLF(chars)), state, start)
	}

	if s.IsEOF() {
		return nil
	}

	ch := s.Peek()
	if ch == 0 {
		s.Fatal("Illegal NULL character")
	}

	if ch == '&' {
		if state != RawTextState {
			if ref := getCharacterReference(s, false, 0); ref != nil {
				return p.trace(ref, state, start)
			}
		}
		s.Pos++
		return p.trace(p.tokenBuilder.CharacterToken("&"), state, start)
	}

	// looking at "<"
	if state != DataState {
		s.Pos++
		return p.trace(p.tokenBuilder.CharacterToken("<"), state, start)
	}

	if tok := p.getTagToken(); tok != nil {
		return p.trace(tok, state, start)
	}
	if tok := p.getComment(); tok != nil {
		return p.trace(tok, state, start)
	}
	if tok := p.getDoctype(); tok != nil {
		return p.trace(tok, state, start)
	}
	s.Fatal("Unexpected `<!` directive.")
	return nil
}

func (p *HTMLTokenizer) skipSpaces() {
	s := p.scanner
	for !s.IsEOF() && isHTMLSpace(s.Peek()) {
		s.Pos++
	}
}

func (p *HTMLTokenizer) requireSpaces() {
	s := p.scanner
	if s.IsEOF() || !isHTMLSpace(s.Peek()) {
		s.Fatal("Expected space")
	}
	p.skipSpaces()
}

func (p *HTMLTokenizer) getComment() *Token {
	s := p.scanner
	if !strings.HasPrefix(s.Rest(), "<!--") {
		return nil
	}
	s.Pos += 4

	rest := s.Rest()
	if strings.HasPrefix(rest, ">") || strings.HasPrefix(rest, "->") {
		s.Fatal("HTML comment can't start with > or ->")
	}

	closePos := strings.Index(rest, "-->")
	if closePos < 0 {
		s.Fatal("Unclosed HTML comment")
	}

	contents := rest[:closePos]
	if strings.HasSuffix(contents, "-") {
		s.Fatal("HTML comment must end at first `--`")
	}
	if strings.Contains(contents, "--") {
		s.Fatal("HTML comment cannot contain `--` anywhere")
	}
	if strings.IndexByte(contents, 0) >= 0 {
		s.Fatal("HTML comment cannot contain NULL")
	}

	s.Pos += closePos + 3
	return p.tokenBuilder.CommentToken(convertCRLF(contents))
}

func (p *HTMLTokenizer) getDoctypeQuotedString() string {
	s := p.scanner
	quote := s.Peek()
	if s.IsEOF() || !(quote == '"' || quote == '\'') {
		s.Fatal("Expected single or double quote in DOCTYPE")
	}
	s.Pos++

	if s.Peek() == quote {
		s.Fatal("Malformed DOCTYPE")
	}

	start := s.Pos
	for s.IsEOF() || s.Peek() != quote {
		if ch := s.Peek(); s.IsEOF() || ch == 0 || ch == '>' {
			s.Fatal("Malformed DOCTYPE")
		}
		s.Pos++
	}
	str := s.Input[start:s.Pos]
	s.Pos++
	return str
}

// getDoctype matches "<!DOCTYPE" case-insensitively and then either returns
// a doctype token or fails.
func (p *HTMLTokenizer) getDoctype() *Token {
	s := p.scanner
	rest := s.Rest()
	if len(rest) < 9 || spec.ASCIILowerCase(rest[:9]) != "<!doctype" {
		return nil
	}
	start := s.Pos
	s.Pos += 9

	p.requireSpaces()

	if ch := s.Peek(); s.IsEOF() || ch == '>' || ch == 0 {
		s.Fatal("Malformed DOCTYPE")
	}
	nameStart := s.Pos
	s.Pos++
	for s.IsEOF() || !(isHTMLSpace(s.Peek()) || s.Peek() == '>') {
		if s.IsEOF() || s.Peek() == 0 {
			s.Fatal("Malformed DOCTYPE")
		}
		s.Pos++
	}
	tok := &Token{
		TokenType: DoctypeToken,
		Name:      spec.ASCIILowerCase(s.Input[nameStart:s.Pos]),
	}

	p.skipSpaces()

	if s.IsEOF() || s.Peek() != '>' {
		publicOrSystem := s.Rest()
		if len(publicOrSystem) > 6 {
			publicOrSystem = publicOrSystem[:6]
		}

		switch spec.ASCIILowerCase(publicOrSystem) {
		case "system":
			s.Pos += 6
			p.requireSpaces()
			tok.SystemIdentifier = p.getDoctypeQuotedString()
			p.skipSpaces()
			if s.IsEOF() || s.Peek() != '>' {
				s.Fatal("Malformed DOCTYPE")
			}
		case "public":
			s.Pos += 6
			p.requireSpaces()
			tok.PublicIdentifier = p.getDoctypeQuotedString()
			if s.IsEOF() || s.Peek() != '>' {
				p.requireSpaces()
				if s.IsEOF() || s.Peek() != '>' {
					tok.SystemIdentifier = p.getDoctypeQuotedString()
					p.skipSpaces()
					if s.IsEOF() || s.Peek() != '>' {
						s.Fatal("Malformed DOCTYPE")
					}
				}
			}
		default:
			s.Fatal("Expected PUBLIC or SYSTEM in DOCTYPE")
		}
	}

	// looking at ">"
	s.Pos++
	tok.Data = s.Input[start:s.Pos]
	return tok
}

// handleEndOfTag consumes ">" or "/>", marking the tag self-closing in the
// second case.
func (p *HTMLTokenizer) handleEndOfTag() bool {
	s := p.scanner
	if s.IsEOF() {
		return false
	}
	switch s.Peek() {
	case '>':
		s.Pos++
		return true
	case '/':
		s.Pos++
		if s.IsEOF() || s.Peek() != '>' {
			s.Fatal("Expected `>` after `/`")
		}
		s.Pos++
		p.tokenBuilder.EnableSelfClosing()
		return true
	}
	return false
}

// getAttributeValue reads a quoted or, with quote 0, unquoted attribute value
// into the token builder.
func (p *HTMLTokenizer) getAttributeValue(quote byte) {
	s := p.scanner
	if quote != 0 {
		s.Pos++
	}
	allowedChar := quote
	if allowedChar == 0 {
		allowedChar = '>'
	}

	for {
		ch := s.Peek()
		switch {
		case quote != 0 && !s.IsEOF() && ch == quote:
			s.Pos++
			return
		case quote == 0 && !s.IsEOF() && (isHTMLSpace(ch) || ch == '>'):
			return
		case s.IsEOF():
			s.Fatal("Unclosed attribute in tag")
		case quote != 0 && ch == 0,
			quote == 0 && strings.IndexByte("\x00\"'<=`", ch) >= 0:
			s.Fatal("Unexpected character in attribute value")
		}

		if ch == '&' {
			if ref := getCharacterReference(s, true, allowedChar); ref != nil {
				p.tokenBuilder.AppendAttributeToken(ref)
				continue
			}
		}

		if tt, ok := getTemplateTag(p.templateTags, s, PositionInAttribute); ok {
			if tt != nil {
				p.tokenBuilder.AppendAttributeToken(p.tokenBuilder.TemplateTagToken(tt))
			}
			continue
		}

		if ch == '\r' {
			p.tokenBuilder.WriteAttributeValue('\n')
		} else {
			p.tokenBuilder.WriteAttributeValue(ch)
		}
		s.Pos++
		if quote != 0 && ch == '\r' && s.Peek() == '\n' {
			s.Pos++
		}
	}
}

// getTagToken claims anything that starts with "<" not followed by "!".
func (p *HTMLTokenizer) getTagToken() *Token {
	s := p.scanner
	rest := s.Rest()
	if !strings.HasPrefix(rest, "<") || strings.HasPrefix(rest, "<!") {
		return nil
	}
	s.Pos++

	isEnd := false
	if s.Peek() == '/' && !s.IsEOF() {
		isEnd = true
		s.Pos++
	}

	tagName := getTagName(s)
	if tagName == "" {
		s.Fatal("Expected tag name after `<`")
	}
	p.tokenBuilder.NewTag(p.cases.ProperCaseTagName(tagName), isEnd)

	if isEnd && s.Peek() == '/' {
		s.Fatal("End tag can't have trailing slash")
	}
	if p.handleEndOfTag() {
		return p.tokenBuilder.TagToken()
	}

	if s.IsEOF() {
		s.Fatal("Unclosed `<`")
	}
	if !isHTMLSpace(s.Peek()) {
		// e.g. <a{{b}}>
		s.Fatal("Expected space after tag name")
	}

	p.skipSpaces()

	if isEnd && s.Peek() == '/' {
		s.Fatal("End tag can't have trailing slash")
	}
	if p.handleEndOfTag() {
		return p.tokenBuilder.TagToken()
	}
	if isEnd {
		s.Fatal("End tag can't have attributes")
	}

	for {
		// spaces have already been skipped here
		spacesRequiredAfter := false

		if tt, ok := getTemplateTag(p.templateTags, s, PositionInStartTag); ok {
			if tt != nil {
				p.tokenBuilder.AddTemplateTag(tt)
			}
			spacesRequiredAfter = true
		} else {
			attributeName := getAttributeName(s)
			if attributeName == "" {
				s.Fatal("Expected attribute name in tag")
			}
			if strings.IndexByte(attributeName, '{') >= 0 {
				s.Fatal("Unexpected `{` in attribute name.")
			}
			attributeName = p.cases.ProperCaseAttributeName(attributeName)

			if p.tokenBuilder.DuplicateAttributeName(attributeName) {
				s.Fatal("Duplicate attribute in tag: " + attributeName)
			}
			p.tokenBuilder.StartAttribute(attributeName)

			p.skipSpaces()
			if p.handleEndOfTag() {
				return p.tokenBuilder.TagToken()
			}

			if s.IsEOF() {
				s.Fatal("Unclosed <")
			}
			if strings.IndexByte("\x00\"'<", s.Peek()) >= 0 {
				s.Fatal("Unexpected character after attribute name in tag")
			}

			if s.Peek() == '=' {
				s.Pos++
				p.skipSpaces()

				if s.IsEOF() {
					s.Fatal("Unclosed <")
				}
				ch := s.Peek()
				if strings.IndexByte("\x00><=`", ch) >= 0 {
					s.Fatal("Unexpected character after = in tag")
				}

				if ch == '"' || ch == '\'' {
					p.getAttributeValue(ch)
				} else {
					p.getAttributeValue(0)
				}
				p.tokenBuilder.CommitAttribute()
				spacesRequiredAfter = true
			}
		}

		if p.handleEndOfTag() {
			return p.tokenBuilder.TagToken()
		}
		if s.IsEOF() {
			s.Fatal("Unclosed `<`")
		}

		if spacesRequiredAfter {
			p.requireSpaces()
		} else {
			p.skipSpaces()
		}

		if p.handleEndOfTag() {
			return p.tokenBuilder.TagToken()
		}
	}
}

// isLookingAtEndTag reports whether the cursor is at "</tagName>", allowing
// spaces before the ">". tagName must already be proper-cased.
func (p *HTMLTokenizer) isLookingAtEndTag(tagName string) bool {
	rest := p.scanner.Rest()
	m := endTagStart.FindStringSubmatch(rest)
	if m == nil || p.cases.ProperCaseTagName(m[1]) != tagName {
		return false
	}
	pos := len(m[0])
	for pos < len(rest) && isHTMLSpace(rest[pos]) {
		pos++
	}
	return pos < len(rest) && rest[pos] == '>'
}
