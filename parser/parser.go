package parser

import (
	"io"
	"strings"

	"github.com/heathj/htmltools/parser/spec"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// TextMode makes ParseFragment read the whole input as text instead of HTML
// content.
type TextMode int

const (
	// TextModeNone parses elements, comments and text.
	TextModeNone TextMode = iota
	// TextModeString reads raw text: no tags and no character references.
	TextModeString
	// TextModeRCData reads text with character references decoded.
	TextModeRCData
)

func (m TextMode) String() string {
	switch m {
	case TextModeNone:
		return "none"
	case TextModeString:
		return "string"
	case TextModeRCData:
		return "rcdata"
	}
	return "unknown"
}

// ParseTextMode converts a flag value such as "rcdata" to a TextMode.
func ParseTextMode(name string) (TextMode, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return TextModeNone, nil
	case "string":
		return TextModeString, nil
	case "rcdata":
		return TextModeRCData, nil
	}
	return TextModeNone, errors.Errorf("unknown text mode %q", name)
}

// Options configures a parse. The zero value parses plain HTML.
type Options struct {
	// TemplateTags recognizes host template syntax. Nil means none.
	TemplateTags TemplateTagSource
	// ShouldStop is consulted before each content or text token. When it
	// returns true the parse ends there and leaves the rest of the input
	// for the caller.
	ShouldStop func(s *Scanner) bool
	TextMode   TextMode
	// KnownElements overrides the built-in element tables.
	KnownElements spec.KnownElements
	// Logger receives debug traces. Defaults to a logger that discards.
	Logger *logrus.Logger
}

var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}()

func (o *Options) withDefaults() Options {
	var out Options
	if o != nil {
		out = *o
	}
	if out.KnownElements == nil {
		out.KnownElements = spec.DefaultKnownElements()
	}
	if out.Logger == nil {
		out.Logger = discardLogger
	}
	return out
}

// Parser assembles tokens into a Node tree.
type Parser struct {
	Tokenizer  *HTMLTokenizer
	scanner    *Scanner
	known      spec.KnownElements
	shouldStop func(s *Scanner) bool
	textMode   TextMode
	log        *logrus.Entry
}

// NewParser creates a Parser reading from s. opts may be nil.
func NewParser(s *Scanner, opts *Options) *Parser {
	o := opts.withDefaults()
	return &Parser{
		Tokenizer:  NewHTMLTokenizer(s, &o),
		scanner:    s,
		known:      o.KnownElements,
		shouldStop: o.ShouldStop,
		textMode:   o.TextMode,
		log:        o.Logger.WithField("component", "parser"),
	}
}

// ParseFragment parses input as an HTML fragment.
func ParseFragment(input string, opts *Options) (Node, error) {
	return NewParser(NewScanner(input), opts).Start()
}

// ParseFragmentScanner parses from the current position of s. With a
// ShouldStop callback it may return before EOF, leaving s.Pos where it
// stopped; a template tag source uses this to parse the body of a block tag.
func ParseFragmentScanner(s *Scanner, opts *Options) (Node, error) {
	return NewParser(s, opts).Start()
}

// Start runs the parse to completion.
func (p *Parser) Start() (Node, error) {
	result, err := p.startAt()
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (p *Parser) startAt() (result Node, err error) {
	defer catchParseError(&err)
	s := p.scanner

	switch p.textMode {
	case TextModeNone:
		result = p.getContent()
	case TextModeString:
		result = p.getRawText("")
	case TextModeRCData:
		result = p.getRCData("")
	default:
		return nil, errors.Errorf("unsupported text mode %d", p.textMode)
	}

	if !s.IsEOF() {
		// Content stops at an end tag it doesn't own. Look at what is
		// there for a better message, then put the cursor back.
		posBefore := s.Pos
		if endTag := p.peekToken(); endTag != nil && endTag.TokenType == TagToken && endTag.IsEnd {
			msg := "Unexpected HTML close tag"
			if p.known.IsVoid(endTag.TagName) {
				msg += ".  <" + endTag.TagName + "> should have no close tag."
			}
			s.Pos = posBefore
			s.Fatal(msg)
		}
		s.Pos = posBefore

		if p.shouldStop == nil {
			s.Fatal("Expected EOF")
		}
	}

	p.log.WithField("end", s.Pos).Debug("fragment parsed")
	return result, nil
}

// peekToken reads a token for diagnostics, swallowing any parse error.
func (p *Parser) peekToken() (tok *Token) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*ParseError); !ok {
				panic(r)
			}
			tok = nil
		}
	}()
	return p.Tokenizer.nextToken(DataState)
}

func (p *Parser) stopRequested() bool {
	return p.shouldStop != nil && p.shouldStop(p.scanner)
}

// getContent reads siblings until EOF, an end tag, or a stop request. An end
// tag is left unconsumed for the caller.
func (p *Parser) getContent() Node {
	s := p.scanner
	var items []Node

loop:
	for !s.IsEOF() {
		if p.stopRequested() {
			break
		}

		posBefore := s.Pos
		tok := p.Tokenizer.nextToken(DataState)
		if tok == nil {
			continue
		}

		switch tok.TokenType {
		case DoctypeToken:
			s.Fatal("Unexpected Doctype")
		case CharacterToken:
			items = pushOrAppendString(items, tok.Data)
		case CharRefToken:
			items = append(items, convertCharRef(tok))
		case CommentToken:
			items = append(items, &Comment{Value: tok.Data})
		case TemplateTagToken:
			items = append(items, tok.TemplateTag)
		case TagToken:
			if tok.IsEnd {
				s.Pos = posBefore
				break loop
			}
			items = append(items, p.getElement(tok))
		default:
			s.Fatal("Unknown token type: " + tok.TokenType.String())
		}
	}

	return unwrap(items)
}

func (p *Parser) canSelfClose(tagName string) bool {
	return p.known.IsVoid(tagName) || p.known.IsKnownSVG(tagName) || strings.Contains(tagName, ":")
}

func (p *Parser) getElement(tok *Token) *Element {
	s := p.scanner
	tagName := tok.TagName
	isVoid := p.known.IsVoid(tagName)

	if tok.SelfClosing && !p.canSelfClose(tagName) {
		s.Fatal("Only certain elements like BR, HR, IMG, etc. (and foreign elements like SVG) are allowed to self-close")
	}

	el := &Element{Name: tagName, Attrs: parseAttrs(tok.Attributes)}
	if isVoid || tok.SelfClosing {
		return el
	}

	// "<a href=/foo/>" reads as an unquoted value ending in "/".
	looksLikeSelfClose := s.Pos >= 2 && s.Input[s.Pos-2:s.Pos] == "/>"

	switch tagName {
	case "textarea":
		if strings.HasPrefix(s.Rest(), "\r\n") {
			s.Pos += 2
		} else if strings.HasPrefix(s.Rest(), "\n") {
			s.Pos++
		}
		if value := p.getRCData(tagName); value != nil {
			el.Attrs = setStaticAttr(el.Attrs, "value", value)
		}
	case "script", "style":
		el.Children = asChildren(p.getRawText(tagName))
	default:
		el.Children = asChildren(p.getContent())
	}

	endTag := p.Tokenizer.nextToken(DataState)
	if endTag == nil || endTag.TokenType != TagToken || !endTag.IsEnd || endTag.TagName != tagName {
		msg := `Expected "` + tagName + `" end tag`
		if looksLikeSelfClose {
			msg += ` -- if the "<` + tagName + ` />" tag was supposed to self-close, try adding a space before the "/"`
		}
		s.Fatal(msg)
	}

	return el
}

// getRCData reads textarea content, or the whole input when tagName is "".
func (p *Parser) getRCData(tagName string) Node {
	s := p.scanner
	var items []Node

	for !s.IsEOF() {
		if tagName != "" && p.Tokenizer.isLookingAtEndTag(tagName) {
			break
		}
		if p.stopRequested() {
			break
		}

		tok := p.Tokenizer.nextToken(RCDataState)
		if tok == nil {
			continue
		}

		switch tok.TokenType {
		case CharacterToken:
			items = pushOrAppendString(items, tok.Data)
		case CharRefToken:
			items = append(items, convertCharRef(tok))
		case TemplateTagToken:
			items = append(items, tok.TemplateTag)
		default:
			s.Fatal("Unknown or unexpected token type: " + tok.TokenType.String())
		}
	}

	return unwrap(items)
}

// getRawText reads script or style content, or the whole input when tagName
// is "".
func (p *Parser) getRawText(tagName string) Node {
	s := p.scanner
	var items []Node

	for !s.IsEOF() {
		if tagName != "" && p.Tokenizer.isLookingAtEndTag(tagName) {
			break
		}
		if p.stopRequested() {
			break
		}

		tok := p.Tokenizer.nextToken(RawTextState)
		if tok == nil {
			continue
		}

		switch tok.TokenType {
		case CharacterToken:
			items = pushOrAppendString(items, tok.Data)
		case TemplateTagToken:
			items = append(items, tok.TemplateTag)
		default:
			s.Fatal("Unknown or unexpected token type: " + tok.TokenType.String())
		}
	}

	return unwrap(items)
}

func convertCharRef(tok *Token) *CharRef {
	return &CharRef{HTML: tok.Data, Str: spec.CodePointsToString(tok.CodePoints)}
}

// pushOrAppendString merges adjacent text so that two Text nodes are never
// siblings.
func pushOrAppendString(items []Node, str string) []Node {
	if n := len(items); n > 0 {
		if last, ok := items[n-1].(Text); ok {
			items[n-1] = last + Text(str)
			return items
		}
	}
	return append(items, Text(str))
}

// unwrap turns an item list into nil, the single item, or a Sequence.
func unwrap(items []Node) Node {
	switch len(items) {
	case 0:
		return nil
	case 1:
		return items[0]
	}
	return Sequence(items)
}

func asChildren(n Node) []Node {
	switch v := n.(type) {
	case nil:
		return nil
	case Sequence:
		return []Node(v)
	}
	return []Node{n}
}

func parseAttrs(a *TokenAttributes) Attrs {
	if a == nil {
		return nil
	}

	var static StaticAttrs
	for _, raw := range a.Static {
		static = append(static, Attribute{
			Name:  raw.Name,
			Value: attributeValue(raw.Value),
		})
	}

	if !a.Mixed() {
		if len(static) == 0 {
			return nil
		}
		return static
	}

	var mixed MixedAttrs
	if len(static) > 0 {
		mixed = append(mixed, static)
	}
	for _, tt := range a.TemplateTags {
		mixed = append(mixed, tt)
	}
	return mixed
}

func attributeValue(toks []*Token) Node {
	var parts []Node
	for _, tok := range toks {
		switch tok.TokenType {
		case CharacterToken:
			parts = pushOrAppendString(parts, tok.Data)
		case CharRefToken:
			parts = append(parts, convertCharRef(tok))
		case TemplateTagToken:
			parts = append(parts, tok.TemplateTag)
		}
	}

	switch len(parts) {
	case 0:
		return Text("")
	case 1:
		return parts[0]
	}
	return Sequence(parts)
}

// setStaticAttr sets name on the static part of attrs, replacing an existing
// value.
func setStaticAttr(attrs Attrs, name string, value Node) Attrs {
	switch a := attrs.(type) {
	case nil:
		return StaticAttrs{{Name: name, Value: value}}
	case StaticAttrs:
		return a.With(name, value)
	case MixedAttrs:
		// Later sources win, so the value goes last.
		out := make(MixedAttrs, 0, len(a)+1)
		out = append(out, a...)
		return append(out, StaticAttrs{{Name: name, Value: value}})
	}
	return attrs
}

// Tokenize returns every token in input, read in the data state.
func Tokenize(input string, opts *Options) (tokens []*Token, err error) {
	t := NewHTMLTokenizer(NewScanner(input), opts)
	for t.Next() {
		tok, err := t.Token(DataState)
		if err != nil {
			return tokens, err
		}
		if tok != nil {
			tokens = append(tokens, tok)
		}
	}
	return tokens, nil
}
