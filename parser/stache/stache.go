// Package stache recognizes a small mustache-style template syntax so the
// parser can be exercised with real template tags:
//
//	{{path}}      double-stache, escaped
//	{{{path}}}    triple-stache, raw HTML; only allowed in element position
//	{{! text}}    comment, produces nothing
//	{{!-- text}}  block comment, ends at "--}}"
//	{{#name}}...{{/name}}  block, its body parsed as HTML content; only
//	              allowed in element position
package stache

import (
	"strings"

	"github.com/heathj/htmltools/parser"
	"github.com/heathj/htmltools/parser/spec"
	"github.com/sirupsen/logrus"
)

// Kind is the kind of a Tag.
type Kind int

const (
	Double Kind = iota + 1
	Triple
	Block
)

// Tag is the value this package hands the parser for each template tag.
type Tag struct {
	Kind     Kind
	Path     string
	Position parser.TemplateTagPosition
	// Content is the parsed body of a Block.
	Content parser.Node
}

func (t *Tag) String() string {
	switch t.Kind {
	case Triple:
		return "{{{" + t.Path + "}}}"
	case Block:
		return "{{#" + t.Path + "}}"
	}
	return "{{" + t.Path + "}}"
}

// Source is a parser.TemplateTagSource for stache syntax. Block bodies are
// parsed with KnownElements and Logger, so set them to whatever the
// enclosing parse uses.
type Source struct {
	KnownElements spec.KnownElements
	Logger        *logrus.Logger
}

var _ parser.TemplateTagSource = Source{}

func consumeThrough(s *parser.Scanner, start int, end string) {
	i := strings.Index(s.Input[start:], end)
	if i < 0 {
		s.Fatal("Unclosed template tag, expected `" + end + "`")
	}
	s.Pos = start + i + len(end)
}

// GetTemplateTag implements parser.TemplateTagSource.
func (src Source) GetTemplateTag(s *parser.Scanner, pos parser.TemplateTagPosition) any {
	rest := s.Rest()
	if !strings.HasPrefix(rest, "{{") {
		return nil
	}
	start := s.Pos

	switch {
	case strings.HasPrefix(rest, "{{!--"):
		consumeThrough(s, start+5, "--}}")
		return nil
	case strings.HasPrefix(rest, "{{!"):
		consumeThrough(s, start+3, "}}")
		return nil
	case strings.HasPrefix(rest, "{{#"):
		if pos != parser.PositionElement {
			s.Fatal("Block tags are only allowed in element position, not " + pos.String())
		}
		consumeThrough(s, start+3, "}}")
		return src.getBlock(s, path(s, s.Input[start+3:s.Pos-2]))
	case strings.HasPrefix(rest, "{{/"):
		// a matching close tag is claimed by StopAt before this is called
		s.Fatal("Unexpected closing template tag")
	case strings.HasPrefix(rest, "{{{"):
		if pos != parser.PositionElement {
			s.Fatal("Triple-stache is only allowed in element position, not " + pos.String())
		}
		consumeThrough(s, start+3, "}}}")
		return &Tag{Kind: Triple, Path: path(s, s.Input[start+3:s.Pos-3]), Position: pos}
	}

	consumeThrough(s, start+2, "}}")
	return &Tag{Kind: Double, Path: path(s, s.Input[start+2:s.Pos-2]), Position: pos}
}

func (src Source) getBlock(s *parser.Scanner, name string) *Tag {
	closeTag := "{{/" + name + "}}"
	content, err := parser.ParseFragmentScanner(s, &parser.Options{
		TemplateTags:  src,
		ShouldStop:    StopAt(closeTag),
		KnownElements: src.KnownElements,
		Logger:        src.Logger,
	})
	if err != nil {
		s.Abort(err)
	}
	if !strings.HasPrefix(s.Rest(), closeTag) {
		s.Fatal("Expected " + closeTag)
	}
	s.Pos += len(closeTag)
	return &Tag{Kind: Block, Path: name, Position: parser.PositionElement, Content: content}
}

func path(s *parser.Scanner, body string) string {
	p := strings.TrimSpace(body)
	if p == "" {
		s.Fatal("Empty template tag")
	}
	return p
}

// Options returns parser options that recognize stache tags.
func Options() *parser.Options {
	return &parser.Options{TemplateTags: Source{}}
}

// StopAt returns a ShouldStop callback that stops when the input at the
// cursor starts with prefix, such as "{{/if}}".
func StopAt(prefix string) func(s *parser.Scanner) bool {
	return func(s *parser.Scanner) bool {
		return strings.HasPrefix(s.Rest(), prefix)
	}
}
