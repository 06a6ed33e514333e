package parser

import "fmt"

// TemplateTagPosition tells a TemplateTagSource where in the HTML grammar the
// cursor currently is.
type TemplateTagPosition int

const (
	// PositionElement is in normal content, where an element could start.
	PositionElement TemplateTagPosition = iota + 1
	// PositionInStartTag is between attributes of a start tag.
	PositionInStartTag
	// PositionInAttribute is inside an attribute value.
	PositionInAttribute
	// PositionInRCData is inside textarea content.
	PositionInRCData
	// PositionInRawText is inside script or style content.
	PositionInRawText
)

func (p TemplateTagPosition) String() string {
	switch p {
	case PositionElement:
		return "ELEMENT"
	case PositionInStartTag:
		return "IN_START_TAG"
	case PositionInAttribute:
		return "IN_ATTRIBUTE"
	case PositionInRCData:
		return "IN_RCDATA"
	case PositionInRawText:
		return "IN_RAWTEXT"
	}
	return fmt.Sprintf("TemplateTagPosition(%d)", int(p))
}

// TemplateTagSource recognizes host template syntax. It is called at every
// point where a template tag may begin.
//
// If nothing is recognized it must return nil and leave s.Pos alone. If it
// recognizes a tag it advances s.Pos past it and returns a non-nil value. It
// may also advance s.Pos and return nil, meaning the input was consumed but
// produced nothing, such as a template comment. It may call s.Fatal to reject
// the input.
type TemplateTagSource interface {
	GetTemplateTag(s *Scanner, pos TemplateTagPosition) any
}

// TemplateTagFunc adapts an ordinary function to a TemplateTagSource.
type TemplateTagFunc func(s *Scanner, pos TemplateTagPosition) any

// GetTemplateTag calls f(s, pos).
func (f TemplateTagFunc) GetTemplateTag(s *Scanner, pos TemplateTagPosition) any {
	return f(s, pos)
}

// getTemplateTag asks src for a template tag. ok is false when nothing was
// consumed; tt is nil when input was consumed without producing a tag.
func getTemplateTag(src TemplateTagSource, s *Scanner, pos TemplateTagPosition) (tt *TemplateTag, ok bool) {
	if src == nil {
		return nil, false
	}
	start := s.Pos
	v := src.GetTemplateTag(s, pos)
	if v == nil {
		return nil, s.Pos > start
	}
	if s.Pos == start {
		s.Fatal("Template tag source returned a value without consuming any input")
	}
	if t, isTag := v.(*TemplateTag); isTag {
		return t, true
	}
	return &TemplateTag{Value: v}, true
}
