package parser

import (
	"fmt"
	"strings"
)

// NodeType identifies the concrete type of a Node.
type NodeType uint16

const (
	ElementNode NodeType = iota + 1
	TextNode
	CharRefNode
	CommentNode
	TemplateTagNode
	SequenceNode
)

// Node is one of Text, *CharRef, *Comment, *Element, *TemplateTag or
// Sequence. A nil Node means no content.
type Node interface {
	NodeType() NodeType
}

// Text is literal text with CRLF already converted to LF.
type Text string

// CharRef is a decoded character reference. HTML is the source text, such as
// "&amp;", and Str the characters it stands for.
type CharRef struct {
	HTML string
	Str  string
}

// Comment is an HTML comment without its delimiters.
type Comment struct {
	Value string
}

// Element is an HTML or foreign element. Name is proper-cased.
type Element struct {
	Name     string
	Attrs    Attrs
	Children []Node
}

// TemplateTag carries a value produced by a TemplateTagSource. The parser
// never looks inside it.
type TemplateTag struct {
	Value any
}

// Sequence holds two or more sibling nodes. Adjacent Text nodes never occur
// in a Sequence built by the parser.
type Sequence []Node

func (Text) NodeType() NodeType         { return TextNode }
func (*CharRef) NodeType() NodeType     { return CharRefNode }
func (*Comment) NodeType() NodeType     { return CommentNode }
func (*Element) NodeType() NodeType     { return ElementNode }
func (*TemplateTag) NodeType() NodeType { return TemplateTagNode }
func (Sequence) NodeType() NodeType     { return SequenceNode }

func (t *TemplateTag) String() string {
	if s, ok := t.Value.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", t.Value)
}

// Attrs is StaticAttrs or MixedAttrs. A nil Attrs means the element has no
// attributes.
type Attrs interface {
	isAttrs()
}

// AttrSource is one entry of MixedAttrs: StaticAttrs or *TemplateTag.
type AttrSource interface {
	isAttrSource()
}

// Attribute is a single name/value pair. Value is never nil; an attribute
// written without a value has Text("").
type Attribute struct {
	Name  string
	Value Node
}

// StaticAttrs lists attributes in source order.
type StaticAttrs []Attribute

// MixedAttrs is used when template tags appear among a start tag's
// attributes. The static attributes, if any, come first.
type MixedAttrs []AttrSource

func (StaticAttrs) isAttrs()       {}
func (MixedAttrs) isAttrs()        {}
func (StaticAttrs) isAttrSource()  {}
func (*TemplateTag) isAttrSource() {}

// Get returns the value of the named attribute.
func (a StaticAttrs) Get(name string) (Node, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return nil, false
}

// With returns a copy of a with name set to value.
func (a StaticAttrs) With(name string, value Node) StaticAttrs {
	out := make(StaticAttrs, 0, len(a)+1)
	replaced := false
	for _, attr := range a {
		if attr.Name == name {
			attr.Value = value
			replaced = true
		}
		out = append(out, attr)
	}
	if !replaced {
		out = append(out, Attribute{Name: name, Value: value})
	}
	return out
}

// StaticAttributes returns the static attributes of e, flattening
// MixedAttrs and skipping its template tags. A name set by a later source
// replaces the earlier value.
func (e *Element) StaticAttributes() StaticAttrs {
	switch a := e.Attrs.(type) {
	case StaticAttrs:
		return a
	case MixedAttrs:
		var out StaticAttrs
		for _, src := range a {
			if st, ok := src.(StaticAttrs); ok {
				for _, attr := range st {
					out = out.With(attr.Name, attr.Value)
				}
			}
		}
		return out
	}
	return nil
}

// Attr returns the value of a static attribute of e.
func (e *Element) Attr(name string) (Node, bool) {
	return e.StaticAttributes().Get(name)
}

// TextContent returns the characters n stands for, with character
// references decoded. Template tags contribute their String form.
func TextContent(n Node) string {
	var b strings.Builder
	writeText(&b, n, false)
	return b.String()
}

func writeText(b *strings.Builder, n Node, source bool) {
	switch v := n.(type) {
	case Text:
		b.WriteString(string(v))
	case *CharRef:
		if source {
			b.WriteString(v.HTML)
		} else {
			b.WriteString(v.Str)
		}
	case *TemplateTag:
		b.WriteString(v.String())
	case Sequence:
		for _, c := range v {
			writeText(b, c, source)
		}
	case *Element:
		for _, c := range v.Children {
			writeText(b, c, source)
		}
	}
}

func serializeNode(n Node, ident int) string {
	switch v := n.(type) {
	case *Element:
		e := "<" + v.Name + ">"
		spaces := indent(ident + 1)
		for _, attr := range v.StaticAttributes() {
			var b strings.Builder
			writeText(&b, attr.Value, true)
			e += "\n" + spaces + attr.Name + "=\"" + b.String() + "\""
		}
		if mixed, ok := v.Attrs.(MixedAttrs); ok {
			for _, src := range mixed {
				if tt, ok := src.(*TemplateTag); ok {
					e += "\n" + spaces + tt.String()
				}
			}
		}
		return e
	case Text:
		return "\"" + string(v) + "\""
	case *CharRef:
		return v.HTML
	case *Comment:
		return "<!-- " + v.Value + " -->"
	case *TemplateTag:
		return v.String()
	}
	return fmt.Sprintf("<unknown node %T>", n)
}

func indent(ident int) string {
	spaces := "| "
	for i := 1; i < ident; i++ {
		spaces += "  "
	}
	return spaces
}

func dump(b *strings.Builder, n Node, ident int) {
	switch v := n.(type) {
	case nil:
		return
	case Sequence:
		for _, c := range v {
			dump(b, c, ident)
		}
		return
	}

	b.WriteString(indent(ident) + serializeNode(n, ident) + "\n")
	if el, ok := n.(*Element); ok {
		for _, c := range el.Children {
			dump(b, c, ident+1)
		}
	}
}

// Dump renders n as an indented tree, one node per line:
//
//	| <div>
//	|   class="x"
//	|   "hello "
//	|   &amp;
func Dump(n Node) string {
	var b strings.Builder
	dump(&b, n, 1)
	return strings.TrimRight(b.String(), "\n")
}
