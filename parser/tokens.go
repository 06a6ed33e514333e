package parser

import (
	"strings"
)

// TokenType identifies which fields of a Token are meaningful.
type TokenType uint

const (
	// CharacterToken is a run of literal text in Data.
	CharacterToken TokenType = iota
	// CharRefToken is a character reference. Data holds the source text and
	// CodePoints the decoded value.
	CharRefToken
	// TagToken is a start or end tag.
	TagToken
	// CommentToken holds the comment body in Data.
	CommentToken
	// DoctypeToken holds the raw source in Data and the parsed parts in
	// Name, PublicIdentifier and SystemIdentifier.
	DoctypeToken
	// TemplateTagToken wraps the value returned by a TemplateTagSource.
	TemplateTagToken
)

func (t TokenType) String() string {
	switch t {
	case CharacterToken:
		return "Chars"
	case CharRefToken:
		return "CharRef"
	case TagToken:
		return "Tag"
	case CommentToken:
		return "Comment"
	case DoctypeToken:
		return "Doctype"
	case TemplateTagToken:
		return "TemplateTag"
	}
	return "Unknown"
}

// Token is a single lexical unit produced by the HTMLTokenizer.
type Token struct {
	TokenType TokenType
	Data      string
	// CodePoints is set on CharRefToken.
	CodePoints []rune

	TagName     string
	IsEnd       bool
	SelfClosing bool
	// Attributes is nil for a tag written without any.
	Attributes *TokenAttributes

	// Doctype fields. An empty identifier means it was not given.
	Name             string
	PublicIdentifier string
	SystemIdentifier string

	TemplateTag *TemplateTag
}

// RawAttribute is a static attribute as it appeared in a start tag. The value
// is a list of Chars, CharRef and TemplateTag tokens; an empty list means the
// attribute had no value or an empty one.
type RawAttribute struct {
	Name  string
	Value []*Token
}

// TokenAttributes holds everything between a tag name and its closing >.
type TokenAttributes struct {
	Static []RawAttribute
	// TemplateTags are template tags found between attributes, in order.
	TemplateTags []*TemplateTag
}

// Mixed reports whether any template tags appeared among the attributes.
func (a *TokenAttributes) Mixed() bool {
	return a != nil && len(a.TemplateTags) > 0
}

func (a *TokenAttributes) has(name string) bool {
	for _, attr := range a.Static {
		if attr.Name == name {
			return true
		}
	}
	return false
}

// TokenBuilder accumulates a tag token and its attribute values while the
// tokenizer walks a start or end tag.
type TokenBuilder struct {
	tagName        string
	isEnd          bool
	selfClosing    bool
	attributes     *TokenAttributes
	attributeValue []*Token
	chars          strings.Builder
}

func newTokenBuilder() *TokenBuilder {
	return &TokenBuilder{}
}

// NewTag resets the builder for a new tag.
func (t *TokenBuilder) NewTag(name string, isEnd bool) {
	t.tagName = name
	t.isEnd = isEnd
	t.selfClosing = false
	t.attributes = nil
	t.attributeValue = nil
	t.chars.Reset()
}

// EnableSelfClosing sets the self-closing flag.
func (t *TokenBuilder) EnableSelfClosing() {
	t.selfClosing = true
}

func (t *TokenBuilder) ensureAttributes() *TokenAttributes {
	if t.attributes == nil {
		t.attributes = &TokenAttributes{}
	}
	return t.attributes
}

// AddTemplateTag records a template tag found in attribute position.
func (t *TokenBuilder) AddTemplateTag(tt *TemplateTag) {
	a := t.ensureAttributes()
	a.TemplateTags = append(a.TemplateTags, tt)
}

// DuplicateAttributeName reports whether name was already seen on this tag.
func (t *TokenBuilder) DuplicateAttributeName(name string) bool {
	return t.attributes != nil && t.attributes.has(name)
}

// StartAttribute appends a valueless attribute. A following CommitAttribute
// fills in its value.
func (t *TokenBuilder) StartAttribute(name string) {
	a := t.ensureAttributes()
	a.Static = append(a.Static, RawAttribute{Name: name})
	t.attributeValue = nil
	t.chars.Reset()
}

// WriteAttributeValue appends a literal byte to the current value.
func (t *TokenBuilder) WriteAttributeValue(b byte) {
	t.chars.WriteByte(b)
}

// AppendAttributeToken appends a char ref or template tag to the current
// value, closing off any pending literal text first.
func (t *TokenBuilder) AppendAttributeToken(tok *Token) {
	t.flushChars()
	t.attributeValue = append(t.attributeValue, tok)
}

func (t *TokenBuilder) flushChars() {
	if t.chars.Len() == 0 {
		return
	}
	t.attributeValue = append(t.attributeValue, &Token{
		TokenType: CharacterToken,
		Data:      t.chars.String(),
	})
	t.chars.Reset()
}

// CommitAttribute stores the accumulated value on the most recently started
// attribute.
func (t *TokenBuilder) CommitAttribute() {
	t.flushChars()
	if t.attributes == nil || len(t.attributes.Static) == 0 {
		return
	}
	t.attributes.Static[len(t.attributes.Static)-1].Value = t.attributeValue
	t.attributeValue = nil
}

// TagToken creates a tag token from the builder contents.
func (t *TokenBuilder) TagToken() *Token {
	return &Token{
		TokenType:   TagToken,
		TagName:     t.tagName,
		IsEnd:       t.isEnd,
		SelfClosing: t.selfClosing,
		Attributes:  t.attributes,
	}
}

// CharacterToken creates a Chars token.
func (t *TokenBuilder) CharacterToken(data string) *Token {
	return &Token{
		TokenType: CharacterToken,
		Data:      data,
	}
}

// CommentToken creates a comment token.
func (t *TokenBuilder) CommentToken(data string) *Token {
	return &Token{
		TokenType: CommentToken,
		Data:      data,
	}
}

// TemplateTagToken wraps a template tag value.
func (t *TokenBuilder) TemplateTagToken(tt *TemplateTag) *Token {
	return &Token{
		TokenType:   TemplateTagToken,
		TemplateTag: tt,
	}
}
