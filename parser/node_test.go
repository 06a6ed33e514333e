package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeTypes(t *testing.T) {
	tests := []struct {
		node Node
		want NodeType
	}{
		{Text("x"), TextNode},
		{&CharRef{}, CharRefNode},
		{&Comment{}, CommentNode},
		{&Element{}, ElementNode},
		{&TemplateTag{}, TemplateTagNode},
		{Sequence{}, SequenceNode},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.node.NodeType())
	}
}

func TestElementAttr(t *testing.T) {
	node, err := ParseFragment(`<a {{x}} href="/a" data-x=1></a>`, &Options{TemplateTags: &stubTemplateTags{}})
	require.NoError(t, err)
	el := node.(*Element)

	v, ok := el.Attr("href")
	require.True(t, ok)
	assert.Equal(t, Text("/a"), v)

	_, ok = el.Attr("title")
	assert.False(t, ok)

	assert.Len(t, el.StaticAttributes(), 2)
	assert.Nil(t, (&Element{Name: "p"}).StaticAttributes())
}

func TestStaticAttrsWith(t *testing.T) {
	a := StaticAttrs{{Name: "a", Value: Text("1")}}
	b := a.With("a", Text("2")).With("b", Text("3"))

	assert.Equal(t, StaticAttrs{{Name: "a", Value: Text("1")}}, a, "With must not modify its receiver")
	assert.Equal(t, StaticAttrs{
		{Name: "a", Value: Text("2")},
		{Name: "b", Value: Text("3")},
	}, b)
}

func TestSetStaticAttrOnMixed(t *testing.T) {
	tt := &TemplateTag{Value: "x"}
	got := setStaticAttr(MixedAttrs{tt}, "value", Text("v"))
	assert.Equal(t, MixedAttrs{tt, StaticAttrs{{Name: "value", Value: Text("v")}}}, got)

	rows := StaticAttrs{{Name: "rows", Value: Text("1")}}
	got = setStaticAttr(MixedAttrs{rows, tt}, "value", Text("v"))
	assert.Equal(t, MixedAttrs{rows, tt, StaticAttrs{{Name: "value", Value: Text("v")}}}, got)
}

func TestStaticAttributesLaterSourceWins(t *testing.T) {
	el := &Element{Name: "textarea", Attrs: MixedAttrs{
		StaticAttrs{{Name: "value", Value: Text("old")}, {Name: "rows", Value: Text("1")}},
		&TemplateTag{Value: "x"},
		StaticAttrs{{Name: "value", Value: Text("new")}},
	}}
	assert.Equal(t, StaticAttrs{
		{Name: "value", Value: Text("new")},
		{Name: "rows", Value: Text("1")},
	}, el.StaticAttributes())
}

func TestTextContent(t *testing.T) {
	node, err := ParseFragment("<p>a &lt; <b>b</b></p>", nil)
	require.NoError(t, err)
	assert.Equal(t, "a < b", TextContent(node))
	assert.Equal(t, "", TextContent(nil))
	assert.Equal(t, "42", TextContent(&TemplateTag{Value: 42}))
}

func TestDump(t *testing.T) {
	node, err := ParseFragment(`<div {{attrs}} title="a&amp;{{b}}">x<!--y--></div>`, &Options{TemplateTags: &stubTemplateTags{}})
	require.NoError(t, err)

	want := `| <div>
|   title="a&amp;b"
|   attrs
|   "x"
|   <!-- y -->`
	assert.Equal(t, want, Dump(node))
	assert.Equal(t, "", Dump(nil))
}
