package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestRenderString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`<p class="a">x &amp; y</p>`, `<p class="a">x &amp; y</p>`},
		{`<!--c-->`, `<!--c-->`},
		{`a<b>c</b>`, `a<b>c</b>`},
		{`<script>if (a&&b) {}</script>`, `<script>if (a&&b) {}</script>`},
		{`<textarea>a&lt;b</textarea>`, `<textarea>a&lt;b</textarea>`},
		{`<a title="&quot;hi&quot;">x</a>`, `<a title="&#34;hi&#34;">x</a>`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			node, err := ParseFragment(tt.in, nil)
			require.NoError(t, err)
			got, err := RenderString(node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderRoundTrip(t *testing.T) {
	in := `<div id="main"><p>one &amp; two</p><!-- note --><ul><li>x</li></ul></div>`
	first, err := ParseFragment(in, nil)
	require.NoError(t, err)

	out, err := RenderString(first)
	require.NoError(t, err)
	second, err := ParseFragment(out, nil)
	require.NoError(t, err)

	assert.Equal(t, Dump(first), Dump(second))
}

func TestHTMLNodes(t *testing.T) {
	node, err := ParseFragment(`<svg viewBox="0 0 1 1"></svg>text&amp;more`, nil)
	require.NoError(t, err)

	nodes := HTMLNodes(node)
	require.Len(t, nodes, 2)
	assert.Equal(t, html.ElementNode, nodes[0].Type)
	assert.Equal(t, atom.Svg, nodes[0].DataAtom)
	assert.Equal(t, []html.Attribute{{Key: "viewBox", Val: "0 0 1 1"}}, nodes[0].Attr)
	assert.Equal(t, html.TextNode, nodes[1].Type)
	assert.Equal(t, "text&more", nodes[1].Data)

	assert.Nil(t, HTMLNodes(nil))
}

func TestRenderTemplateTag(t *testing.T) {
	node, err := ParseFragment(`<b>{{name}}</b>`, &Options{TemplateTags: &stubTemplateTags{}})
	require.NoError(t, err)
	got, err := RenderString(node)
	require.NoError(t, err)
	assert.Equal(t, "<b>name</b>", got)
}
