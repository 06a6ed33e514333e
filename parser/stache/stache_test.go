package stache

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/heathj/htmltools/parser"
	"github.com/heathj/htmltools/parser/spec"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tag(kind Kind, path string, pos parser.TemplateTagPosition) *parser.TemplateTag {
	return &parser.TemplateTag{Value: &Tag{Kind: kind, Path: path, Position: pos}}
}

func block(path string, content parser.Node) *parser.TemplateTag {
	return &parser.TemplateTag{Value: &Tag{Kind: Block, Path: path, Position: parser.PositionElement, Content: content}}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want parser.Node
	}{
		{
			name: "double",
			in:   "{{ name }}",
			want: tag(Double, "name", parser.PositionElement),
		},
		{
			name: "triple",
			in:   "<p>{{{body}}}</p>",
			want: &parser.Element{Name: "p", Children: []parser.Node{tag(Triple, "body", parser.PositionElement)}},
		},
		{
			name: "attribute value",
			in:   `<a href="/u/{{id}}">x</a>`,
			want: &parser.Element{
				Name: "a",
				Attrs: parser.StaticAttrs{{
					Name:  "href",
					Value: parser.Sequence{parser.Text("/u/"), tag(Double, "id", parser.PositionInAttribute)},
				}},
				Children: []parser.Node{parser.Text("x")},
			},
		},
		{
			name: "start tag",
			in:   `<input {{attrs}}>`,
			want: &parser.Element{
				Name:  "input",
				Attrs: parser.MixedAttrs{tag(Double, "attrs", parser.PositionInStartTag)},
			},
		},
		{
			name: "comments",
			in:   "a{{! one }}b{{!-- two }} --}}c",
			want: parser.Text("abc"),
		},
		{
			name: "block",
			in:   "{{#if}}<b>x</b>{{/if}}!",
			want: parser.Sequence{
				block("if", &parser.Element{Name: "b", Children: []parser.Node{parser.Text("x")}}),
				parser.Text("!"),
			},
		},
		{
			name: "nested blocks",
			in:   "{{#each}}{{#if}}a{{/if}}b{{/each}}",
			want: block("each", parser.Sequence{block("if", parser.Text("a")), parser.Text("b")}),
		},
		{
			name: "empty block",
			in:   "{{#if}}{{/if}}",
			want: block("if", nil),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parser.ParseFragment(tt.in, Options())
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in      string
		wantErr string
	}{
		{"{{x", "Unclosed template tag, expected `}}`"},
		{"{{!-- x }}", "Unclosed template tag, expected `--}}`"},
		{"{{ }}", "Empty template tag"},
		{"{{/if}}", "Unexpected closing template tag"},
		{"{{#if}}x", "Expected {{/if}}"},
		{"{{#if}}<b>x{{/if}}</b>", "Unexpected closing template tag"},
		{"{{#if}}</b>{{/if}}", "Unexpected HTML close tag"},
		{"<a {{{x}}}>", "Triple-stache is only allowed in element position, not IN_START_TAG"},
		{"<a b='{{#if}}{{/if}}'>", "Block tags are only allowed in element position, not IN_ATTRIBUTE"},
		{"<textarea>{{{x}}}</textarea>", "Triple-stache is only allowed in element position, not IN_RCDATA"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			_, err := parser.ParseFragment(tt.in, Options())
			require.Error(t, err)
			var pe *parser.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.wantErr, pe.Message)
		})
	}
}

func TestNestedErrorOffset(t *testing.T) {
	_, err := parser.ParseFragment("ab{{#if}}<i>{{/if}}", Options())
	var pe *parser.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "Unexpected closing template tag", pe.Message)
	assert.Equal(t, 12, pe.Offset)
}

func TestBlockUsesSourceSettings(t *testing.T) {
	known := spec.NewKnownElements([]string{"widget"}, nil, []string{"widget"})
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	src := Source{KnownElements: known, Logger: logger}

	got, err := parser.ParseFragment("{{#if}}<widget/>{{/if}}", &parser.Options{
		TemplateTags:  src,
		KnownElements: known,
		Logger:        logger,
	})
	require.NoError(t, err)
	if diff := cmp.Diff(block("if", &parser.Element{Name: "widget"}), got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	var traced bool
	for _, e := range hook.AllEntries() {
		if e.Message == `[TOKEN] "<widget/>"` {
			traced = true
		}
	}
	assert.True(t, traced, "block body tokens should reach the logger")

	_, err = parser.ParseFragment("{{#if}}<widget/>{{/if}}", &parser.Options{
		TemplateTags:  Source{},
		KnownElements: known,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "allowed to self-close")
}

func TestStopAt(t *testing.T) {
	s := parser.NewScanner("abc{{/x}}")
	stop := StopAt("{{/x}}")
	assert.False(t, stop(s))
	s.Pos = 3
	assert.True(t, stop(s))
}

func TestTagString(t *testing.T) {
	assert.Equal(t, "{{a}}", (&Tag{Kind: Double, Path: "a"}).String())
	assert.Equal(t, "{{{a}}}", (&Tag{Kind: Triple, Path: "a"}).String())
	assert.Equal(t, "{{#a}}", (&Tag{Kind: Block, Path: "a"}).String())
}
