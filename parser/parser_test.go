package parser

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/heathj/htmltools/parser/spec"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFragmentScenarios(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Node
	}{
		{
			name: "decoded entity in div",
			in:   "<div>&amp;</div>",
			want: &Element{Name: "div", Children: []Node{&CharRef{HTML: "&amp;", Str: "&"}}},
		},
		{
			name: "void img",
			in:   `<img src="a.png">`,
			want: &Element{Name: "img", Attrs: StaticAttrs{{Name: "src", Value: Text("a.png")}}},
		},
		{
			name: "textarea rcdata",
			in:   "<textarea>\nhello &lt; world</textarea>",
			want: &Element{Name: "textarea", Attrs: StaticAttrs{{
				Name:  "value",
				Value: Sequence{Text("hello "), &CharRef{HTML: "&lt;", Str: "<"}, Text(" world")},
			}}},
		},
		{
			name: "textarea keeps its other attributes",
			in:   "<textarea rows=2 value=x>\r\nhi</textarea>",
			want: &Element{Name: "textarea", Attrs: StaticAttrs{
				{Name: "rows", Value: Text("2")},
				{Name: "value", Value: Text("hi")},
			}},
		},
		{
			name: "empty textarea",
			in:   "<textarea></textarea>",
			want: &Element{Name: "textarea"},
		},
		{
			name: "script rawtext",
			in:   "<script>if (a&&b) {}</script>",
			want: &Element{Name: "script", Children: []Node{Text("if (a&&b) {}")}},
		},
		{
			name: "mixed content",
			in:   "a<b>c</b>d<!--e-->",
			want: Sequence{
				Text("a"),
				&Element{Name: "b", Children: []Node{Text("c")}},
				Text("d"),
				&Comment{Value: "e"},
			},
		},
		{
			name: "adjacent text is merged",
			in:   "a & b",
			want: Text("a & b"),
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
		{
			name: "crlf in text",
			in:   "a\r\nb",
			want: Text("a\nb"),
		},
		{
			name: "supplementary plane reference",
			in:   "&#x1F600;",
			want: &CharRef{HTML: "&#x1F600;", Str: "\U0001F600"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseFragment(tt.in, nil)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseFragment(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := ParseFragment("<div>\n  <span></div>", nil)
	require.Error(t, err)
	pe, ok := asParseError(err)
	require.True(t, ok)
	assert.Equal(t, `Expected "span" end tag`, pe.Message)
	assert.Equal(t, 20, pe.Offset)
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, 15, pe.Col)
}

func TestParseFragmentTemplateTags(t *testing.T) {
	stub := &stubTemplateTags{}
	opts := &Options{TemplateTags: stub}

	got, err := ParseFragment(`<div {{attrs}} class="a {{b}}">{{c}}</div>`, opts)
	require.NoError(t, err)
	want := &Element{
		Name: "div",
		Attrs: MixedAttrs{
			StaticAttrs{{Name: "class", Value: Sequence{Text("a "), &TemplateTag{Value: "b"}}}},
			&TemplateTag{Value: "attrs"},
		},
		Children: []Node{&TemplateTag{Value: "c"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	got, err = ParseFragment(`<div {{a}} {{b}}></div>`, opts)
	require.NoError(t, err)
	assert.Equal(t, MixedAttrs{&TemplateTag{Value: "a"}, &TemplateTag{Value: "b"}}, got.(*Element).Attrs)

	got, err = ParseFragment("<textarea {{attrs}}>hi</textarea>", opts)
	require.NoError(t, err)
	assert.Equal(t, MixedAttrs{
		&TemplateTag{Value: "attrs"},
		StaticAttrs{{Name: "value", Value: Text("hi")}},
	}, got.(*Element).Attrs)

	got, err = ParseFragment("<textarea a=b {{attrs}}>hi</textarea>", opts)
	require.NoError(t, err)
	assert.Equal(t, MixedAttrs{
		StaticAttrs{{Name: "a", Value: Text("b")}},
		&TemplateTag{Value: "attrs"},
		StaticAttrs{{Name: "value", Value: Text("hi")}},
	}, got.(*Element).Attrs)

	got, err = ParseFragment("a{{! note }}b", opts)
	require.NoError(t, err)
	assert.Equal(t, Text("ab"), got)

	got, err = ParseFragment("{{! only a comment }}", opts)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestParseFragmentTemplateTagPositions(t *testing.T) {
	tests := []struct {
		in   string
		want TemplateTagPosition
	}{
		{"{{x}}", PositionElement},
		{"<a {{x}}></a>", PositionInStartTag},
		{"<a b={{x}}></a>", PositionInAttribute},
		{"<textarea>{{x}}</textarea>", PositionInRCData},
		{"<script>{{x}}</script>", PositionInRawText},
		{"<style>{{x}}</style>", PositionInRawText},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			var seen TemplateTagPosition
			src := TemplateTagFunc(func(s *Scanner, pos TemplateTagPosition) any {
				if !strings.HasPrefix(s.Rest(), "{{x}}") {
					return nil
				}
				s.Pos += 5
				seen = pos
				return "x"
			})
			_, err := ParseFragment(tt.in, &Options{TemplateTags: src})
			require.NoError(t, err)
			assert.Equal(t, tt.want, seen)
		})
	}
}

func TestParseFragmentShouldStop(t *testing.T) {
	s := NewScanner("<b>x</b>STOP rest")
	got, err := ParseFragmentScanner(s, &Options{
		ShouldStop: func(s *Scanner) bool { return strings.HasPrefix(s.Rest(), "STOP") },
	})
	require.NoError(t, err)
	assert.Equal(t, &Element{Name: "b", Children: []Node{Text("x")}}, got)
	assert.Equal(t, 8, s.Pos)

	_, err = ParseFragment("<b>x</b></i>STOP", &Options{
		ShouldStop: func(s *Scanner) bool { return strings.HasPrefix(s.Rest(), "STOP") },
	})
	assert.Equal(t, "Unexpected HTML close tag", parseErrorMessage(t, err))

	// text runs are not split, so the stop is seen only between tokens
	s = NewScanner("text&amp;STOP")
	s.Pos = 2
	got, err = ParseFragmentScanner(s, &Options{
		TextMode:   TextModeRCData,
		ShouldStop: func(s *Scanner) bool { return strings.HasPrefix(s.Rest(), "STOP") },
	})
	require.NoError(t, err)
	assert.Equal(t, Sequence{Text("xt"), &CharRef{HTML: "&amp;", Str: "&"}}, got)
	assert.Equal(t, 9, s.Pos)
}

func TestParseFragmentTextModes(t *testing.T) {
	got, err := ParseFragment("<b>&amp;</b>", &Options{TextMode: TextModeString})
	require.NoError(t, err)
	assert.Equal(t, Text("<b>&amp;</b>"), got)

	got, err = ParseFragment("<b>&amp;</b>", &Options{TextMode: TextModeRCData})
	require.NoError(t, err)
	assert.Equal(t, Sequence{Text("<b>"), &CharRef{HTML: "&amp;", Str: "&"}, Text("</b>")}, got)

	_, err = ParseFragment("x", &Options{TextMode: TextMode(42)})
	assert.EqualError(t, err, "unsupported text mode 42")

	mode, err := ParseTextMode("RCDATA")
	require.NoError(t, err)
	assert.Equal(t, TextModeRCData, mode)
	_, err = ParseTextMode("xml")
	assert.Error(t, err)
}

func TestParseFragmentKnownElements(t *testing.T) {
	known := spec.NewKnownElements([]string{"widget"}, []string{"fancyShape"}, []string{"widget"})

	got, err := ParseFragment("<widget/><FANCYSHAPE/>", &Options{KnownElements: known})
	require.NoError(t, err)
	assert.Equal(t, Sequence{&Element{Name: "widget"}, &Element{Name: "fancyShape"}}, got)

	_, err = ParseFragment("<br/>", &Options{KnownElements: known})
	assert.Equal(t, "Only certain elements like BR, HR, IMG, etc. (and foreign elements like SVG) are allowed to self-close", parseErrorMessage(t, err))
}

func TestParseFragmentLogsTokens(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := ParseFragment("<p>x</p>", &Options{Logger: logger})
	require.NoError(t, err)

	entries := hook.AllEntries()
	// the end tag is read twice: once to end the content, once to close <p>
	require.Len(t, entries, 5)
	assert.Equal(t, `[TOKEN] "<p>"`, entries[0].Message)
	assert.Equal(t, TagToken, entries[0].Data["type"])
	assert.Equal(t, "tokenizer", entries[0].Data["component"])
	assert.Equal(t, `[TOKEN] "</p>"`, entries[3].Message)
	assert.Equal(t, "fragment parsed", entries[4].Message)

	hook.Reset()
	logger.SetLevel(logrus.InfoLevel)
	_, err = ParseFragment("<p>x</p>", &Options{Logger: logger})
	require.NoError(t, err)
	assert.Empty(t, hook.AllEntries())
}

func TestParseFragmentConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := ParseFragment("<p title='&notin;'>&amp;</p>", nil)
			assert.NoError(t, err)
			assert.Equal(t, "&", TextContent(got))
		}()
	}
	wg.Wait()
}
