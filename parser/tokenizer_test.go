package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/heathj/htmltools/parser/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firstToken reads a single token from in.
func firstToken(in string, state TokenizerState, opts *Options) (*Token, error) {
	return NewHTMLTokenizer(NewScanner(in), opts).Token(state)
}

func parseErrorMessage(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	pe, ok := asParseError(err)
	require.True(t, ok, "expected a *ParseError, got %T: %v", err, err)
	return pe.Message
}

type tokenizerAttributeAccuracyTestcase struct {
	inHTML string            // snippet of HTML to tokenize (should only be one element)
	attrs  map[string]string // expected attributes collected from the first token
}

var tokenizerAttributeAccuracyTests = []tokenizerAttributeAccuracyTestcase{
	{"<head></head>", map[string]string{}},
	{"<script src='123' onload='test'></script>", map[string]string{
		"src":    "123",
		"onload": "test",
	}},
	{"<a href='https://google.com' onclick='alert(1)'>Click this</a>", map[string]string{
		"href":    "https://google.com",
		"onclick": "alert(1)",
	}},
	{"<script src=123 onload=test></script>", map[string]string{
		"src":    "123",
		"onload": "test",
	}},
	{"<script src='123' onload='test' ></script>", map[string]string{
		"src":    "123",
		"onload": "test",
	}},
	{"<script src></script>", map[string]string{
		"src": "",
	}},
	{"<script src test></script>", map[string]string{
		"src":  "",
		"test": "",
	}},
	{"<script ABC=123></script>", map[string]string{
		"abc": "123",
	}},
	{"<script abc=''></script>", map[string]string{
		"abc": "",
	}},
	{"<script\tabc=123></script>", map[string]string{
		"abc": "123",
	}},
	{"<a b = 'c'>", map[string]string{
		"b": "c",
	}},
	{"<svg VIEWBOX='0 0 1 1'>", map[string]string{
		"viewBox": "0 0 1 1",
	}},
	{"<a title=\"x &amp; y\">", map[string]string{
		"title": "x & y",
	}},
	{"<a title=\"a\r\nb\rc\">", map[string]string{
		"title": "a\nb\nc",
	}},
	{"<a href=\"/?a=b&ltc=x\">", map[string]string{
		"href": "/?a=b&ltc=x",
	}},
}

// TestTokenizerAttributeAccuracy just makes sure that we have the
// correct attribute names and values
func TestTokenizerAttributeAccuracy(t *testing.T) {
	for _, tt := range tokenizerAttributeAccuracyTests {
		runTestTokenizerAttributeAccuracy(tt, t)
	}
}

// helper function to parallelize the above test case.
func runTestTokenizerAttributeAccuracy(tt tokenizerAttributeAccuracyTestcase, t *testing.T) {
	t.Run(tt.inHTML, func(t *testing.T) {
		t.Parallel()
		token, err := firstToken(tt.inHTML, DataState, nil)
		require.NoError(t, err)
		require.Equal(t, TagToken, token.TokenType)

		got := map[string]string{}
		if token.Attributes != nil {
			for _, attr := range token.Attributes.Static {
				got[attr.Name] = TextContent(attributeValue(attr.Value))
			}
		}
		if diff := cmp.Diff(tt.attrs, got); diff != "" {
			t.Errorf("attributes mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestTokenizerAttributeOrder(t *testing.T) {
	token, err := firstToken("<a z=1 y=2 x=3>", DataState, nil)
	require.NoError(t, err)

	var names []string
	for _, attr := range token.Attributes.Static {
		names = append(names, attr.Name)
	}
	assert.Equal(t, []string{"z", "y", "x"}, names)
}

type tokenizerErrorTestcase struct {
	in      string
	state   TokenizerState
	wantErr string
}

var tokenizerErrorTests = []tokenizerErrorTestcase{
	{"<script src='123' src='456'>", DataState, "Duplicate attribute in tag: src"},
	{"<a HREF=x href=y>", DataState, "Duplicate attribute in tag: href"},
	{"<script 'asd>", DataState, "Expected attribute name in tag"},
	{"<script <asd>", DataState, "Expected attribute name in tag"},
	{"<script abc=>", DataState, "Unexpected character after = in tag"},
	{"<script abc=`x`>", DataState, "Unexpected character after = in tag"},
	{"<script abc='\x00'>", DataState, "Unexpected character in attribute value"},
	{"<a b=c\"d>", DataState, "Unexpected character in attribute value"},
	{"<a b\"c>", DataState, "Unexpected character after attribute name in tag"},
	{"<a{{b}}>", DataState, "Expected space after tag name"},
	{"<a x{y>", DataState, "Unexpected `{` in attribute name."},
	{"</a/>", DataState, "End tag can't have trailing slash"},
	{"</a />", DataState, "End tag can't have trailing slash"},
	{"</a b>", DataState, "End tag can't have attributes"},
	{"<a", DataState, "Unclosed `<`"},
	{"<a b", DataState, "Unclosed <"},
	{"<a b=", DataState, "Unclosed <"},
	{"<a b='c", DataState, "Unclosed attribute in tag"},
	{"<a b=c", DataState, "Unclosed attribute in tag"},
	{"<a b='c'd>", DataState, "Expected space"},
	{"<a/ >", DataState, "Expected `>` after `/`"},
	{"< a>", DataState, "Expected tag name after `<`"},
	{"</>", DataState, "Expected tag name after `<`"},
	{"<!foo>", DataState, "Unexpected `<!` directive."},
	{"\x00", DataState, "Illegal NULL character"},
	{"\x00", RawTextState, "Illegal NULL character"},
	{"<!-->", DataState, "HTML comment can't start with > or ->"},
	{"<!--->", DataState, "HTML comment can't start with > or ->"},
	{"<!-- x", DataState, "Unclosed HTML comment"},
	{"<!-- x --->", DataState, "HTML comment must end at first `--`"},
	{"<!-- a -- b -->", DataState, "HTML comment cannot contain `--` anywhere"},
	{"<!--a\x00-->", DataState, "HTML comment cannot contain NULL"},
	{"<!DOCTYPE>", DataState, "Expected space"},
	{"<!DOCTYPE >", DataState, "Malformed DOCTYPE"},
	{"<!DOCTYPE html", DataState, "Malformed DOCTYPE"},
	{"<!DOCTYPE html FOO>", DataState, "Expected PUBLIC or SYSTEM in DOCTYPE"},
	{"<!DOCTYPE html SYSTEM>", DataState, "Expected space"},
	{"<!DOCTYPE html SYSTEM \"\">", DataState, "Malformed DOCTYPE"},
	{"<!DOCTYPE html SYSTEM \"a>\">", DataState, "Malformed DOCTYPE"},
	{"<!DOCTYPE html PUBLIC x>", DataState, "Expected single or double quote in DOCTYPE"},
	{"<!DOCTYPE html PUBLIC 'a' 'b' c>", DataState, "Malformed DOCTYPE"},
}

func TestTokenizerErrors(t *testing.T) {
	for _, tt := range tokenizerErrorTests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			_, err := firstToken(tt.in, tt.state, nil)
			assert.Equal(t, tt.wantErr, parseErrorMessage(t, err))
		})
	}
}

type tokenizerTestcase struct {
	in    string
	state TokenizerState
	want  []*Token
}

func chars(s string) *Token { return &Token{TokenType: CharacterToken, Data: s} }

var tokenizerTests = []tokenizerTestcase{
	{"hello", DataState, []*Token{chars("hello")}},
	{"a\r\nb\rc", DataState, []*Token{chars("a\nb\nc")}},
	{"a{b{c", DataState, []*Token{chars("a"), chars("{b"), chars("{c")}},
	{"<p>hi</p>", DataState, []*Token{
		{TokenType: TagToken, TagName: "p"},
		chars("hi"),
		{TokenType: TagToken, TagName: "p", IsEnd: true},
	}},
	{"<BR/>", DataState, []*Token{{TokenType: TagToken, TagName: "br", SelfClosing: true}}},
	{"<div >", DataState, []*Token{{TokenType: TagToken, TagName: "div"}}},
	{"</DIV >", DataState, []*Token{{TokenType: TagToken, TagName: "div", IsEnd: true}}},
	{"<foreignobject>", DataState, []*Token{{TokenType: TagToken, TagName: "foreignObject"}}},
	{"<!-- hi -->", DataState, []*Token{{TokenType: CommentToken, Data: " hi "}}},
	{"<!--a\r\nb-->", DataState, []*Token{{TokenType: CommentToken, Data: "a\nb"}}},
	{"<!---->", DataState, []*Token{{TokenType: CommentToken, Data: ""}}},
	{"<!DOCTYPE html>", DataState, []*Token{{TokenType: DoctypeToken, Data: "<!DOCTYPE html>", Name: "html"}}},
	{"<!doctype HTML >", DataState, []*Token{{TokenType: DoctypeToken, Data: "<!doctype HTML >", Name: "html"}}},
	{"<!DOCTYPE html SYSTEM 'about:legacy-compat'>", DataState, []*Token{{
		TokenType:        DoctypeToken,
		Data:             "<!DOCTYPE html SYSTEM 'about:legacy-compat'>",
		Name:             "html",
		SystemIdentifier: "about:legacy-compat",
	}}},
	{`<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`, DataState, []*Token{{
		TokenType:        DoctypeToken,
		Data:             `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`,
		Name:             "html",
		PublicIdentifier: "-//W3C//DTD HTML 4.01//EN",
		SystemIdentifier: "http://www.w3.org/TR/html4/strict.dtd",
	}}},
	{`<!DOCTYPE html PUBLIC "x">`, DataState, []*Token{{
		TokenType:        DoctypeToken,
		Data:             `<!DOCTYPE html PUBLIC "x">`,
		Name:             "html",
		PublicIdentifier: "x",
	}}},
	{"a&amp;b", DataState, []*Token{
		chars("a"),
		{TokenType: CharRefToken, Data: "&amp;", CodePoints: []rune{'&'}},
		chars("b"),
	}},
	{"a & b", DataState, []*Token{chars("a "), chars("&"), chars(" b")}},
	{"<b>&amp;", RCDataState, []*Token{
		chars("<"),
		chars("b>"),
		{TokenType: CharRefToken, Data: "&amp;", CodePoints: []rune{'&'}},
	}},
	{"a&amp;", RawTextState, []*Token{chars("a"), chars("&"), chars("amp;")}},
	{"</x>", RawTextState, []*Token{chars("<"), chars("/x>")}},
}

func TestTokenizer(t *testing.T) {
	for _, tt := range tokenizerTests {
		tt := tt
		t.Run(tt.state.String()+"/"+tt.in, func(t *testing.T) {
			t.Parallel()
			tok := NewHTMLTokenizer(NewScanner(tt.in), nil)
			var got []*Token
			for tok.Next() {
				token, err := tok.Token(tt.state)
				require.NoError(t, err)
				if token != nil {
					got = append(got, token)
				}
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("<p class=x>hi</p>", nil)
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, TagToken, tokens[0].TokenType)
	assert.False(t, tokens[0].Attributes.Mixed())
	assert.Equal(t, "x", TextContent(attributeValue(tokens[0].Attributes.Static[0].Value)))
	assert.Equal(t, CharacterToken, tokens[1].TokenType)
	assert.True(t, tokens[2].IsEnd)

	tokens, err = Tokenize("ok<a b='", nil)
	assert.Len(t, tokens, 1)
	assert.Equal(t, "Unclosed attribute in tag", parseErrorMessage(t, err))
}

func TestIsLookingAtEndTag(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"</textarea>", true},
		{"</TEXTAREA>", true},
		{"</textarea \n>", true},
		{"</textareax>", false},
		{"</textarea", false},
		{"</textarea x>", false},
		{"<textarea>", false},
		{"</ textarea>", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			s := NewScanner(tt.in)
			p := NewHTMLTokenizer(s, nil)
			assert.Equal(t, tt.want, p.isLookingAtEndTag("textarea"))
			assert.Equal(t, 0, s.Pos)
		})
	}
}

// stubTemplateTags recognizes "{{name}}" as a template tag with value name and
// "{{!...}}" as a comment. It records every position it was asked about.
type stubTemplateTags struct {
	positions []TemplateTagPosition
}

func (st *stubTemplateTags) GetTemplateTag(s *Scanner, pos TemplateTagPosition) any {
	st.positions = append(st.positions, pos)
	rest := s.Rest()
	if !strings.HasPrefix(rest, "{{") {
		return nil
	}
	end := strings.Index(rest, "}}")
	if end < 0 {
		s.Fatal("Unclosed template tag")
	}
	s.Pos += end + 2
	if strings.HasPrefix(rest, "{{!") {
		return nil
	}
	return rest[2:end]
}

func TestTokenizerTemplateTags(t *testing.T) {
	stub := &stubTemplateTags{}
	opts := &Options{TemplateTags: stub}

	tok, err := firstToken("{{x}}", DataState, opts)
	require.NoError(t, err)
	assert.Equal(t, TemplateTagToken, tok.TokenType)
	assert.Equal(t, "x", tok.TemplateTag.Value)
	assert.Equal(t, []TemplateTagPosition{PositionElement}, stub.positions)

	tok, err = firstToken("{{! note }}rest", RCDataState, opts)
	require.NoError(t, err)
	assert.Nil(t, tok, "a consumed comment produces no token")

	stub.positions = nil
	tok, err = firstToken(`<div {{attrs}} class="a {{b}}">`, DataState, opts)
	require.NoError(t, err)
	require.True(t, tok.Attributes.Mixed())
	assert.Equal(t, "attrs", tok.Attributes.TemplateTags[0].Value)
	value := tok.Attributes.Static[0].Value
	require.Len(t, value, 2)
	assert.Equal(t, "a ", value[0].Data)
	assert.Equal(t, "b", value[1].TemplateTag.Value)
	assert.Contains(t, stub.positions, PositionInStartTag)
	assert.Contains(t, stub.positions, PositionInAttribute)

	_, err = firstToken("<div {{attrs}}class=x>", DataState, opts)
	assert.Equal(t, "Expected space", parseErrorMessage(t, err))

	_, err = firstToken("<div {{! c }} x>", DataState, opts)
	assert.NoError(t, err)
}

func TestTemplateTagSourceMustConsume(t *testing.T) {
	lazy := TemplateTagFunc(func(s *Scanner, pos TemplateTagPosition) any {
		return "value"
	})
	_, err := firstToken("abc", DataState, &Options{TemplateTags: lazy})
	assert.Equal(t, "Template tag source returned a value without consuming any input", parseErrorMessage(t, err))
}

func TestTokenizerCaseNormalizer(t *testing.T) {
	p := NewHTMLTokenizer(NewScanner(""), nil)
	assert.Same(t, spec.DefaultCaseNormalizer(), p.cases)

	known := spec.NewKnownElements(nil, []string{"fancyShape"}, nil)
	p = NewHTMLTokenizer(NewScanner("<FANCYSHAPE>"), &Options{KnownElements: known})
	assert.NotSame(t, spec.DefaultCaseNormalizer(), p.cases)
	tok, err := p.Token(DataState)
	require.NoError(t, err)
	assert.Equal(t, "fancyShape", tok.TagName)
}
