package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type charRefTestcase struct {
	in          string
	inAttribute bool
	allowedChar byte
	wantData    string // "" means no reference
	wantCPs     []rune
	wantErr     string
}

var charRefTests = []charRefTestcase{
	{in: "&amp;", wantData: "&amp;", wantCPs: []rune{'&'}},
	{in: "&amp;x", wantData: "&amp;", wantCPs: []rune{'&'}},
	{in: "&notin;", wantData: "&notin;", wantCPs: []rune{0x2209}},
	{in: "&NotNestedGreaterGreater;", wantData: "&NotNestedGreaterGreater;", wantCPs: []rune{0x2AA2, 0x338}},
	{in: "&#65;", wantData: "&#65;", wantCPs: []rune{'A'}},
	{in: "&#x41;", wantData: "&#x41;", wantCPs: []rune{'A'}},
	{in: "&#X0041;", wantData: "&#X0041;", wantCPs: []rune{'A'}},
	{in: "&#0000009;", wantData: "&#0000009;", wantCPs: []rune{'\t'}},
	{in: "&#x1F600;", wantData: "&#x1F600;", wantCPs: []rune{0x1F600}},
	{in: "&", wantData: ""},
	{in: "& b", wantData: ""},
	{in: "&<", wantData: ""},
	{in: "&&", wantData: ""},
	{in: "&xyzzy", wantData: ""},
	{in: "&\"", inAttribute: true, allowedChar: '"', wantData: ""},
	{in: "&>", inAttribute: true, allowedChar: '>', wantData: ""},
	{in: "&ampx", inAttribute: true, allowedChar: '"', wantData: ""},
	{in: "&ltc=x", inAttribute: true, allowedChar: '"', wantData: ""},
	{in: "&lt;c", inAttribute: true, allowedChar: '"', wantData: "&lt;", wantCPs: []rune{'<'}},
	{in: "&amp", wantErr: "Character reference requires semicolon: &amp"},
	{in: "&lt=x", wantErr: "Character reference requires semicolon: &lt"},
	{in: "&lt=x", inAttribute: true, allowedChar: '"', wantErr: "Character reference requires semicolon: &lt"},
	{in: "&notit;", wantErr: "Character reference requires semicolon: &not"},
	{in: "&foo;", wantErr: "Invalid character reference: &foo;"},
	{in: "&#;", wantErr: "Invalid numerical character reference starting with &#"},
	{in: "&#x;", wantErr: "Invalid numerical character reference starting with &#"},
	{in: "&#65", wantErr: "Invalid numerical character reference starting with &#"},
	{in: "&#0;", wantErr: "Illegal codepoint in numerical character reference: &#0;"},
	{in: "&#xD800;", wantErr: "Illegal codepoint in numerical character reference: &#xD800;"},
	{in: "&#xFFFE;", wantErr: "Illegal codepoint in numerical character reference: &#xFFFE;"},
	{in: "&#x110000;", wantErr: "Illegal codepoint in numerical character reference: &#x110000;"},
	{in: "&#x1234567;", wantErr: "Numerical character reference too large: 0x1234567"},
	{in: "&#12345678;", wantErr: "Numerical character reference too large: 12345678"},
}

func TestGetCharacterReference(t *testing.T) {
	for _, tt := range charRefTests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			s := NewScanner(tt.in)

			var tok *Token
			err := recoverParseError(func() {
				tok = getCharacterReference(s, tt.inAttribute, tt.allowedChar)
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				pe, ok := asParseError(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantErr, pe.Message)
				return
			}

			require.NoError(t, err)
			if tt.wantData == "" {
				assert.Nil(t, tok)
				assert.Equal(t, 0, s.Pos, "a rejected reference must not consume input")
				return
			}

			require.NotNil(t, tok)
			assert.Equal(t, CharRefToken, tok.TokenType)
			assert.Equal(t, tt.wantData, tok.Data)
			assert.Equal(t, tt.wantCPs, tok.CodePoints)
			assert.Equal(t, len(tt.wantData), s.Pos)
		})
	}
}

func TestNamedEntityMatcherPrefersLongest(t *testing.T) {
	s := NewScanner("&notinva;")
	m := namedEntityMatcher('n')
	require.NotNil(t, m)
	assert.Equal(t, "&notinva;", m(s))

	assert.Nil(t, namedEntityMatcher('1'))
}
