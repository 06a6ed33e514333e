package spec

import (
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestEntitiesRoundTrip(t *testing.T) {
	require.Len(t, Entities, 2231)
	for name, e := range Entities {
		var units []uint16
		for _, cp := range e.Codepoints {
			units = append(units, CodePointToUTF16(int(cp))...)
		}
		if got := string(utf16.Decode(units)); got != e.Characters {
			t.Errorf("%s: UTF-16 round trip gave %q, want %q", name, got, e.Characters)
		}
		if got := CodePointsToString(e.Codepoints); got != e.Characters {
			t.Errorf("%s: got %q, want %q", name, got, e.Characters)
		}
	}
}

func TestEntitiesAgreeWithNetHTML(t *testing.T) {
	checked := 0
	for name, e := range Entities {
		if !strings.HasSuffix(name, ";") {
			continue
		}
		checked++
		if got := html.UnescapeString(name); got != e.Characters {
			t.Errorf("%s: x/net/html gives %q, table has %q", name, got, e.Characters)
		}
	}
	assert.Greater(t, checked, 2000)
}

func TestEntityNamesByFirstChar(t *testing.T) {
	groups := EntityNamesByFirstChar()

	total := 0
	for first, rests := range groups {
		total += len(rests)
		for i, r := range rests {
			_, ok := Entities["&"+string(first)+r]
			require.True(t, ok, "&%c%s", first, r)
			if i > 0 {
				assert.GreaterOrEqual(t, len(rests[i-1]), len(r), "names must be sorted longest first")
			}
		}
	}
	assert.Equal(t, len(Entities), total)

	n := groups['n']
	assert.Less(t, indexOf(n, "otinva;"), indexOf(n, "ot"))
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

func TestLegacyEntitiesHaveNoSemicolon(t *testing.T) {
	for _, name := range []string{"&amp", "&lt", "&not", "&copy"} {
		_, ok := LookupEntity(name)
		assert.True(t, ok, name)
		assert.False(t, strings.HasSuffix(name, ";"))
	}
	_, ok := LookupEntity("&notin")
	assert.False(t, ok)
}
