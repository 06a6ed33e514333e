package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProperCaseTagName(t *testing.T) {
	tests := map[string]string{
		"DIV":            "div",
		"div":            "div",
		"foreignobject":  "foreignObject",
		"FOREIGNOBJECT":  "foreignObject",
		"lineargradient": "linearGradient",
		"svg:rect":       "svg:rect",
		"my-Widget":      "my-widget",
		"":               "",
	}
	for in, want := range tests {
		assert.Equal(t, want, ProperCaseTagName(in), in)
	}
}

func TestProperCaseAttributeName(t *testing.T) {
	tests := map[string]string{
		"CLASS":    "class",
		"viewbox":  "viewBox",
		"VIEWBOX":  "viewBox",
		"data-Foo": "data-foo",
	}
	for in, want := range tests {
		assert.Equal(t, want, ProperCaseAttributeName(in), in)
	}
}

func TestProperCaseIsIdempotent(t *testing.T) {
	inputs := []string{"DIV", "foreignObject", "FOREIGNOBJECT", "clipPath", "ViewBox", "x", "ÀB", "a\x00B"}
	inputs = append(inputs, DefaultKnownElements().AllTagNames()...)
	for _, in := range inputs {
		once := ProperCaseTagName(in)
		assert.Equal(t, once, ProperCaseTagName(once), in)

		onceAttr := ProperCaseAttributeName(in)
		assert.Equal(t, onceAttr, ProperCaseAttributeName(onceAttr), in)
	}
}

func TestASCIILowerCase(t *testing.T) {
	assert.Equal(t, "abc", ASCIILowerCase("ABC"))
	assert.Equal(t, "aÀb", ASCIILowerCase("AÀB"))
	s := "already"
	assert.Equal(t, s, ASCIILowerCase(s))
}

func TestKnownElements(t *testing.T) {
	k := DefaultKnownElements()
	assert.True(t, k.IsVoid("br"))
	assert.True(t, k.IsVoid("img"))
	assert.False(t, k.IsVoid("div"))
	assert.True(t, k.IsKnownSVG("circle"))
	assert.True(t, k.IsKnownSVG("foreignObject"))
	assert.False(t, k.IsKnownSVG("div"))
	assert.Contains(t, k.AllTagNames(), "textarea")

	names := k.AllTagNames()
	names[0] = "mutated"
	assert.NotEqual(t, "mutated", k.AllTagNames()[0])

	custom := NewKnownElements([]string{"x-a"}, []string{"fooBar"}, []string{"x-a"})
	assert.True(t, custom.IsVoid("x-a"))
	assert.True(t, custom.IsKnownSVG("fooBar"))
	assert.Equal(t, "fooBar", NewCaseNormalizer(custom).ProperCaseTagName("FOOBAR"))
}
