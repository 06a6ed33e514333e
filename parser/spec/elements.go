package spec

import "strings"

// KnownElements answers the element-name questions the parser needs. Names
// passed in are already proper-cased.
type KnownElements interface {
	IsVoid(name string) bool
	IsKnownSVG(name string) bool
	AllTagNames() []string
}

var knownHTMLElementNames = strings.Fields(`a abbr acronym address applet area article aside audio
b base basefont bdi bdo big blink blockquote body br button canvas caption center cite code col
colgroup command data datagrid datalist dd del details dfn dir div dl dt em embed eventsource
fieldset figcaption figure font footer form frame frameset h1 h2 h3 h4 h5 h6 head header hgroup
hr html i iframe img input ins isindex kbd keygen label legend li link main map mark menu meta
meter nav noframes noscript object ol optgroup option output p param pre progress q rp rt ruby s
samp script section select small source span strike strong style sub summary sup table tbody td
textarea tfoot th thead time title tr track tt u ul var video wbr`)

var knownSVGElementNames = strings.Fields(`altGlyph altGlyphDef altGlyphItem animate
animateColor animateMotion animateTransform circle clipPath color-profile cursor defs desc ellipse
feBlend feColorMatrix feComponentTransfer feComposite feConvolveMatrix feDiffuseLighting
feDisplacementMap feDistantLight feFlood feFuncA feFuncB feFuncG feFuncR feGaussianBlur feImage
feMerge feMergeNode feMorphology feOffset fePointLight feSpecularLighting feSpotLight feTile
feTurbulence filter font font-face font-face-format font-face-name font-face-src font-face-uri
foreignObject g glyph glyphRef hkern image line linearGradient marker mask metadata
missing-glyph path pattern polygon polyline radialGradient rect set stop style svg switch symbol
text textPath title tref tspan use view vkern`)

var voidElementNames = strings.Fields(`area base br col command embed hr img input keygen link
meta param source track wbr`)

type knownElements struct {
	all  []string
	void map[string]bool
	svg  map[string]bool
}

func (k *knownElements) IsVoid(name string) bool     { return k.void[name] }
func (k *knownElements) IsKnownSVG(name string) bool { return k.svg[name] }
func (k *knownElements) AllTagNames() []string {
	return append([]string(nil), k.all...)
}

func newSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

var defaultKnownElements = func() *knownElements {
	all := make([]string, 0, len(knownHTMLElementNames)+len(knownSVGElementNames))
	all = append(all, knownHTMLElementNames...)
	all = append(all, knownSVGElementNames...)
	return &knownElements{
		all:  all,
		void: newSet(voidElementNames),
		svg:  newSet(knownSVGElementNames),
	}
}()

// DefaultKnownElements returns the HTML and SVG element sets the parser uses
// when the caller does not supply its own.
func DefaultKnownElements() KnownElements {
	return defaultKnownElements
}

// NewKnownElements builds a KnownElements from explicit name lists. SVG
// names keep their camel case; void names must be lower case.
func NewKnownElements(html, svg, void []string) KnownElements {
	all := make([]string, 0, len(html)+len(svg))
	all = append(all, html...)
	all = append(all, svg...)
	return &knownElements{
		all:  all,
		void: newSet(void),
		svg:  newSet(svg),
	}
}
