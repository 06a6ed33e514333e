package spec

// svgCamelCaseAttributes are attribute names whose DOM API is case sensitive.
// HTML parsers fix up their case, so `<svg viewbox="...">` still gets a
// "viewBox" attribute.
var svgCamelCaseAttributes = []string{
	"attributeName", "attributeType", "baseFrequency", "baseProfile", "calcMode",
	"clipPathUnits", "contentScriptType", "contentStyleType", "diffuseConstant", "edgeMode",
	"externalResourcesRequired", "filterRes", "filterUnits", "glyphRef", "gradientTransform",
	"gradientUnits", "kernelMatrix", "kernelUnitLength", "keyPoints", "keySplines", "keyTimes",
	"lengthAdjust", "limitingConeAngle", "markerHeight", "markerUnits", "markerWidth",
	"maskContentUnits", "maskUnits", "numOctaves", "pathLength", "patternContentUnits",
	"patternTransform", "patternUnits", "pointsAtX", "pointsAtY", "pointsAtZ", "preserveAlpha",
	"preserveAspectRatio", "primitiveUnits", "refX", "refY", "repeatCount", "repeatDur",
	"requiredExtensions", "requiredFeatures", "specularConstant", "specularExponent",
	"spreadMethod", "startOffset", "stdDeviation", "stitchTiles", "surfaceScale",
	"systemLanguage", "tableValues", "targetX", "targetY", "textLength", "viewBox", "viewTarget",
	"xChannelSelector", "yChannelSelector", "zoomAndPan",
}

// ASCIILowerCase lower-cases A-Z only; other bytes pass through.
func ASCIILowerCase(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if c := b[j]; 'A' <= c && c <= 'Z' {
					b[j] = c + 0x20
				}
			}
			return string(b)
		}
	}
	return s
}

func lowerCaseMap(names []string) map[string]string {
	m := make(map[string]string, len(names))
	for _, n := range names {
		m[ASCIILowerCase(n)] = n
	}
	return m
}

// CaseNormalizer maps case-insensitively matched tag and attribute names to
// their canonical spelling.
type CaseNormalizer struct {
	tags  map[string]string
	attrs map[string]string
}

// NewCaseNormalizer builds the tag table from k.AllTagNames().
func NewCaseNormalizer(k KnownElements) *CaseNormalizer {
	return &CaseNormalizer{
		tags:  lowerCaseMap(k.AllTagNames()),
		attrs: lowerCaseMap(svgCamelCaseAttributes),
	}
}

// ProperCaseTagName returns the canonical spelling of name, e.g.
// "FOREIGNOBJECT" becomes "foreignObject". Unknown names are lower-cased.
func (c *CaseNormalizer) ProperCaseTagName(name string) string {
	lowered := ASCIILowerCase(name)
	if proper, ok := c.tags[lowered]; ok {
		return proper
	}
	return lowered
}

// ProperCaseAttributeName is ProperCaseTagName for attribute names.
func (c *CaseNormalizer) ProperCaseAttributeName(name string) string {
	lowered := ASCIILowerCase(name)
	if proper, ok := c.attrs[lowered]; ok {
		return proper
	}
	return lowered
}

var defaultCaseNormalizer = NewCaseNormalizer(DefaultKnownElements())

// DefaultCaseNormalizer returns the normalizer for DefaultKnownElements.
func DefaultCaseNormalizer() *CaseNormalizer {
	return defaultCaseNormalizer
}

// ProperCaseTagName uses the default tables.
func ProperCaseTagName(name string) string {
	return defaultCaseNormalizer.ProperCaseTagName(name)
}

// ProperCaseAttributeName uses the default tables.
func ProperCaseAttributeName(name string) string {
	return defaultCaseNormalizer.ProperCaseAttributeName(name)
}
