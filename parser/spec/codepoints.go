package spec

import "unicode/utf8"

func isNonCharacter(code int) bool {
	if code >= 0xFDD0 && code <= 0xFDEF {
		return true
	}

	// U+xFFFE and U+xFFFF in every plane.
	return code&0xFFFE == 0xFFFE && code <= 0x10FFFF
}

func isC0Control(code int) bool {
	return code >= 0x00 && code <= 0x1F
}

func isControl(code int) bool {
	return isC0Control(code) || (code >= 0x7F && code <= 0x9F)
}

func isSurrogate(code int) bool {
	return code >= 0xD800 && code <= 0xDFFF
}

// IsLegalCodepoint reports whether a numeric character reference may expand
// to cp. Controls other than TAB, LF and FF, surrogates, noncharacters and
// anything from U+10FFFF up are rejected.
func IsLegalCodepoint(cp int) bool {
	switch {
	case cp == 0x09, cp == 0x0A, cp == 0x0C:
		return true
	case isControl(cp):
		return false
	case isSurrogate(cp):
		return false
	case cp >= 0x10FFFF:
		return false
	case isNonCharacter(cp):
		return false
	}
	return true
}

// CodePointToUTF16 encodes cp as one UTF-16 unit, or as a surrogate pair for
// the supplementary planes. Values that are not scalar values encode as nil.
func CodePointToUTF16(cp int) []uint16 {
	switch {
	case cp >= 0 && cp <= 0xD7FF, cp >= 0xE000 && cp <= 0xFFFF:
		return []uint16{uint16(cp)}
	case cp >= 0x10000 && cp <= 0x10FFFF:
		cp -= 0x10000
		high := ((0xFFC00 & cp) >> 10) + 0xD800
		low := (0x3FF & cp) + 0xDC00
		return []uint16{uint16(high), uint16(low)}
	default:
		return nil
	}
}

// CodePointToString is CodePointToUTF16 for Go strings: it returns the UTF-8
// encoding of cp, or "" when cp is not a scalar value.
func CodePointToString(cp int) string {
	if cp < 0 || cp > utf8.MaxRune || isSurrogate(cp) {
		return ""
	}
	return string(rune(cp))
}

// CodePointsToString concatenates CodePointToString over cps.
func CodePointsToString(cps []rune) string {
	buf := make([]byte, 0, len(cps)*utf8.UTFMax)
	for _, cp := range cps {
		buf = append(buf, CodePointToString(int(cp))...)
	}
	return string(buf)
}
