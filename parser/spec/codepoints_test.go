package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLegalCodepoint(t *testing.T) {
	tests := []struct {
		cp   int
		want bool
	}{
		{0x00, false},
		{0x08, false},
		{0x09, true},
		{0x0A, true},
		{0x0B, false},
		{0x0C, true},
		{0x0D, false},
		{0x1F, false},
		{0x20, true},
		{'A', true},
		{0x7F, false},
		{0x9F, false},
		{0xA0, true},
		{0xD7FF, true},
		{0xD800, false},
		{0xDFFF, false},
		{0xE000, true},
		{0xFDD0, false},
		{0xFDEF, false},
		{0xFDF0, true},
		{0xFFFD, true},
		{0xFFFE, false},
		{0xFFFF, false},
		{0x1FFFE, false},
		{0x1F600, true},
		{0x10FFFD, true},
		{0x10FFFF, false},
		{0x110000, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsLegalCodepoint(tt.cp), "%#x", tt.cp)
	}
}

func TestCodePointToUTF16(t *testing.T) {
	assert.Equal(t, []uint16{0x41}, CodePointToUTF16(0x41))
	assert.Equal(t, []uint16{0xFFFD}, CodePointToUTF16(0xFFFD))
	assert.Equal(t, []uint16{0xD83D, 0xDE00}, CodePointToUTF16(0x1F600))
	assert.Equal(t, []uint16{0xDBFF, 0xDFFF}, CodePointToUTF16(0x10FFFF))
	assert.Nil(t, CodePointToUTF16(0xD800))
	assert.Nil(t, CodePointToUTF16(0x110000))
	assert.Nil(t, CodePointToUTF16(-1))
}

func TestCodePointToString(t *testing.T) {
	assert.Equal(t, "A", CodePointToString('A'))
	assert.Equal(t, "\U0001F600", CodePointToString(0x1F600))
	assert.Equal(t, "", CodePointToString(0xDC00))
	assert.Equal(t, "", CodePointToString(0x110000))
	assert.Equal(t, "a\u0338", CodePointsToString([]rune{'a', 0x338}))
}
