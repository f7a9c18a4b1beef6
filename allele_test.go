package variantkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeRefAlt(t *testing.T) {
	tests := []struct {
		ref, alt string
		want     uint32
	}{
		{"T", "C", 0x08e80000},
		{"A", "G", 0x08900000},
		{"TTTC", "T", 0x20fee000},
		{"ACG", "ACGTACGT", 0x1c0c3636},
		{"acg", "AcGtAcGt", 0x1c0c3636},
		{"ACGTACGTAC", "G", 0x508d8d8c},
		{"", "", 0},
		// Too long or not ACGT: hashed.
		{"AACCATCTGTATTGATGCACTGTCCATGTTT", "A", 0x408cbc69},
		{"A", "ACGTacgtACGT", 0x3f0ad81b},
		{"NNN", "A", 0x5325b625},
		{"ACGT", "N", 0x54d098d9},
	}
	for _, test := range tests {
		got := EncodeRefAlt(test.ref, test.alt)
		assert.Equalf(t, test.want, got, "EncodeRefAlt(%q, %q) = %#x", test.ref, test.alt, got)
	}
}

func TestIsCompact(t *testing.T) {
	tests := []struct {
		ref, alt string
		want     bool
	}{
		{"A", "T", true},
		{"acgt", "ACGT", true},
		{"ACGTACGTAC", "G", true},
		{"ACGTACGTACG", "", true},
		{"ACGTACGTAC", "GT", false},
		{"N", "A", false},
		{"A", "*", false},
		{"A", "<DEL>", false},
	}
	for _, test := range tests {
		assert.Equalf(t, test.want, isCompact(test.ref, test.alt), "isCompact(%q, %q)", test.ref, test.alt)
	}
}

func TestCompactFlagBitClear(t *testing.T) {
	for _, ra := range [][2]string{{"T", "C"}, {"ACGTACGTAC", "T"}, {"TTTTTTTTTTT", ""}, {"", "TTTTTTTTTTT"}} {
		assert.Zero(t, encodeRefAltRev(ra[0], ra[1])&1, "%q/%q", ra[0], ra[1])
	}
}

func TestEncodeBaseRejectsNonACGT(t *testing.T) {
	assert.Panics(t, func() { encodeAllele("ACN") })
	assert.Panics(t, func() { encodeRefAltRev("A", "-") })
}

func decodeField(field uint32) (string, string) {
	r := newBitReader(VariantKey(field))
	_ = r.Skip(keyBits - alleleBits)
	return decodeRefAlt(r)
}

func TestDecodeRefAlt(t *testing.T) {
	tests := []struct {
		field    uint32
		ref, alt string
	}{
		{0x08e80000, "T", "C"},
		{0x20fee000, "TTTC", "T"},
		{0x1c0c3636, "ACG", "ACGTACGT"},
		{0x508d8d8c, "ACGTACGTAC", "G"},
		{0, "", ""},
		// Length 11 is past what the decoder reconstructs.
		{encodeRefAltRev("ACGTACGTACG", ""), "?", ""},
		{encodeRefAltRev("", "ACGTACGTACG"), "", "?"},
		// Hashed fields are read with the compact layout.
		{0x5179a93f, "TTATCCAGCT", "?"},
		{0x408cbc69, "ACGCCTGA", "T"},
		{0x6842610d, "?", ""},
		{maskAlleles, "?", "?"},
	}
	for _, test := range tests {
		ref, alt := decodeField(test.field)
		assert.Equalf(t, test.ref, ref, "ref of %#x", test.field)
		assert.Equalf(t, test.alt, alt, "alt of %#x", test.field)
	}
}

func TestDecodeNeverPanics(t *testing.T) {
	for refLen := uint32(0); refLen < 16; refLen++ {
		for altLen := uint32(0); altLen < 16; altLen++ {
			field := refLen<<shiftRefLen | altLen<<shiftAltLen | 0x7fffff
			assert.NotPanics(t, func() { decodeField(field) })
		}
	}
}
