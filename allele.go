package variantkey

import (
	"fmt"
	"strings"
)

const (
	// maxCompactLen is the largest combined REF+ALT length that is packed
	// reversibly into the allele field.
	maxCompactLen = 11

	// maxDecodeLen is the largest single allele length the decoder will
	// reconstruct. Longer alleles decode to decodeSentinel.
	maxDecodeLen = 10

	decodeSentinel = "?"

	alleleLenBits = 4
	baseBits      = 2

	shiftRefLen = 27
	shiftAltLen = 23
)

// Allele field layout:
//
//	[ RRRRAAAA BBBBBBBB BBBBBBBB BBBBBB0 ]
//
// R: REF length, A: ALT length, B: REF then ALT bases, 2 bits each,
// MSB-first. Unused low bits are zero, so bit 0 of a compact field is
// always clear.

var baseChars = [4]byte{'A', 'C', 'G', 'T'}

func encodeBase(c byte) uint32 {
	switch c {
	case 'A', 'a':
		return 0
	case 'C', 'c':
		return 1
	case 'G', 'g':
		return 2
	case 'T', 't':
		return 3
	}
	panic(fmt.Errorf("%w %q: must be one of [AaCcGgTt]", ErrInvalidBase, c))
}

// isACGT reports whether allele contains only A, C, G and T in either case.
func isACGT(allele string) bool {
	for i := 0; i < len(allele); i++ {
		switch allele[i] {
		case 'A', 'C', 'G', 'T', 'a', 'c', 'g', 't':
		default:
			return false
		}
	}
	return true
}

// isCompact reports whether ref and alt can be packed reversibly.
func isCompact(ref, alt string) bool {
	return len(ref)+len(alt) <= maxCompactLen && isACGT(ref) && isACGT(alt)
}

func encodeAllele(allele string) uint32 {
	var encoded uint32
	for i := 0; i < len(allele); i++ {
		encoded = encoded<<baseBits | encodeBase(allele[i])
	}
	return encoded
}

// encodeRefAltRev packs ref and alt into the reversible allele field. The
// caller must have checked isCompact.
func encodeRefAltRev(ref, alt string) uint32 {
	refLen := uint32(len(ref))
	altLen := uint32(len(alt))

	var field uint32
	field |= refLen << shiftRefLen
	field |= altLen << shiftAltLen
	field |= encodeAllele(ref) << (shiftAltLen - refLen*baseBits)
	field |= encodeAllele(alt) << (shiftAltLen - (refLen+altLen)*baseBits)
	return field
}

// EncodeRefAlt returns the 31 bit allele field for ref and alt: the
// reversible packing when both alleles are short ACGT strings, and the
// sequence hash otherwise.
func EncodeRefAlt(ref, alt string) uint32 {
	if isCompact(ref, alt) {
		return encodeRefAltRev(ref, alt)
	}
	return hashRefAlt(ref, alt)
}

// decodeRefAlt reads the allele lengths and bases following the current
// position of r, which must sit at the top of the allele field. The field is
// always interpreted with the compact layout.
func decodeRefAlt(r *bitReader) (ref, alt string) {
	refLen, err := r.ReadUint(alleleLenBits)
	if err != nil {
		return decodeSentinel, decodeSentinel
	}
	altLen, err := r.ReadUint(alleleLenBits)
	if err != nil {
		return decodeSentinel, decodeSentinel
	}
	ref = decodeAllele(r, uint(refLen))
	alt = decodeAllele(r, uint(altLen))
	return ref, alt
}

// decodeAllele consumes n bases from r. Lengths above maxDecodeLen, and
// alleles whose lanes run past the end of the key, yield decodeSentinel.
func decodeAllele(r *bitReader, n uint) string {
	switch {
	case n == 0:
		return ""
	case n > maxDecodeLen:
		_ = r.Skip(n * baseBits)
		return decodeSentinel
	}

	var sb strings.Builder
	sb.Grow(int(n))
	for i := uint(0); i < n; i++ {
		b, err := r.ReadUint(baseBits)
		if err != nil {
			return decodeSentinel
		}
		sb.WriteByte(baseChars[b])
	}
	return sb.String()
}
