package variantkey

import (
	"fmt"
	"strconv"

	"github.com/carbocation/pfx"
)

// VariantKey is a genomic variant packed into 64 bits:
//
//	[ CCCCCPPP PPPPPPPP PPPPPPPP PPPPPPPP PAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA ]
//
// C: chromosome code (5 bits), P: position (28 bits), A: allele field
// (31 bits). The allele field holds either the reversible packing of REF and
// ALT or, when they are too long or not pure ACGT, a hash of them with the
// low bit set.
type VariantKey uint64

const (
	chromBits   = 5
	posBits     = 28
	alleleBits  = 31
	shiftChrom  = posBits + alleleBits
	shiftPos    = alleleBits
	maskChrom   = 1<<chromBits - 1
	maskPos     = 1<<posBits - 1
	maskAlleles = 1<<alleleBits - 1

	// MaxPosition is the largest position that fits in a VariantKey.
	MaxPosition = maskPos
)

// frame packs the three key fields. Positions that do not fit in 28 bits are
// rejected rather than truncated.
func frame(chrom uint8, pos uint32, alleles uint32) (VariantKey, error) {
	if pos > MaxPosition {
		return 0, pfx.Err(fmt.Errorf("%w: %d exceeds %d", ErrPositionOutOfRange, pos, MaxPosition))
	}
	return VariantKey(uint64(chrom&maskChrom)<<shiftChrom |
		uint64(pos)<<shiftPos |
		uint64(alleles&maskAlleles)), nil
}

// unframe splits a key into its fields. Any 64 bit value is accepted.
func unframe(vk VariantKey) (chrom uint8, pos uint32, alleles uint32) {
	chrom = uint8(uint64(vk) >> shiftChrom & maskChrom)
	pos = uint32(uint64(vk) >> shiftPos & maskPos)
	alleles = uint32(uint64(vk) & maskAlleles)
	return chrom, pos, alleles
}

// Encode returns the VariantKey for a variant. Chromosome names outside of
// 1-22, X, Y, M and MT are encoded as ChromUnknown. The only error is
// ErrPositionOutOfRange.
func Encode(chrom string, pos uint32, ref, alt string) (VariantKey, error) {
	return frame(EncodeChromosome(chrom), pos, EncodeRefAlt(ref, alt))
}

// Decode unpacks vk into a Variant. The allele field is always read with the
// compact layout, even when Mode reports ModeHashed, so hashed keys do not
// give back their original alleles. Alleles longer than 10 bases, or that do
// not fit in the field, decode as "?".
func Decode(vk VariantKey) Variant {
	chrom, pos, alleles := unframe(vk)

	r := newBitReader(VariantKey(alleles))
	_ = r.Skip(keyBits - alleleBits)
	ref, alt := decodeRefAlt(r)

	return Variant{
		Chromosome: Chromosome(chrom),
		Position:   pos,
		Ref:        ref,
		Alt:        alt,
	}
}

// Chromosome returns the chromosome code.
func (vk VariantKey) Chromosome() uint8 {
	chrom, _, _ := unframe(vk)
	return chrom
}

// Position returns the position.
func (vk VariantKey) Position() uint32 {
	_, pos, _ := unframe(vk)
	return pos
}

// RefAlt returns the 31 bit allele field.
func (vk VariantKey) RefAlt() uint32 {
	_, _, alleles := unframe(vk)
	return alleles
}

// Mode reports whether the allele field carries the hash flag. Decode does
// not consult it.
func (vk VariantKey) Mode() AlleleMode {
	r := newBitReader(vk)
	_ = r.Skip(keyBits - 1)
	if hashed, _ := r.ReadBit(); hashed {
		return ModeHashed
	}
	return ModeCompact
}

// String returns the decimal form of vk.
func (vk VariantKey) String() string {
	return strconv.FormatUint(uint64(vk), 10)
}

// Hex returns the lowercase hexadecimal form of vk, without a 0x prefix.
func (vk VariantKey) Hex() string {
	return strconv.FormatUint(uint64(vk), 16)
}
