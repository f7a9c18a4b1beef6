// Via github.com/Genomicsplc/variantkey (c/src/variantkey/variantkey.h),
// Copyright (c) 2017-2018 GENOMICS plc, MIT License.

package variantkey

import "math/bits"

// Separator block mixed in between the REF and ALT hashes.
const refAltSeparator = 0x3

// packBlockLen is the number of symbols packed into one 32 bit hash block:
// 6 x 5 bits, with bit 0 left clear.
//
//	[ 01111122 22233333 44444555 55666660 ]
const packBlockLen = 6

// muxHash mixes one packed block k into the running hash h. This is the
// MurmurHash3 32 bit body step.
func muxHash(k, h uint32) uint32 {
	k *= 0xcc9e2d51
	k = bits.RotateLeft32(k, 15)
	k *= 0x1b873593
	h ^= k
	h = bits.RotateLeft32(h, 13)
	return h*5 + 0xe6546b64
}

// encodePackChar maps a symbol to its 5 bit code. Letters map to 1-26
// regardless of case, anything sorting before 'A' maps to 27.
func encodePackChar(c byte) uint32 {
	if c < 'A' {
		return 27
	}
	if c >= 'a' {
		return uint32(c-'a') + 1
	}
	return uint32(c-'A') + 1
}

func packChars(value string) uint32 {
	return encodePackChar(value[5])<<1 ^
		encodePackChar(value[4])<<(1+5) ^
		encodePackChar(value[3])<<(1+5*2) ^
		encodePackChar(value[2])<<(1+5*3) ^
		encodePackChar(value[1])<<(1+5*4) ^
		encodePackChar(value[0])<<(1+5*5)
}

// packCharsTail packs a trailing block of fewer than packBlockLen symbols.
// Symbols keep the lanes they would have in a full block.
func packCharsTail(value string) uint32 {
	var h uint32
	for i := 0; i < len(value) && i < packBlockLen-1; i++ {
		h ^= encodePackChar(value[i]) << (1 + 5*(packBlockLen-1-i))
	}
	return h
}

// hash32 returns the unfinalized 32 bit hash of a nucleotide string.
func hash32(value string) uint32 {
	var h uint32
	for len(value) >= packBlockLen {
		h = muxHash(packChars(value), h)
		value = value[packBlockLen:]
	}
	if len(value) > 0 {
		h = muxHash(packCharsTail(value), h)
	}
	return h
}

// hashRefAlt returns the hashed form of the allele field. The low bit is
// always set; it marks the field as hashed.
func hashRefAlt(ref, alt string) uint32 {
	h := muxHash(hash32(alt), muxHash(refAltSeparator, hash32(ref)))

	// MurmurHash3 finalization mix.
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16

	return h>>1 | 0x1
}
