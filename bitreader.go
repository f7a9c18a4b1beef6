package variantkey

import (
	"io"
)

// keyBits is the width of a VariantKey.
const keyBits = 64

// bitReader reads fixed-width fields out of a VariantKey, most significant
// bit first.
type bitReader struct {
	value  uint64
	offset uint // bits consumed so far
}

func newBitReader(v VariantKey) *bitReader {
	return &bitReader{value: uint64(v)}
}

// Remaining is the number of unread bits.
func (r *bitReader) Remaining() uint {
	return keyBits - r.offset
}

func (r *bitReader) ReadBit() (bool, error) {
	if r.offset >= keyBits {
		return false, io.EOF
	}
	bit := r.value&(1<<(keyBits-1-r.offset)) != 0
	r.offset++
	return bit, nil
}

// ReadUint reads the next nbits as an unsigned integer. If fewer than nbits
// remain the reader is exhausted and io.ErrUnexpectedEOF is returned.
func (r *bitReader) ReadUint(nbits uint) (uint64, error) {
	if nbits == 0 {
		return 0, nil
	}
	if nbits > r.Remaining() {
		r.offset = keyBits
		return 0, io.ErrUnexpectedEOF
	}
	shift := keyBits - r.offset - nbits
	r.offset += nbits
	return (r.value >> shift) & (1<<nbits - 1), nil
}

// Skip discards the next nbits, with the same overrun behavior as ReadUint.
func (r *bitReader) Skip(nbits uint) error {
	if nbits > r.Remaining() {
		r.offset = keyBits
		return io.ErrUnexpectedEOF
	}
	r.offset += nbits
	return nil
}
