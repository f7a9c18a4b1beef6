package variantkey

import (
	"io"
	"testing"
)

func TestBitReader(t *testing.T) {
	var target VariantKey = 0xA000000000000003

	var val uint64
	br := newBitReader(target)
	for i := 0; i < keyBits; i++ {
		truth, err := br.ReadBit()
		if err != nil {
			t.Fatal(err)
		}
		val <<= 1
		if truth {
			val |= 1
		}
	}

	if uint64(target) != val {
		t.Errorf("Got %#x, expected %#x", val, uint64(target))
	}

	if _, err := br.ReadBit(); err != io.EOF {
		t.Errorf("Got %v after the last bit, expected io.EOF", err)
	}
}

func TestBitReadUint(t *testing.T) {
	br := newBitReader(0x0807728e88e80000)

	for _, field := range []struct {
		nbits uint
		want  uint64
	}{
		{5, 1},
		{28, 976157},
		{4, 1},
		{4, 1},
		{2, 3},
		{2, 1},
		{0, 0},
		{19, 0},
	} {
		val, err := br.ReadUint(field.nbits)
		if err != nil {
			t.Fatal(err)
		}
		if val != field.want {
			t.Errorf("Got %d, expected %d", val, field.want)
		}
	}

	if br.Remaining() != 0 {
		t.Errorf("Got %d bits remaining, expected 0", br.Remaining())
	}
}

func TestBitReadUintFullWidth(t *testing.T) {
	br := newBitReader(0xffffffffffffffff)
	val, err := br.ReadUint(keyBits)
	if err != nil {
		t.Fatal(err)
	}
	if val != 0xffffffffffffffff {
		t.Errorf("Got %#x, expected all bits set", val)
	}
}

func TestBitReadUintOverrun(t *testing.T) {
	br := newBitReader(0xffffffffffffffff)
	if err := br.Skip(60); err != nil {
		t.Fatal(err)
	}
	if _, err := br.ReadUint(6); err != io.ErrUnexpectedEOF {
		t.Errorf("Got %v, expected io.ErrUnexpectedEOF", err)
	}
	// An overrun exhausts the reader.
	if _, err := br.ReadUint(2); err != io.ErrUnexpectedEOF {
		t.Errorf("Got %v, expected io.ErrUnexpectedEOF", err)
	}
	if err := br.Skip(1); err != io.ErrUnexpectedEOF {
		t.Errorf("Got %v, expected io.ErrUnexpectedEOF", err)
	}
}
