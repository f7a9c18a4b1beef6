package variantkey

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/carbocation/pfx"
)

// variantPattern matches CHROM-POS-REF-ALT, with '-' or ':' separators.
var variantPattern = regexp.MustCompile(
	`^(1|2|3|4|5|6|7|8|9|10|11|12|13|14|15|16|17|18|19|20|21|22|X|Y|M|MT)[-:]([0-9]+)[-:]([ACGT]+)[-:]([ACGT]+)$`)

// ParseVariant parses text such as "1-976157-T-C" or "MT:12345:A:T". The
// chromosome is kept as written. Errors wrap ErrInvalidVariant.
func ParseVariant(s string) (Variant, error) {
	m := variantPattern.FindStringSubmatch(s)
	if m == nil {
		return Variant{}, pfx.Err(fmt.Errorf("%w: %q does not match CHROM-POS-REF-ALT", ErrInvalidVariant, s))
	}

	pos, err := strconv.ParseUint(m[2], 10, 32)
	if err != nil {
		return Variant{}, pfx.Err(fmt.Errorf("%w: %q: position: %v", ErrInvalidVariant, s, err))
	}

	return Variant{
		Chromosome: m[1],
		Position:   uint32(pos),
		Ref:        m[3],
		Alt:        m[4],
	}, nil
}

// ParseKey parses the decimal, or if hex is set hexadecimal, form of a
// VariantKey. A leading 0x is accepted in hexadecimal. Errors wrap
// ErrInvalidKey.
func ParseKey(s string, hex bool) (VariantKey, error) {
	base := 10
	if hex {
		base = 16
		if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
			s = s[2:]
		}
	}

	v, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, pfx.Err(fmt.Errorf("%w: %q: %v", ErrInvalidKey, s, err))
	}
	return VariantKey(v), nil
}
