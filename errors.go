package variantkey

import "errors"

var (
	// ErrInvalidVariant is returned when variant text cannot be parsed.
	ErrInvalidVariant = errors.New("invalid variant")

	// ErrInvalidKey is returned when key text is not an unsigned 64-bit
	// integer in the requested base.
	ErrInvalidKey = errors.New("invalid variant key")

	// ErrPositionOutOfRange is returned when a position does not fit in the
	// 28 bits reserved for it in a VariantKey.
	ErrPositionOutOfRange = errors.New("position out of range")

	// ErrInvalidBase is the panic value used when a base outside of ACGT
	// reaches the compact allele encoder.
	ErrInvalidBase = errors.New("invalid base")
)
