package variantkey

// AlleleMode identifies how the allele field of a VariantKey was produced.
type AlleleMode uint8

const (
	ModeCompact AlleleMode = iota
	ModeHashed
)

func (m AlleleMode) String() string {
	switch m {
	case ModeCompact:
		return "Compact"
	case ModeHashed:
		return "Hashed"

	default:
		return "Illegal selection"
	}
}
