package variantkey

import "strconv"

// Variant is a single genomic variant. Position is 1-based.
type Variant struct {
	Chromosome string
	Position   uint32
	Ref        string
	Alt        string
}

// Key encodes v. See Encode.
func (v Variant) Key() (VariantKey, error) {
	return Encode(v.Chromosome, v.Position, v.Ref, v.Alt)
}

// String formats v as CHROM-POS-REF-ALT.
func (v Variant) String() string {
	return v.Chromosome + "-" + strconv.FormatUint(uint64(v.Position), 10) + "-" + v.Ref + "-" + v.Alt
}
