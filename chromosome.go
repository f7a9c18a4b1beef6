package variantkey

import "strconv"

// Chromosome codes stored in the top 5 bits of a VariantKey. Autosomes 1-22
// are stored as their number.
const (
	ChromUnknown uint8 = 0
	ChromX       uint8 = 23
	ChromY       uint8 = 24
	ChromMT      uint8 = 25

	maxAutosome = 22
)

// EncodeChromosome returns the key code for a chromosome name. Names outside
// of 1-22, X, Y, M and MT map to ChromUnknown.
func EncodeChromosome(chrom string) uint8 {
	switch chrom {
	case "X":
		return ChromX
	case "Y":
		return ChromY
	case "M", "MT":
		return ChromMT
	}

	n, err := strconv.ParseUint(chrom, 10, 8)
	if err != nil || n < 1 || n > maxAutosome {
		return ChromUnknown
	}
	// Only the canonical spelling; "01" or "+1" are not chromosome names.
	if strconv.FormatUint(n, 10) != chrom {
		return ChromUnknown
	}
	return uint8(n)
}

// Chromosome takes the chromosome code from a key and returns its standard
// string translation.
func Chromosome(code uint8) string {
	chromosome := "NA"
	switch {
	case code >= 1 && code <= maxAutosome:
		chromosome = strconv.Itoa(int(code))
	case code == ChromX:
		chromosome = "X"
	case code == ChromY:
		chromosome = "Y"
	case code == ChromMT:
		chromosome = "MT"
	}

	return chromosome
}
