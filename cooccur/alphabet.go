package cooccur

// Residue bins. The 26 letter bins come first so that a letter's bin is its
// offset from 'A'; the three special bins follow.
const (
	BinGap  = 26 // '-', an alignment gap or deletion
	BinStop = 27 // '*', a translation stop
	BinElse = 28 // anything outside [A-Za-z*-]

	// AlphaLen is the total number of residue bins.
	AlphaLen = 29
)

// BinOf maps a residue symbol to its bin. Letters fold case onto the
// canonical bins 0-25.
func BinOf(c byte) uint8 {
	switch {
	case c >= 'A' && c <= 'Z':
		return c - 'A'
	case c >= 'a' && c <= 'z':
		return c - 'a'
	case c == '-':
		return BinGap
	case c == '*':
		return BinStop
	default:
		return BinElse
	}
}

// SymbolOf inverts BinOf onto canonical symbols: bins 0-25 yield 'A'-'Z',
// the gap and stop bins yield their characters, and any other bin yields
// '?'.
func SymbolOf(bin uint8) byte {
	switch {
	case bin < BinGap:
		return 'A' + bin
	case bin == BinGap:
		return '-'
	case bin == BinStop:
		return '*'
	default:
		return '?'
	}
}
