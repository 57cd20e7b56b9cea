package cooccur

// CountTable tallies residue bins per alignment position across a sequence
// set. Row p holds the AlphaLen-bin histogram for position p.
type CountTable struct {
	counts [][AlphaLen]uint32
}

// NewCountTable builds the table over all sequences. The table spans the
// maximum sequence length; a shorter sequence stops contributing at its own
// length.
func NewCountTable(seqs [][]byte) *CountTable {
	maxLen := 0
	for _, s := range seqs {
		if len(s) > maxLen {
			maxLen = len(s)
		}
	}
	t := &CountTable{counts: make([][AlphaLen]uint32, maxLen)}
	for _, s := range seqs {
		for p := 0; p < len(s); p++ {
			t.counts[p][BinOf(s[p])]++
		}
	}
	return t
}

// Len returns the number of alignment positions the table covers.
func (t *CountTable) Len() int { return len(t.counts) }

// Depth returns the total residue count observed at position p.
func (t *CountTable) Depth(p int) int {
	sum := 0
	for _, n := range t.counts[p] {
		sum += int(n)
	}
	return sum
}

// A SiteReport describes one variable alignment position: its majority
// residue, that residue's frequency, and the column depth the frequency was
// computed over.
type SiteReport struct {
	Pos   int     // 0-based alignment position
	Major byte    // majority residue symbol
	Freq  float64 // majority count over depth
	Depth int     // total residues observed at the position
}

// VariableSites scans positions in ascending order and reports those whose
// majority-residue frequency is below threshold. A frequency equal to the
// threshold is conserved. Positions covered by no sequence are skipped
// outright. A tie for the majority residue resolves to the first-seen bin
// in bin order; the rule is arbitrary but fixed, and callers see it only
// through the reported majority symbol.
func (t *CountTable) VariableSites(threshold float64) ([]int, []SiteReport) {
	var (
		sites   []int
		reports []SiteReport
	)
	for p := range t.counts {
		sum := 0
		maxCount := uint32(0)
		maxBin := -1
		for bin, n := range t.counts[p] {
			sum += int(n)
			if n > maxCount {
				maxCount = n
				maxBin = bin
			}
		}
		if sum == 0 {
			continue
		}
		freq := float64(maxCount) / float64(sum)
		if freq < threshold {
			sites = append(sites, p)
			reports = append(reports, SiteReport{
				Pos:   p,
				Major: SymbolOf(uint8(maxBin)),
				Freq:  freq,
				Depth: sum,
			})
		}
	}
	return sites, reports
}
