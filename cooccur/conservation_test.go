package cooccur

import (
	"testing"

	"github.com/grailbio/testutil/expect"
	"github.com/grailbio/testutil/h"
)

func seqset(ss ...string) [][]byte {
	seqs := make([][]byte, len(ss))
	for i, s := range ss {
		seqs[i] = []byte(s)
	}
	return seqs
}

func TestCountTableDepth(t *testing.T) {
	table := NewCountTable(seqset("MAD", "MAE", "MA", "M"))
	expect.EQ(t, table.Len(), 3)
	// Column depth equals the number of sequences long enough to reach it.
	expect.EQ(t, table.Depth(0), 4)
	expect.EQ(t, table.Depth(1), 3)
	expect.EQ(t, table.Depth(2), 2)
}

func TestCountTableCaseFold(t *testing.T) {
	table := NewCountTable(seqset("d", "D"))
	sites, reports := table.VariableSites(0.97)
	// Both spellings land in the same bin, so the column is conserved.
	expect.EQ(t, len(sites), 0)
	expect.EQ(t, len(reports), 0)
}

func TestVariableSites(t *testing.T) {
	// Position 2 splits D:2 E:2; positions 0 and 1 are fully conserved.
	table := NewCountTable(seqset("MAD", "MAE", "MAE", "MAD"))
	sites, reports := table.VariableSites(0.97)
	expect.That(t, sites, h.ElementsAre(2))
	expect.EQ(t, len(reports), 1)
	expect.EQ(t, reports[0].Pos, 2)
	// The D/E tie resolves to the first-seen bin.
	expect.EQ(t, reports[0].Major, byte('D'))
	expect.EQ(t, reports[0].Freq, 0.5)
	expect.EQ(t, reports[0].Depth, 4)
}

func TestVariableSitesThresholdBoundary(t *testing.T) {
	// freq == threshold counts as conserved; only freq < threshold is
	// variable.
	table := NewCountTable(seqset("A", "A", "A", "B"))
	sites, _ := table.VariableSites(0.75)
	expect.EQ(t, len(sites), 0)
	sites, _ = table.VariableSites(0.76)
	expect.That(t, sites, h.ElementsAre(0))
}

func TestVariableSitesSpecialBins(t *testing.T) {
	table := NewCountTable(seqset("-", "-", "*", "X"))
	sites, reports := table.VariableSites(0.97)
	expect.That(t, sites, h.ElementsAre(0))
	expect.EQ(t, reports[0].Major, byte('-'))
	expect.EQ(t, reports[0].Freq, 0.5)
	expect.EQ(t, reports[0].Depth, 4)

	// Letter bins come before the specials, so a letter wins a tie with a
	// gap.
	table = NewCountTable(seqset("-", "A"))
	_, reports = table.VariableSites(0.97)
	expect.EQ(t, len(reports), 1)
	expect.EQ(t, reports[0].Major, byte('A'))
}

func TestVariableSitesSkipsUncovered(t *testing.T) {
	// A column nothing covers is neither conserved nor variable.
	table := &CountTable{counts: make([][AlphaLen]uint32, 3)}
	sites, reports := table.VariableSites(0.97)
	expect.EQ(t, len(sites), 0)
	expect.EQ(t, len(reports), 0)
}

func TestVariableSitesAscending(t *testing.T) {
	table := NewCountTable(seqset("AAAA", "CACA", "AAAA", "GAGA"))
	sites, _ := table.VariableSites(0.97)
	expect.That(t, sites, h.ElementsAre(0, 2))
}
