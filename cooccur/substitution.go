package cooccur

import "fmt"

// A Substitution is one observed residue difference against the reference:
// at 0-based alignment position Pos, the derived residue Der replaces the
// ancestral residue Anc. The value is the node identity in the
// co-occurrence network; two substitutions are the same node iff all three
// fields match.
type Substitution struct {
	Pos int
	Anc byte
	Der byte
}

// Label renders the conventional mutation shorthand with a 1-based
// position, e.g. D614G for reference D replaced by G at alignment position
// 613 (0-based).
func (s Substitution) Label() string {
	return fmt.Sprintf("%c%d%c", s.Anc, s.Pos+1, s.Der)
}

// Less orders substitutions by position, then ancestral residue, then
// derived residue. Network output is emitted in this order.
func (s Substitution) Less(o Substitution) bool {
	if s.Pos != o.Pos {
		return s.Pos < o.Pos
	}
	if s.Anc != o.Anc {
		return s.Anc < o.Anc
	}
	return s.Der < o.Der
}

// Extract reports the substitutions in seq relative to ref at the given
// variable sites, in ascending position order. Each site contributes at
// most one substitution. Sites past the end of either sequence are skipped;
// heterogeneous alignment lengths are a data-quality condition, not an
// error. Residues are compared as raw bytes, so a case difference counts as
// a substitution.
func Extract(seq, ref []byte, sites []int) []Substitution {
	var subs []Substitution
	for _, p := range sites {
		if p >= len(seq) || p >= len(ref) {
			continue
		}
		if ref[p] != seq[p] {
			subs = append(subs, Substitution{Pos: p, Anc: ref[p], Der: seq[p]})
		}
	}
	return subs
}
