package cooccur

// Stats summarizes one run of the pipeline.
type Stats struct {
	// Sequences is the number of input records read.
	Sequences int
	// MaxSeqLen is the longest aligned sequence observed.
	MaxSeqLen int
	// VariableSites is the number of alignment positions below the
	// conservation threshold.
	VariableSites int
	// Substitutions counts substitution events over all sequences.
	Substitutions int
	// SequencesWithSubs is the number of sequences carrying at least one
	// substitution.
	SequencesWithSubs int
	// Nodes and Edges describe the network before pruning.
	Nodes int
	Edges int
	// PrunedEdges and PrunedNodes count what the two pruning passes
	// removed.
	PrunedEdges int
	PrunedNodes int
}

// Merge adds the per-worker counters of the two Stats and returns the
// result. Whole-run fields are left to the caller.
func (s Stats) Merge(o Stats) Stats {
	s.Substitutions += o.Substitutions
	s.SequencesWithSubs += o.SequencesWithSubs
	return s
}
