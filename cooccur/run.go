package cooccur

import (
	"context"
	"io"
	"runtime"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/sammysheep/convergraph/encoding/dot"
)

// Run executes the full pipeline: load the reference, read every record
// from in, find the variable alignment positions, extract each sequence's
// substitutions, accumulate the co-occurrence network, prune it, and write
// the surviving graph as DOT text to out. Per-site diagnostics and
// progress go to the log. The returned Stats describe whatever completed.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts *Opts) (Stats, error) {
	var stats Stats
	if err := opts.Validate(); err != nil {
		return stats, err
	}
	ref, err := LoadReference(ctx, opts.ReferencePath)
	if err != nil {
		return stats, err
	}
	log.Debug.Printf("reference spans %d positions", len(ref))

	recs, err := ReadRecords(in, opts.HasHeader)
	if err != nil {
		return stats, err
	}
	seqs := Alignments(recs)
	stats.Sequences = len(seqs)

	table := NewCountTable(seqs)
	stats.MaxSeqLen = table.Len()
	log.Printf("Data are %d x %d", stats.Sequences, stats.MaxSeqLen)

	sites, reports := table.VariableSites(opts.ConservationThreshold)
	stats.VariableSites = len(sites)
	for _, r := range reports {
		log.Printf("%04d / %c: %.4f (%d)", r.Pos+1, r.Major, r.Freq, r.Depth)
	}

	net, extracted, err := buildNet(seqs, ref, sites, opts.Parallelism)
	if err != nil {
		return stats, err
	}
	stats = stats.Merge(extracted)
	stats.Nodes = net.NodeCount()
	stats.Edges = net.EdgeCount()

	stats.PrunedEdges = net.PruneEdges(opts.MinSupport, opts.MinFrequency, stats.Sequences)
	if stats.PrunedNodes, err = net.PruneIsolated(); err != nil {
		return stats, err
	}
	log.Printf("pruned %d edges and %d isolated nodes; %d nodes and %d edges remain",
		stats.PrunedEdges, stats.PrunedNodes, net.NodeCount(), net.EdgeCount())

	w := dot.NewWriter(out)
	for _, s := range net.Nodes() {
		w.Node(s.Label())
	}
	for _, e := range net.WeightedEdges() {
		w.Edge(e.A.Label(), e.B.Label(), e.Weight)
	}
	if err := w.Close(); err != nil {
		return stats, errors.E(err, "writing output graph")
	}
	return stats, nil
}

// buildNet extracts substitutions for every sequence and accumulates them
// into one network. Extraction is a parallel map over sequence shards with
// one partial network per job; partials are merged afterwards by summing
// edge weights, which keeps the graph free of concurrent mutation.
func buildNet(seqs [][]byte, ref []byte, sites []int, parallelism int) (*Net, Stats, error) {
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	if parallelism > len(seqs) {
		parallelism = len(seqs)
	}
	if parallelism < 1 {
		parallelism = 1
	}
	nets := make([]*Net, parallelism)
	partials := make([]Stats, parallelism)
	err := traverse.Each(parallelism, func(jobIdx int) error {
		startIdx := (jobIdx * len(seqs)) / parallelism
		endIdx := ((jobIdx + 1) * len(seqs)) / parallelism
		net := NewNet()
		var st Stats
		for _, seq := range seqs[startIdx:endIdx] {
			subs := Extract(seq, ref, sites)
			if len(subs) > 0 {
				st.Substitutions += len(subs)
				st.SequencesWithSubs++
			}
			if err := net.Observe(subs); err != nil {
				return err
			}
		}
		nets[jobIdx] = net
		partials[jobIdx] = st
		return nil
	})
	if err != nil {
		return nil, Stats{}, err
	}
	net, stats := nets[0], partials[0]
	for i := 1; i < parallelism; i++ {
		if err := net.Merge(nets[i]); err != nil {
			return nil, stats, err
		}
		stats = stats.Merge(partials[i])
	}
	return net, stats, nil
}
