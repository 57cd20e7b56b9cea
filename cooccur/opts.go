package cooccur

import "github.com/grailbio/base/errors"

// Opts holds the run parameters.
type Opts struct {
	// ReferencePath locates the reference sequence (raw text or FASTA).
	// Required.
	ReferencePath string
	// MinSupport is the smallest co-occurrence count an edge needs to
	// survive pruning.
	MinSupport int
	// MinFrequency is the smallest co-occurrence frequency (edge weight
	// over total sequence count) an edge needs to survive pruning.
	MinFrequency float64
	// ConservationThreshold is the majority-residue frequency at or above
	// which an alignment position counts as conserved. Positions below it
	// are analyzed for substitutions.
	ConservationThreshold float64
	// HasHeader marks the first input row as a header naming the columns.
	HasHeader bool
	// Parallelism caps the number of concurrent extraction jobs;
	// 0 or less means runtime.NumCPU().
	Parallelism int
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	MinSupport:            4,    // -minimum-coocurrence-support
	MinFrequency:          0.10, // -minimum-cooccurrence-frequency
	ConservationThreshold: 0.97, // -conservation-threshold
	HasHeader:             false,
	Parallelism:           0,
}

// Validate reports the first configuration problem found, before any
// processing starts.
func (o *Opts) Validate() error {
	if o.ReferencePath == "" {
		return errors.New("a reference file is required")
	}
	if o.MinSupport < 1 {
		return errors.New("minimum co-occurrence support must be at least 1")
	}
	if o.MinFrequency < 0 || o.MinFrequency > 1 {
		return errors.New("minimum co-occurrence frequency must be within [0, 1]")
	}
	if o.ConservationThreshold <= 0 || o.ConservationThreshold > 1 {
		return errors.New("conservation threshold must be within (0, 1]")
	}
	return nil
}
