package cooccur

import (
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/tsv"
)

// Record represents one row of the tab-delimited input. Only AaAln feeds
// the analysis; the remaining columns ride along for callers that want
// them.
type Record struct {
	CdsID            string `tsv:"cds_id"`             // coding-sequence identifier
	Accession        string `tsv:"accession"`          // accession of the earliest carrier
	DateFirstSeen    string `tsv:"date_first_seen"`    // date the variant was first observed
	StrainCount      string `tsv:"strain_count"`       // number of strains carrying the variant
	CountryFirstSeen string `tsv:"country_first_seen"` // country of first observation
	AaAln            string `tsv:"aa_aln"`             // aligned amino-acid sequence
	CdsAln           string `tsv:"cds_aln"`            // aligned coding sequence
}

// ReadRecords reads every record from r. With hasHeader set, the first row
// must name all seven columns and column order is free; otherwise columns
// fill Record fields positionally. A malformed row aborts the whole read,
// since silently dropped records would skew the conservation statistics.
func ReadRecords(r io.Reader, hasHeader bool) ([]Record, error) {
	tsvReader := tsv.NewReader(r)
	if hasHeader {
		tsvReader.HasHeaderRow = true
		tsvReader.UseHeaderNames = true
	}
	var recs []Record
	for {
		var rec Record
		if err := tsvReader.Read(&rec); err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.E(err, "reading input record:", len(recs)+1)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// Alignments returns the aligned amino-acid sequences of recs as raw
// bytes, in record order.
func Alignments(recs []Record) [][]byte {
	seqs := make([][]byte, len(recs))
	for i := range recs {
		seqs[i] = []byte(recs[i].AaAln)
	}
	return seqs
}
