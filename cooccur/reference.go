package cooccur

import (
	"bytes"
	"context"
	"io"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/sammysheep/convergraph/encoding/fasta"
)

// LoadReference reads the reference sequence that defines the alignment
// coordinate system. A file whose content opens with '>' is parsed as
// FASTA and the first record is used; anything else is raw text holding a
// single, possibly line-wrapped sequence. Compressed files are recognized
// by extension. The returned bytes are used verbatim, gaps included.
func LoadReference(ctx context.Context, path string) ([]byte, error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(err, "opening reference:", path)
	}
	var r io.Reader = in.Reader(ctx)
	if u := compress.NewReaderPath(r, in.Name()); u != nil {
		r = u
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.E(err, "reading reference:", path)
	}
	if err := in.Close(ctx); err != nil {
		return nil, errors.E(err, "closing reference:", path)
	}
	ref, err := parseReference(data)
	if err != nil {
		return nil, errors.E(err, "parsing reference:", path)
	}
	return ref, nil
}

func parseReference(data []byte) ([]byte, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("reference sequence is empty")
	}
	if data[0] == '>' {
		fa, err := fasta.New(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		// The first record defines the coordinate system.
		seq := fa.Seq(0).Data
		if len(seq) == 0 {
			return nil, errors.New("reference sequence is empty")
		}
		return seq, nil
	}
	// Raw text: one sequence, possibly line-wrapped. Whitespace is not
	// residue data.
	var ref []byte
	for _, chunk := range bytes.Fields(data) {
		ref = append(ref, chunk...)
	}
	return ref, nil
}
