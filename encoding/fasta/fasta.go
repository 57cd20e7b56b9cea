// Package fasta parses FASTA-formatted sequence data. FASTA files hold a
// number of named sequences, each possibly wrapped over several lines:
//
// >P0DTC2 surface glycoprotein
// MFVFLVLLPLVSSQCVNLT
// TRTQLPPAYTNSFTRGVYY
// >ref2
// MADS
//
// A sequence name is the text after '>' up to the first space; anything
// after the space is ignored. Sequence bytes are kept exactly as written,
// so alignment gaps '-' and stops '*' survive parsing, as does case.
package fasta

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// maxLineSize bounds one input line. Some tools write alignment rows
// unwrapped, so single lines can run to megabytes.
const maxLineSize = 1 << 26

// A Seq is one named FASTA record.
type Seq struct {
	Name string
	Data []byte
}

// Fasta holds the parsed records of one FASTA input, in file order.
type Fasta struct {
	seqs  []Seq
	index map[string]int
}

// New reads all FASTA records from r into memory. The input must open with
// a header line and contain at least one record; duplicate sequence names
// are rejected.
func New(r io.Reader) (*Fasta, error) {
	f := &Fasta{index: make(map[string]int)}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, maxLineSize)
	var (
		name string
		data []byte
		open bool
	)
	flush := func() error {
		if _, ok := f.index[name]; ok {
			return errors.Errorf("duplicate sequence name: %s", name)
		}
		f.index[name] = len(f.seqs)
		f.seqs = append(f.seqs, Seq{Name: name, Data: data})
		return nil
	}
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if open {
				if err := flush(); err != nil {
					return nil, err
				}
			}
			name = strings.Split(line[1:], " ")[0]
			if name == "" {
				return nil, errors.New("empty sequence name")
			}
			data = nil
			open = true
			continue
		}
		if !open {
			return nil, errors.Errorf("sequence data before first header: %q", line)
		}
		data = append(data, line...)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "couldn't read FASTA data")
	}
	if !open {
		return nil, errors.New("no sequences found")
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return f, nil
}

// Len returns the number of records.
func (f *Fasta) Len() int { return len(f.seqs) }

// Seq returns the i'th record in file order.
func (f *Fasta) Seq(i int) Seq { return f.seqs[i] }

// Get returns the record with the given name.
func (f *Fasta) Get(name string) (Seq, error) {
	i, ok := f.index[name]
	if !ok {
		return Seq{}, errors.Errorf("sequence not found: %s", name)
	}
	return f.seqs[i], nil
}

// Names returns all record names in file order.
func (f *Fasta) Names() []string {
	names := make([]string, len(f.seqs))
	for i, s := range f.seqs {
		names[i] = s.Name
	}
	return names
}
