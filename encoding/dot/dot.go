// Package dot renders undirected weighted graphs as DOT text, the format
// consumed by Graphviz and most graph viewers. Output looks like:
//
//	graph {
//	    0 [ label = "D614G" ]
//	    1 [ label = "A222V" ]
//	    0 -- 1 [ weight = 5 ]
//	}
//
// Edge weights are emitted as first-class weight attributes rather than
// display labels, so downstream tools can read them without parsing label
// text.
package dot

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Writer emits one undirected graph. Nodes receive numeric ids in the
// order they are added; edges reference those ids. Write errors are
// latched: later calls become no-ops and Close reports the first error.
type Writer struct {
	w   *bufio.Writer
	ids map[string]int
	err error
}

// NewWriter starts a graph on w.
func NewWriter(w io.Writer) *Writer {
	dw := &Writer{w: bufio.NewWriter(w), ids: make(map[string]int)}
	dw.printf("graph {\n")
	return dw
}

func (w *Writer) printf(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, args...)
}

// Node adds a node with the given label and returns its numeric id. A
// label already added keeps its id and is not emitted again.
func (w *Writer) Node(label string) int {
	if id, ok := w.ids[label]; ok {
		return id
	}
	id := len(w.ids)
	w.ids[label] = id
	w.printf("    %d [ label = %q ]\n", id, label)
	return id
}

// Edge adds an undirected edge between two node labels carrying the given
// weight. Labels not yet added become nodes first.
func (w *Writer) Edge(a, b string, weight int64) {
	ida := w.Node(a)
	idb := w.Node(b)
	w.printf("    %d -- %d [ weight = %d ]\n", ida, idb, weight)
}

// Close terminates the graph body and flushes buffered output. The Writer
// must not be used afterwards.
func (w *Writer) Close() error {
	w.printf("}\n")
	if w.err == nil {
		w.err = w.w.Flush()
	}
	if w.err != nil {
		return errors.Wrap(w.err, "writing dot graph")
	}
	return nil
}
