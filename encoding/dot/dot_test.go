package dot_test

import (
	"bytes"
	"testing"

	"github.com/sammysheep/convergraph/encoding/dot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := dot.NewWriter(&buf)
	assert.Equal(t, 0, w.Node("D614G"))
	assert.Equal(t, 1, w.Node("A222V"))
	w.Edge("D614G", "A222V", 5)
	require.NoError(t, w.Close())

	want := `graph {
    0 [ label = "D614G" ]
    1 [ label = "A222V" ]
    0 -- 1 [ weight = 5 ]
}
`
	assert.Equal(t, want, buf.String())
}

func TestWriterNodeDedup(t *testing.T) {
	var buf bytes.Buffer
	w := dot.NewWriter(&buf)
	assert.Equal(t, 0, w.Node("D614G"))
	// A repeated label keeps its id and emits nothing new.
	assert.Equal(t, 0, w.Node("D614G"))
	require.NoError(t, w.Close())
	assert.Equal(t, "graph {\n    0 [ label = \"D614G\" ]\n}\n", buf.String())
}

func TestWriterEdgeAddsNodes(t *testing.T) {
	var buf bytes.Buffer
	w := dot.NewWriter(&buf)
	w.Edge("Q21*", "S13-", 2)
	require.NoError(t, w.Close())

	want := `graph {
    0 [ label = "Q21*" ]
    1 [ label = "S13-" ]
    0 -- 1 [ weight = 2 ]
}
`
	assert.Equal(t, want, buf.String())
}

func TestWriterEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := dot.NewWriter(&buf)
	require.NoError(t, w.Close())
	assert.Equal(t, "graph {\n}\n", buf.String())
}

type failWriter struct{ err error }

func (f *failWriter) Write(p []byte) (int, error) { return 0, f.err }

func TestWriterLatchesError(t *testing.T) {
	w := dot.NewWriter(&failWriter{err: assert.AnError})
	for i := 0; i < 10000; i++ { // overflow the bufio buffer
		w.Node("D614G")
		w.Edge("D614G", "A222V", 1)
	}
	assert.Error(t, w.Close())
}
