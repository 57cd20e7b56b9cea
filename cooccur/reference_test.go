package cooccur

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestParseReferenceRaw(t *testing.T) {
	ref, err := parseReference([]byte("MADSE\n"))
	assert.NoError(t, err)
	expect.EQ(t, string(ref), "MADSE")

	// Line-wrapped raw text is one sequence; gaps and stops are residue
	// data, whitespace is not.
	ref, err = parseReference([]byte("  MAD-S\nE*QL\n"))
	assert.NoError(t, err)
	expect.EQ(t, string(ref), "MAD-SE*QL")
}

func TestParseReferenceFasta(t *testing.T) {
	// The first record defines the coordinate system; later records are
	// ignored.
	ref, err := parseReference([]byte(">ref protein\nMAD-S\nE\n>decoy\nQQQ\n"))
	assert.NoError(t, err)
	expect.EQ(t, string(ref), "MAD-SE")
}

func TestParseReferenceErrors(t *testing.T) {
	_, err := parseReference([]byte("   \n"))
	expect.True(t, err != nil)
	_, err = parseReference([]byte(">ref only a header\n"))
	expect.True(t, err != nil)
}

func TestLoadReference(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	path := filepath.Join(tempDir, "ref.txt")
	assert.NoError(t, os.WriteFile(path, []byte("MADSE\n"), 0644))

	ref, err := LoadReference(vcontext.Background(), path)
	assert.NoError(t, err)
	expect.EQ(t, string(ref), "MADSE")

	_, err = LoadReference(vcontext.Background(), filepath.Join(tempDir, "missing.txt"))
	expect.True(t, err != nil)
}
