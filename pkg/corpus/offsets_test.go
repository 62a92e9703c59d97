package corpus

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOffsets(t *testing.T) {
	name := filepath.Join(t.TempDir(), "en0000-00.offset")
	require.NoError(t, os.WriteFile(name,
		[]byte("0000000000\n0000000421\n0000000842\n"), 0o644))

	offsets, err := ReadOffsets(name)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 421, 842}, offsets)
}

// The published offset file ja0009-57.warc.offset is missing the line break
// between its two last offsets.
func TestReadOffsetsMissingLineBreak(t *testing.T) {
	name := filepath.Join(t.TempDir(), "ja0009-57.warc.offset")
	require.NoError(t, os.WriteFile(name,
		[]byte("0000000000\n00000004210000000842\n"), 0o644))

	offsets, err := ReadOffsets(name)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 421, 842}, offsets)
}

func TestReadOffsetsBadLine(t *testing.T) {
	name := filepath.Join(t.TempDir(), "en0000-00.offset")
	require.NoError(t, os.WriteFile(name, []byte("0000000000\nnot-an-offset\n"), 0o644))

	_, err := ReadOffsets(name)
	assert.Error(t, err)
}

// writeGzipMembers writes each payload as its own gzip member and returns
// the member start offsets.
func writeGzipMembers(t *testing.T, name string, payloads ...string) []int64 {
	t.Helper()
	var buf bytes.Buffer
	var offsets []int64
	for _, payload := range payloads {
		offsets = append(offsets, int64(buf.Len()))
		w := gzip.NewWriter(&buf)
		_, err := w.Write([]byte(payload))
		require.NoError(t, err)
		require.NoError(t, w.Close())
	}
	require.NoError(t, os.WriteFile(name, buf.Bytes(), 0o644))
	return offsets
}

func TestSelectSections(t *testing.T) {
	name := filepath.Join(t.TempDir(), "en0000-00.json.gz")
	offsets := writeGzipMembers(t, name, "zero\n", "one\n", "two\n", "three\n")

	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()

	sections, err := SelectSections(f, offsets, []int{3, 1})
	require.NoError(t, err)

	gz, err := gzip.NewReader(sections)
	require.NoError(t, err)
	selected, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Equal(t, "one\nthree\n", string(selected),
		"sections decompress in ascending record order")
}

func TestSelectSectionsLastRecord(t *testing.T) {
	name := filepath.Join(t.TempDir(), "en0000-00.json.gz")
	offsets := writeGzipMembers(t, name, "zero\n", "one\n")

	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()

	sections, err := SelectSections(f, offsets, []int{1})
	require.NoError(t, err)

	gz, err := gzip.NewReader(sections)
	require.NoError(t, err)
	selected, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Equal(t, "one\n", string(selected),
		"the last record's section ends at the file size")
}

func TestSelectSectionsOutOfRange(t *testing.T) {
	name := filepath.Join(t.TempDir(), "en0000-00.json.gz")
	offsets := writeGzipMembers(t, name, "zero\n")

	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()

	_, err = SelectSections(f, offsets, []int{1})
	assert.Error(t, err)
	assert.Equal(t,
		fmt.Sprintf("record index 1 out of range for %d offsets", len(offsets)),
		err.Error())
}
