package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCountsFile(t *testing.T, root string, format Format, name, content string) {
	t.Helper()
	dir := filepath.Join(root, "record_counts", format.ID())
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestRecordCounts(t *testing.T) {
	root := t.TempDir()
	writeCountsFile(t, root, FormatTxt, "de00_counts.csv",
		"\"de0000-00\",21339\n\"de0000-01\",21586\n")
	writeCountsFile(t, root, FormatTxt, "en00_counts.csv",
		"\"en0000-00\",34553\n")

	counts, err := RecordCounts(root, FormatTxt, "")
	require.NoError(t, err)
	assert.Equal(t, []FileCount{
		{File: FileID{Language: LanguageDE, Stream: 0, Subdirectory: 0, File: 0}, Count: 21339},
		{File: FileID{Language: LanguageDE, Stream: 0, Subdirectory: 0, File: 1}, Count: 21586},
		{File: FileID{Language: LanguageEN, Stream: 0, Subdirectory: 0, File: 0}, Count: 34553},
	}, counts)
}

func TestRecordCountsLanguageFilter(t *testing.T) {
	root := t.TempDir()
	writeCountsFile(t, root, FormatTxt, "de00_counts.csv", "\"de0000-00\",100\n")
	writeCountsFile(t, root, FormatTxt, "en00_counts.csv", "\"en0000-00\",200\n")

	counts, err := RecordCounts(root, FormatTxt, LanguageEN)
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, LanguageEN, counts[0].File.Language)
	assert.Equal(t, 200, counts[0].Count)
}

func TestRecordCountsEmpty(t *testing.T) {
	counts, err := RecordCounts(t.TempDir(), FormatTxt, "")
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestRecordCountsBadRow(t *testing.T) {
	root := t.TempDir()
	writeCountsFile(t, root, FormatTxt, "de00_counts.csv", "\"de0000-00\",not-a-number\n")

	_, err := RecordCounts(root, FormatTxt, "")
	assert.Error(t, err)
}
