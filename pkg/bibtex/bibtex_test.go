package bibtex

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webis-de/clueweb22/internal/embedded"
	"github.com/webis-de/clueweb22/pkg/errors"
)

const sample = `
% Comment between entries is ignored.
@inproceedings{Overwijk2022ClueWeb22,
  author = {Arnold Overwijk and Chenyan Xiong and Jamie Callan},
  title  = {ClueWeb22: 10 Billion Web Documents with Rich Information},
  year   = {2022},
}

@article{Second2023,
  title = {Nested {Braces} {are {fine}}},
}
`

func TestParse(t *testing.T) {
	bib, err := Parse(sample)
	require.NoError(t, err)

	assert.Equal(t, []string{"Overwijk2022ClueWeb22", "Second2023"}, bib.Keys())
	assert.Equal(t, 2, bib.Len())

	entry, err := bib.Entry("Overwijk2022ClueWeb22")
	require.NoError(t, err)
	assert.Equal(t, "inproceedings", entry.Kind)
	assert.Contains(t, entry.Source, "Arnold Overwijk")
	assert.True(t, len(entry.Source) > 0 && entry.Source[0] == '@')
}

func TestParseNestedBraces(t *testing.T) {
	bib, err := Parse(sample)
	require.NoError(t, err)

	entry, err := bib.Entry("Second2023")
	require.NoError(t, err)
	assert.Contains(t, entry.Source, "{are {fine}}")
	assert.Equal(t, "}", entry.Source[len(entry.Source)-1:])
}

func TestResolveOrder(t *testing.T) {
	bib, err := Parse(sample)
	require.NoError(t, err)

	entries, err := bib.Resolve([]string{"Second2023", "Overwijk2022ClueWeb22"})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Second2023", entries[0].Key)
	assert.Equal(t, "Overwijk2022ClueWeb22", entries[1].Key)
}

func TestResolveUnknownKey(t *testing.T) {
	bib, err := Parse(sample)
	require.NoError(t, err)

	_, err = bib.Resolve([]string{"Overwijk2022ClueWeb22", "Missing2024"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unbalanced", "@article{key, title = {x}"},
		{"no key", "@article{}"},
		{"empty key", "@article{ , title = {x}}"},
		{"duplicate key", "@article{a, x = {1}}\n@article{a, x = {2}}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			assert.Error(t, err)
		})
	}
}

func TestLoadEmbeddedBibliography(t *testing.T) {
	sub, err := fs.Sub(embedded.FS, "catalog")
	require.NoError(t, err)

	bib, err := Load(sub, "bibliography.bib")
	require.NoError(t, err)

	entry, err := bib.Entry("Overwijk2022ClueWeb22")
	require.NoError(t, err)
	assert.Equal(t, "inproceedings", entry.Kind)
}
