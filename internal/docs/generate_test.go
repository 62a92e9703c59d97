package docs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webis-de/clueweb22/internal/embedded"
	"github.com/webis-de/clueweb22/pkg/bibtex"
	"github.com/webis-de/clueweb22/pkg/catalog"
)

func TestPageName(t *testing.T) {
	assert.Equal(t, "clueweb22.md", PageName(catalog.Root))
	assert.Equal(t, "clueweb22-b.md", PageName("b"))
	assert.Equal(t, "clueweb22-l-de.md", PageName("l/de"))
	assert.Equal(t, "clueweb22-b-as-a.md", PageName("b/as-a"))
}

func TestPageTitle(t *testing.T) {
	assert.Equal(t, "ClueWeb22",
		PageTitle(catalog.Descriptor{ID: catalog.Root, PrettyName: "ClueWeb22"}))
	assert.Equal(t, "ClueWeb22 B", PageTitle(catalog.Descriptor{ID: "b"}))
	assert.Equal(t, "ClueWeb22 L De", PageTitle(catalog.Descriptor{ID: "l/de"}))
	assert.Equal(t, "ClueWeb22 L Other Languages",
		PageTitle(catalog.Descriptor{ID: "l/other-languages"}))
}

func TestRenderPage(t *testing.T) {
	cat, err := catalog.New(catalog.WithEmbedded())
	require.NoError(t, err)
	bib, err := bibtex.Load(embedded.FS, "catalog/bibliography.bib")
	require.NoError(t, err)

	descriptor, err := cat.Dataset("b/de")
	require.NoError(t, err)

	page, err := RenderPage(descriptor, bib)
	require.NoError(t, err)
	assert.Contains(t, page, "# ClueWeb22 B De")
	assert.Contains(t, page, "## Access")
}

func TestGenerate(t *testing.T) {
	cat, err := catalog.New(catalog.WithEmbedded())
	require.NoError(t, err)
	bib, err := bibtex.Load(embedded.FS, "catalog/bibliography.bib")
	require.NoError(t, err)

	outputDir := t.TempDir()
	generator := New(WithOutputDir(outputDir))
	require.NoError(t, generator.Generate(context.Background(), cat, bib))

	index, err := os.ReadFile(filepath.Join(outputDir, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "# ClueWeb22")
	assert.Contains(t, string(index), "clueweb22-b-as-a.md")

	page, err := os.ReadFile(filepath.Join(outputDir, "datasets", "clueweb22.md"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "```bibtex")
	assert.Contains(t, string(page), "Overwijk2022ClueWeb22")

	entries, err := os.ReadDir(filepath.Join(outputDir, "datasets"))
	require.NoError(t, err)
	assert.Len(t, entries, cat.Len(), "one page per dataset")
}
