// Package docs generates the markdown documentation pages for the dataset
// catalog: one index page plus one page per dataset, with resolved citations.
package docs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	md "github.com/nao1215/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/webis-de/clueweb22/pkg/bibtex"
	"github.com/webis-de/clueweb22/pkg/catalog"
	"github.com/webis-de/clueweb22/pkg/logging"
)

// dirPermissions is the mode for created documentation directories.
const dirPermissions = 0o755

// titleCaser renders dataset tags as headings, e.g. "other-languages" as
// "Other Languages".
var titleCaser = cases.Title(language.English)

// Generator renders catalog documentation into an output directory.
type Generator struct {
	outputDir string
}

// Option is a functional option for configuring the Generator.
type Option func(*Generator)

// WithOutputDir sets the output directory for generated documentation.
func WithOutputDir(dir string) Option {
	return func(g *Generator) {
		g.outputDir = dir
	}
}

// New creates a new documentation generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		outputDir: "./docs",
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders the index page and one page per dataset.
func (g *Generator) Generate(ctx context.Context, cat catalog.Reader, bib *bibtex.Bibliography) error {
	logger := logging.FromContext(ctx)

	datasetsDir := filepath.Join(g.outputDir, "datasets")
	if err := os.MkdirAll(datasetsDir, dirPermissions); err != nil {
		return fmt.Errorf("creating directory %s: %w", datasetsDir, err)
	}

	if err := g.generateIndex(cat); err != nil {
		return fmt.Errorf("generating index: %w", err)
	}

	for _, id := range cat.IDs() {
		descriptor, err := cat.Dataset(id)
		if err != nil {
			return err
		}
		if err := g.generateDataset(datasetsDir, descriptor, bib); err != nil {
			return fmt.Errorf("generating page for %s: %w", id, err)
		}
		logger.Debug().Str("dataset_id", string(id)).Msg("generated dataset page")
	}

	logger.Info().Int("datasets", cat.Len()).Str("dir", g.outputDir).Msg("documentation generated")
	return nil
}

// generateIndex renders the catalog index page with one table row per
// dataset.
func (g *Generator) generateIndex(cat catalog.Reader) error {
	root, err := cat.Dataset(catalog.Root)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(g.outputDir, "README.md"))
	if err != nil {
		return fmt.Errorf("creating index file: %w", err)
	}
	defer f.Close()

	rows := make([][]string, 0, cat.Len())
	for _, descriptor := range cat.List() {
		rows = append(rows, []string{
			md.Code(string(descriptor.ID)),
			md.Link(PageTitle(descriptor), "datasets/"+PageName(descriptor.ID)),
		})
	}

	return md.NewMarkdown(f).
		H1(root.PrettyName).
		PlainText(root.Description).LF().
		H2("Datasets").
		Table(md.TableSet{
			Header: []string{"Identifier", "Dataset"},
			Rows:   rows,
		}).
		Build()
}

// generateDataset renders one dataset page.
func (g *Generator) generateDataset(dir string, descriptor catalog.Descriptor, bib *bibtex.Bibliography) error {
	f, err := os.Create(filepath.Join(dir, PageName(descriptor.ID)))
	if err != nil {
		return fmt.Errorf("creating dataset file: %w", err)
	}
	defer f.Close()

	return renderDataset(f, descriptor, bib)
}

// RenderPage renders one dataset page to a string.
func RenderPage(descriptor catalog.Descriptor, bib *bibtex.Bibliography) (string, error) {
	var buf bytes.Buffer
	if err := renderDataset(&buf, descriptor, bib); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderDataset(w io.Writer, descriptor catalog.Descriptor, bib *bibtex.Bibliography) error {
	page := md.NewMarkdown(w).
		H1(PageTitle(descriptor)).
		PlainTextf("Identifier: %s", md.Code(string(descriptor.ID))).LF().
		PlainText(descriptor.Description).LF().
		H2("Access").
		PlainText(descriptor.DocsInstructions).LF()

	if descriptor.DataAccess != "" {
		page.H2("Obtaining the corpus").
			PlainText(descriptor.DataAccess).LF()
	}

	if len(descriptor.BibtexIDs) > 0 {
		entries, err := bib.Resolve(descriptor.BibtexIDs)
		if err != nil {
			return err
		}
		page.H2("Citation")
		for _, entry := range entries {
			page.CodeBlocks(md.SyntaxHighlight("bibtex"), entry.Source).LF()
		}
	}

	return page.Build()
}

// PageName returns the page file name of a dataset, e.g. "clueweb22-l-de.md"
// for the dataset "l/de".
func PageName(id catalog.DatasetID) string {
	if id.IsRoot() {
		return "clueweb22.md"
	}
	return "clueweb22-" + strings.ReplaceAll(string(id), "/", "-") + ".md"
}

// PageTitle returns the page heading of a dataset: the root's pretty name,
// suffixed with the title-cased identifier path for everything below it.
func PageTitle(descriptor catalog.Descriptor) string {
	if descriptor.PrettyName != "" {
		return descriptor.PrettyName
	}
	parts := strings.Split(string(descriptor.ID), "/")
	for i, part := range parts {
		parts[i] = titleCaser.String(strings.ReplaceAll(part, "-", " "))
	}
	return "ClueWeb22 " + strings.Join(parts, " ")
}
