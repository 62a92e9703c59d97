package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webis-de/clueweb22/internal/docs"
	"github.com/webis-de/clueweb22/internal/embedded"
	"github.com/webis-de/clueweb22/pkg/bibtex"
	"github.com/webis-de/clueweb22/pkg/catalog"
)

var docsOutputDir string

var docsCmd = &cobra.Command{
	Use:   "docs [dataset-id]",
	Short: "Generate the catalog documentation pages",
	Long: `Generate markdown documentation for the dataset catalog: an index page
plus one page per dataset, with access instructions and resolved citations.
With a dataset identifier, print that dataset's page instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := newRegistry()
		if err != nil {
			return err
		}
		bib, err := bibtex.Load(embedded.FS, "catalog/bibliography.bib")
		if err != nil {
			return err
		}

		if len(args) == 1 {
			descriptor, err := registry.Catalog().Dataset(catalog.DatasetID(args[0]))
			if err != nil {
				return err
			}
			page, err := docs.RenderPage(descriptor, bib)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), page)
			return nil
		}

		generator := docs.New(docs.WithOutputDir(docsOutputDir))
		return generator.Generate(cmd.Context(), registry.Catalog(), bib)
	},
}

func init() {
	docsCmd.Flags().StringVarP(&docsOutputDir, "output", "o", "./docs",
		"output directory for generated documentation")
	rootCmd.AddCommand(docsCmd)
}
