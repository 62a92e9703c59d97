package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/webis-de/clueweb22/internal/docs"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the datasets of the catalog",
	Long: `List the dataset catalog in its authored order. By default only datasets
with released document access are shown; --all includes the documentation-only
entries and the withheld subsets.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		registry, err := newRegistry()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "IDENTIFIER\tDATASET\tDOCUMENTS")
		for _, dataset := range registry.Datasets() {
			if dataset.Docs == nil && !listAll {
				continue
			}
			available := "-"
			if dataset.Docs != nil {
				available = dataset.Docs.Name()
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				dataset.ID, docs.PageTitle(dataset.Descriptor), available)
		}
		return w.Flush()
	},
}

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false,
		"include documentation-only entries and withheld subsets")
	rootCmd.AddCommand(listCmd)
}
