package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webis-de/clueweb22/pkg/catalog"
	"github.com/webis-de/clueweb22/pkg/errors"
)

var countCmd = &cobra.Command{
	Use:   "count <dataset-id>",
	Short: "Count the documents of a dataset",
	Long: `Count the documents of a dataset, e.g. "b" or "b/de", from the record
count files shipped with the corpus. No records files are read.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := newRegistry()
		if err != nil {
			return err
		}

		dataset, err := registry.Dataset(catalog.DatasetID(args[0]))
		if err != nil {
			return err
		}
		if dataset.Docs == nil {
			return fmt.Errorf("dataset %s: %w", dataset.ID, errors.ErrNotReleased)
		}

		count, err := dataset.Docs.Count()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", dataset.ID, count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
}
