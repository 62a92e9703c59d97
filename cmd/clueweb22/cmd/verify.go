package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webis-de/clueweb22/pkg/corpus"
	"github.com/webis-de/clueweb22/pkg/errors"
)

var verifySubset string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the corpus directory layout",
	Long: `Verify that the configured corpus root holds a usable corpus copy: a
single version marker for the expected subset, the per-format records
directories, and the record count files.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		subset, ok := corpus.SubsetByTag(verifySubset)
		if !ok {
			return errors.NewValidationError("subset", verifySubset, "must be one of l, a, b")
		}

		registry, err := newRegistry()
		if err != nil {
			return err
		}
		root := registry.CorpusRoot()

		if err := corpus.Verify(root, subset); err != nil {
			return err
		}

		version, err := corpus.DetectVersion(root)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s subset, disk version %d.%d\n",
			root, subset, version.Major, version.Minor)
		return nil
	},
}

func init() {
	verifyCmd.Flags().StringVarP(&verifySubset, "subset", "s", "b",
		"corpus subset the root is expected to hold (l, a, or b)")
	rootCmd.AddCommand(verifyCmd)
}
