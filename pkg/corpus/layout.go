package corpus

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/webis-de/clueweb22/pkg/errors"
)

// recordCountsDir holds the per-format record count files below the root.
const recordCountsDir = "record_counts"

// Verify checks that a directory is a usable corpus root for a subset: a
// single version marker matching the subset, a records directory per
// released format, and the record count files. It reports the first problem
// found.
func Verify(root string, subset Subset) error {
	info, err := os.Stat(root)
	if err != nil {
		return &errors.LayoutError{Root: root, Path: ".", Message: "corpus root is not accessible"}
	}
	if !info.IsDir() {
		return &errors.LayoutError{Root: root, Path: ".", Message: "corpus root is not a directory"}
	}

	version, err := DetectVersion(root)
	if err != nil {
		return err
	}
	if version.Subset != subset {
		return &errors.LayoutError{
			Root:    root,
			Path:    version.String(),
			Message: fmt.Sprintf("version marker is for the %s subset, expected %s", version.Subset, subset),
		}
	}

	for _, format := range subset.Formats() {
		if !format.Released() {
			continue
		}
		formatDir := filepath.Join(root, format.ID())
		if info, err := os.Stat(formatDir); err != nil || !info.IsDir() {
			return &errors.LayoutError{
				Root:    root,
				Path:    format.ID(),
				Message: "missing records directory",
			}
		}

		countsDir := filepath.Join(root, recordCountsDir, format.ID())
		countFiles, err := filepath.Glob(filepath.Join(countsDir, "*_counts.csv"))
		if err != nil || len(countFiles) == 0 {
			return &errors.LayoutError{
				Root:    root,
				Path:    filepath.Join(recordCountsDir, format.ID()),
				Message: "missing record count files",
			}
		}
	}

	return nil
}
