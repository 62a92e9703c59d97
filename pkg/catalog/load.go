package catalog

import (
	"fmt"
	"io/fs"

	"github.com/goccy/go-yaml"

	"github.com/webis-de/clueweb22/pkg/errors"
)

// dataFile mirrors the shape of the catalog data file: a mapping of dataset
// identifiers to entry bodies under a single datasets key. MapSlice keeps
// the authored key order, which the catalog preserves for iteration.
type dataFile struct {
	Datasets yaml.MapSlice `yaml:"datasets"`
}

// load reads the data file from the configured filesystem and fills the
// catalog in authored order. YAML anchors and aliases are resolved by the
// parser, so the shared docs-instructions value arrives as plain text on
// every entry.
func (c *Catalog) load() error {
	data, err := fs.ReadFile(c.options.readFS, DataFile)
	if err != nil {
		return errors.WrapIO("read", DataFile, err)
	}

	var file dataFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return errors.WrapParse("yaml", DataFile, err)
	}
	if len(file.Datasets) == 0 {
		return errors.WrapParse("yaml", DataFile,
			errors.New("no datasets key or empty catalog"))
	}

	for _, item := range file.Datasets {
		id, ok := item.Key.(string)
		if !ok {
			return errors.WrapParse("yaml", DataFile,
				fmt.Errorf("dataset key %v is not a string", item.Key))
		}

		// Entry bodies arrive as generic maps; round-trip through YAML
		// to decode them into the typed descriptor.
		body, err := yaml.Marshal(item.Value)
		if err != nil {
			return errors.WrapParse("yaml", DataFile, err)
		}
		var d Descriptor
		if err := yaml.Unmarshal(body, &d); err != nil {
			return errors.WrapParse("yaml", DataFile,
				fmt.Errorf("dataset %s: %w", id, err))
		}
		d.ID = DatasetID(id)

		if err := c.Add(d); err != nil {
			return err
		}
	}

	return nil
}
