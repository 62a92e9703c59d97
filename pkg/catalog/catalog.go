// Package catalog provides the dataset catalog for the ClueWeb22 corpus.
// The catalog is a static mapping from hierarchical dataset identifiers
// (e.g. "l", "l/en", "b/as-a") to descriptor records carrying human-readable
// documentation and access instructions.
//
// Entries are authored once in a YAML data file, loaded at construction, and
// immutable afterwards; any number of concurrent readers may use a Catalog
// without synchronization. Iteration preserves the authored order.
//
// Example usage:
//
//	cat, err := catalog.New(catalog.WithEmbedded())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, d := range cat.List() {
//	    fmt.Printf("%s: %s\n", d.ID, d.PrettyName)
//	}
package catalog

import (
	"fmt"

	"github.com/webis-de/clueweb22/pkg/errors"
)

// Reader provides read-only access to catalog data.
type Reader interface {
	// Dataset returns the descriptor for an identifier,
	// or a not-found error for identifiers absent from the catalog.
	Dataset(id DatasetID) (Descriptor, error)

	// Has reports whether an identifier is present.
	Has(id DatasetID) bool

	// IDs returns all identifiers in authored order.
	IDs() []DatasetID

	// List returns all descriptors in authored order.
	List() []Descriptor

	// Len returns the number of entries.
	Len() int
}

// Compile-time interface check.
var _ Reader = (*Catalog)(nil)

// Catalog is the concrete catalog store. It can be backed by the embedded
// data file, a directory on disk, or any fs.FS, or built up in memory
// through Add.
type Catalog struct {
	options  *options
	ids      []DatasetID
	datasets map[DatasetID]*Descriptor
}

// New creates a new catalog with the given options and, when a filesystem
// is configured, loads and validates the data file from it.
//
//	catalog.New(catalog.WithEmbedded())  // compiled-in data file
//	catalog.New(catalog.WithPath(dir))   // data file from a directory
//	catalog.New()                        // empty in-memory catalog
func New(opts ...Option) (*Catalog, error) {
	cat := &Catalog{
		options:  defaultOptions().apply(opts...),
		datasets: make(map[DatasetID]*Descriptor),
	}

	if cat.options.readFS != nil {
		if err := cat.load(); err != nil {
			return nil, err
		}
		if err := cat.Validate(); err != nil {
			return nil, err
		}
	}

	return cat, nil
}

// Dataset returns the descriptor for an identifier. Looking up an identifier
// absent from the catalog fails with errors.ErrNotFound; callers should treat
// this as non-fatal.
func (c *Catalog) Dataset(id DatasetID) (Descriptor, error) {
	d, ok := c.datasets[id]
	if !ok {
		return Descriptor{}, errors.NewNotFoundError("dataset", string(id))
	}
	return d.clone(), nil
}

// Has reports whether an identifier is present in the catalog.
func (c *Catalog) Has(id DatasetID) bool {
	_, ok := c.datasets[id]
	return ok
}

// IDs returns all identifiers in authored order.
func (c *Catalog) IDs() []DatasetID {
	ids := make([]DatasetID, len(c.ids))
	copy(ids, c.ids)
	return ids
}

// List returns all descriptors in authored order.
func (c *Catalog) List() []Descriptor {
	list := make([]Descriptor, 0, len(c.ids))
	for _, id := range c.ids {
		list = append(list, c.datasets[id].clone())
	}
	return list
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// Root returns the root entry's descriptor.
func (c *Catalog) Root() (Descriptor, error) {
	return c.Dataset(Root)
}

// Children returns the identifiers directly below a category,
// in authored order.
func (c *Catalog) Children(category Category) []DatasetID {
	var children []DatasetID
	for _, id := range c.ids {
		if id.Category() == category && id.Suffix() != "" {
			children = append(children, id)
		}
	}
	return children
}

// Add inserts a descriptor, preserving insertion order for iteration.
// It fails with errors.ErrAlreadyExists for duplicate identifiers and with
// a validation error for incomplete descriptors. Add is intended for
// building in-memory catalogs; loaded catalogs are never mutated.
func (c *Catalog) Add(d Descriptor) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if _, exists := c.datasets[d.ID]; exists {
		return fmt.Errorf("dataset with ID %s: %w", d.ID, errors.ErrAlreadyExists)
	}

	stored := d.clone()
	c.ids = append(c.ids, d.ID)
	c.datasets[d.ID] = &stored
	return nil
}

// Validate checks the catalog-wide invariants: every entry validates on its
// own, root-only fields appear only on the root entry, and every non-root
// entry's docs instructions are textually identical to the root's.
func (c *Catalog) Validate() error {
	root, ok := c.datasets[Root]
	if !ok {
		return errors.NewValidationError("datasets", nil, "missing root entry")
	}

	for _, id := range c.ids {
		d := c.datasets[id]
		if err := d.Validate(); err != nil {
			return err
		}
		if id.IsRoot() {
			continue
		}
		if d.PrettyName != "" {
			return errors.NewValidationError("pretty_name", d.PrettyName,
				"only the root entry carries a pretty name")
		}
		if d.DataAccess != "" {
			return errors.NewValidationError("data_access", d.DataAccess,
				"only the root entry carries data access instructions")
		}
		if d.DocsInstructions != root.DocsInstructions {
			return errors.NewValidationError("docs_instructions", string(id),
				"must equal the root entry's shared value")
		}
	}
	return nil
}
