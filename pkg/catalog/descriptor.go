package catalog

import (
	"strings"

	"github.com/webis-de/clueweb22/pkg/errors"
)

// DatasetID is the hierarchical identifier of a catalog entry, e.g. "b/as-a"
// or "l/en". Identifiers follow a two-level hierarchy: a top-level category
// optionally followed by a language or view suffix.
type DatasetID string

// Root is the identifier of the catalog's root entry describing the
// corpus as a whole.
const Root DatasetID = "_"

// Category is the top-level partition of the corpus by size and quality.
type Category string

// Corpus categories as published by the Lemur Project.
const (
	CategoryL Category = "l"
	CategoryA Category = "a"
	CategoryB Category = "b"
)

// Categories lists all corpus categories in catalog order.
var Categories = []Category{CategoryL, CategoryA, CategoryB}

// IsRoot reports whether the identifier names the root entry.
func (id DatasetID) IsRoot() bool {
	return id == Root
}

// Category returns the top-level category of the identifier,
// or the empty string for the root entry.
func (id DatasetID) Category() Category {
	if id.IsRoot() {
		return ""
	}
	category, _, _ := strings.Cut(string(id), "/")
	return Category(category)
}

// Suffix returns the part after the category, e.g. "en", "other-languages",
// or "as-l". It is empty for category entries and the root entry.
func (id DatasetID) Suffix() string {
	_, suffix, _ := strings.Cut(string(id), "/")
	return suffix
}

// IsView reports whether the identifier names a cross-category projection
// such as "b/as-a", which reduces one category's record types to
// another category's schema.
func (id DatasetID) IsView() bool {
	return strings.HasPrefix(id.Suffix(), "as-")
}

// String returns the identifier as a plain string.
func (id DatasetID) String() string {
	return string(id)
}

// Descriptor is the record of human-readable metadata attached to one
// catalog identifier. Descriptors are authored once in the embedded data
// file and are immutable at load time.
type Descriptor struct {
	// ID is set from the entry's key while loading; it is not part of the
	// entry body in the data file.
	ID DatasetID `json:"id" yaml:"-"`

	// PrettyName is the display name. Only the root entry carries one.
	PrettyName string `json:"pretty_name,omitempty" yaml:"pretty_name,omitempty"`

	// Description is an HTML fragment describing the subset's content
	// and provenance.
	Description string `json:"desc" yaml:"desc"`

	// DocsInstructions points users to the corpus's external access
	// prerequisites. Every entry shares one value, authored as a single
	// YAML anchor aliased by all entries.
	DocsInstructions string `json:"docs_instructions" yaml:"docs_instructions"`

	// DataAccess describes licensing, acquisition steps, and the required
	// local directory layout. Only the root entry carries it.
	DataAccess string `json:"data_access,omitempty" yaml:"data_access,omitempty"`

	// BibtexIDs are ordered citation keys, resolvable against a
	// bibliography collaborator.
	BibtexIDs []string `json:"bibtex_ids,omitempty" yaml:"bibtex_ids,omitempty"`
}

// clone returns a copy that shares no mutable state with the receiver, so
// callers cannot alter the catalog's stored descriptors.
func (d *Descriptor) clone() Descriptor {
	c := *d
	if d.BibtexIDs != nil {
		c.BibtexIDs = make([]string, len(d.BibtexIDs))
		copy(c.BibtexIDs, d.BibtexIDs)
	}
	return c
}

// Validate checks the descriptor's own fields. Cross-entry invariants
// (shared docs instructions, root-only fields) are checked by Catalog.Validate.
func (d *Descriptor) Validate() error {
	if d.ID == "" {
		return errors.NewValidationError("id", d.ID, "must not be empty")
	}
	if strings.Count(string(d.ID), "/") > 1 {
		return errors.NewValidationError("id", d.ID, "must have at most two levels")
	}
	if d.Description == "" {
		return errors.NewValidationError("desc", d.Description, "must not be empty")
	}
	if d.DocsInstructions == "" {
		return errors.NewValidationError("docs_instructions", d.DocsInstructions, "must not be empty")
	}
	return nil
}
