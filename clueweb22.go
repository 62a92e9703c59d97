// Package clueweb22 ties the ClueWeb22 dataset catalog to a local copy of
// the corpus. It exposes a registry of datasets: every catalog entry, paired
// with document access for the subsets whose distribution is released.
package clueweb22

import (
	"strings"

	"github.com/webis-de/clueweb22/pkg/catalog"
	"github.com/webis-de/clueweb22/pkg/corpus"
	"github.com/webis-de/clueweb22/pkg/errors"
)

// Dataset is one registry entry: the catalog descriptor plus, where the
// subset is released, access to the documents under the corpus root.
type Dataset struct {
	catalog.Descriptor

	// Docs provides document iteration and lookup. It is nil for the root
	// entry and for subsets withheld from distribution.
	Docs *corpus.Docs
}

// Registry holds all datasets in catalog order.
type Registry struct {
	catalog  *catalog.Catalog
	root     string
	ids      []catalog.DatasetID
	datasets map[catalog.DatasetID]*Dataset
}

type options struct {
	corpusRoot  string
	catalogOpts []catalog.Option
}

// Option is a functional option for configuring a Registry.
type Option func(*options)

// WithCorpusRoot sets the directory holding the corpus. Without it, the
// CLUEWEB22_HOME environment variable and the conventional user-scoped
// location are consulted.
func WithCorpusRoot(root string) Option {
	return func(o *options) {
		o.corpusRoot = root
	}
}

// WithCatalogPath loads the catalog data file from a directory instead of
// the embedded copy.
func WithCatalogPath(dir string) Option {
	return func(o *options) {
		o.catalogOpts = []catalog.Option{catalog.WithPath(dir)}
	}
}

// New creates a registry over the dataset catalog.
func New(opts ...Option) (*Registry, error) {
	o := &options{
		catalogOpts: []catalog.Option{catalog.WithEmbedded()},
	}
	for _, opt := range opts {
		opt(o)
	}

	cat, err := catalog.New(o.catalogOpts...)
	if err != nil {
		return nil, err
	}

	root := o.corpusRoot
	if root == "" {
		root, err = corpus.DefaultRoot()
		if err != nil {
			return nil, err
		}
	}

	r := &Registry{
		catalog:  cat,
		root:     root,
		ids:      cat.IDs(),
		datasets: make(map[catalog.DatasetID]*Dataset, cat.Len()),
	}
	for _, descriptor := range cat.List() {
		docs, err := r.docsFor(descriptor.ID)
		if err != nil {
			return nil, err
		}
		r.datasets[descriptor.ID] = &Dataset{
			Descriptor: descriptor,
			Docs:       docs,
		}
	}
	return r, nil
}

// Catalog returns the underlying catalog.
func (r *Registry) Catalog() catalog.Reader { return r.catalog }

// CorpusRoot returns the configured corpus directory.
func (r *Registry) CorpusRoot() string { return r.root }

// IDs returns all dataset identifiers in catalog order.
func (r *Registry) IDs() []catalog.DatasetID {
	ids := make([]catalog.DatasetID, len(r.ids))
	copy(ids, r.ids)
	return ids
}

// Dataset returns the registry entry for an identifier.
func (r *Registry) Dataset(id catalog.DatasetID) (*Dataset, error) {
	dataset, ok := r.datasets[id]
	if !ok {
		return nil, errors.NewNotFoundError("dataset", string(id))
	}
	return dataset, nil
}

// Datasets returns all registry entries in catalog order.
func (r *Registry) Datasets() []*Dataset {
	datasets := make([]*Dataset, len(r.ids))
	for i, id := range r.ids {
		datasets[i] = r.datasets[id]
	}
	return datasets
}

// docsFor builds the corpus document access for a dataset identifier, or
// nil for the root entry and for withheld subsets.
func (r *Registry) docsFor(id catalog.DatasetID) (*corpus.Docs, error) {
	if id.IsRoot() {
		return nil, nil
	}

	subset, ok := corpus.SubsetByTag(string(id.Category()))
	if !ok {
		return nil, errors.NewIDError("dataset", string(id), errors.New("unknown category"))
	}
	if subset.Hidden() {
		return nil, nil
	}

	var opts []corpus.DocsOption
	if suffix := id.Suffix(); suffix != "" {
		if viewTag, isView := strings.CutPrefix(suffix, "as-"); isView {
			view, ok := corpus.SubsetByTag(viewTag)
			if !ok {
				return nil, errors.NewIDError("dataset", string(id), errors.New("unknown view"))
			}
			opts = append(opts, corpus.WithView(view))
		} else {
			language, ok := corpus.LanguageByTag(suffix)
			if !ok {
				return nil, errors.NewIDError("dataset", string(id), errors.New("unknown language"))
			}
			opts = append(opts, corpus.WithLanguage(language))
		}
	}

	return corpus.NewDocs(r.root, subset, opts...)
}
