package catalog

import (
	"io/fs"
	"os"

	"github.com/webis-de/clueweb22/internal/embedded"
)

// DataFile is the name of the catalog data file inside the configured
// filesystem.
const DataFile = "clueweb22.yaml"

// options holds catalog configuration.
type options struct {
	readFS fs.FS // nil means an empty in-memory catalog
}

// Option configures a catalog.
type Option func(*options)

// defaultOptions returns the default catalog configuration:
// an empty in-memory catalog with no backing filesystem.
func defaultOptions() *options {
	return &options{}
}

// apply applies the given options and returns the configuration.
func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithEmbedded backs the catalog with the data file compiled into the binary.
// This is the recommended option for production use.
func WithEmbedded() Option {
	return func(o *options) {
		sub, err := fs.Sub(embedded.FS, "catalog")
		if err != nil {
			// The embedded tree always contains catalog/.
			panic(err)
		}
		o.readFS = sub
	}
}

// WithPath backs the catalog with a data file inside a directory on disk.
func WithPath(dir string) Option {
	return func(o *options) {
		o.readFS = os.DirFS(dir)
	}
}

// WithFS backs the catalog with an arbitrary filesystem.
func WithFS(fsys fs.FS) Option {
	return func(o *options) {
		o.readFS = fsys
	}
}
