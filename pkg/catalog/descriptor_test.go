package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatasetIDHierarchy(t *testing.T) {
	tests := []struct {
		id       DatasetID
		root     bool
		category Category
		suffix   string
		view     bool
	}{
		{"_", true, "", "", false},
		{"l", false, CategoryL, "", false},
		{"l/en", false, CategoryL, "en", false},
		{"l/other-languages", false, CategoryL, "other-languages", false},
		{"a/as-l", false, CategoryA, "as-l", true},
		{"b/as-a", false, CategoryB, "as-a", true},
	}
	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			assert.Equal(t, tt.root, tt.id.IsRoot())
			assert.Equal(t, tt.category, tt.id.Category())
			assert.Equal(t, tt.suffix, tt.id.Suffix())
			assert.Equal(t, tt.view, tt.id.IsView())
		})
	}
}
