package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webis-de/clueweb22/pkg/errors"
)

func TestParseVersion(t *testing.T) {
	version, err := ParseVersion("version_B_1.0")
	require.NoError(t, err)
	assert.Equal(t, Version{Subset: SubsetB, Major: 1, Minor: 0}, version)
	assert.Equal(t, "version_B_1.0", version.String())

	version, err = ParseVersion("version_L_2.13")
	require.NoError(t, err)
	assert.Equal(t, Version{Subset: SubsetL, Major: 2, Minor: 13}, version)
}

func TestParseVersionErrors(t *testing.T) {
	tests := []string{
		"",
		"version_B",
		"version_B_1",
		"version_C_1.0",
		"version_B_0.1",
		"version_B_x.y",
		"ver_B_1.0",
	}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseVersion(name)
			assert.Error(t, err)
		})
	}
}

func TestDetectVersion(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "version_B_1.0"), nil, 0o644))

	version, err := DetectVersion(root)
	require.NoError(t, err)
	assert.Equal(t, Version{Subset: SubsetB, Major: 1, Minor: 0}, version)
}

func TestDetectVersionMissing(t *testing.T) {
	_, err := DetectVersion(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrCorpusMissing)
}

func TestDetectVersionAmbiguous(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "version_B_1.0"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "version_B_1.1"), nil, 0o644))

	_, err := DetectVersion(root)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrCorpusMissing)
}
