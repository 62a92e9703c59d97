package corpus

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/webis-de/clueweb22/pkg/errors"
)

// Version is the disk version of a corpus copy, read from the single
// "version_{subset}_{major}.{minor}" marker file in the corpus root.
type Version struct {
	Subset Subset
	Major  int
	Minor  int
}

// String formats the version in the marker file notation.
func (v Version) String() string {
	return fmt.Sprintf("version_%s_%d.%d", v.Subset.ID(), v.Major, v.Minor)
}

// DetectVersion locates and parses the version marker file in a corpus root.
// Exactly one marker file must exist.
func DetectVersion(root string) (Version, error) {
	matches, err := filepath.Glob(filepath.Join(root, "version_*"))
	if err != nil {
		return Version{}, errors.WrapIO("glob", root, err)
	}
	switch len(matches) {
	case 0:
		return Version{}, &errors.LayoutError{Root: root, Message: "no version marker file"}
	case 1:
	default:
		return Version{}, &errors.LayoutError{
			Root:    root,
			Message: fmt.Sprintf("expected one version marker file, found %d", len(matches)),
		}
	}

	return ParseVersion(filepath.Base(matches[0]))
}

// ParseVersion parses a version marker file name such as "version_B_1.0".
func ParseVersion(name string) (Version, error) {
	parts := strings.Split(name, "_")
	if len(parts) != 3 || parts[0] != "version" {
		return Version{}, errors.WrapParse("version", name, errors.New("expected version_{subset}_{major}.{minor}"))
	}

	subset := Subset(parts[1])
	switch subset {
	case SubsetL, SubsetA, SubsetB:
	default:
		return Version{}, errors.WrapParse("version", name, fmt.Errorf("unknown subset %q", parts[1]))
	}

	majorTag, minorTag, ok := strings.Cut(parts[2], ".")
	if !ok {
		return Version{}, errors.WrapParse("version", name, errors.New("missing minor version"))
	}
	major, err := strconv.Atoi(majorTag)
	if err != nil {
		return Version{}, errors.WrapParse("version", name, err)
	}
	minor, err := strconv.Atoi(minorTag)
	if err != nil {
		return Version{}, errors.WrapParse("version", name, err)
	}
	if major <= 0 {
		return Version{}, errors.WrapParse("version", name, errors.New("major version must be positive"))
	}

	return Version{Subset: subset, Major: major, Minor: minor}, nil
}
