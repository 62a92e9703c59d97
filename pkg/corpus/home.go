package corpus

import (
	"os"
	"path/filepath"
)

// HomeEnv overrides the default corpus location when set.
const HomeEnv = "CLUEWEB22_HOME"

// DefaultRoot returns the directory the corpus is expected under: the
// CLUEWEB22_HOME environment variable if set, otherwise
// ~/.ir_datasets/clueweb22/corpus.
func DefaultRoot() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".ir_datasets", "clueweb22", "corpus"), nil
}
