// Package bibtex provides a minimal BibTeX registry used to resolve the
// citation keys attached to catalog entries. It keeps entries as verbatim
// source blocks; no field-level parsing is attempted.
package bibtex

import (
	"io/fs"
	"strings"
	"unicode"

	"github.com/webis-de/clueweb22/pkg/errors"
)

// Entry is one bibliography entry, kept as its verbatim BibTeX source.
type Entry struct {
	Key    string // Citation key, e.g. "Overwijk2022ClueWeb22"
	Kind   string // Entry kind without the @, e.g. "inproceedings"
	Source string // Full entry source, from @ to the closing brace
}

// Bibliography is a read-only registry of BibTeX entries, keyed by
// citation key and iterable in authored order.
type Bibliography struct {
	keys    []string
	entries map[string]Entry
}

// Load parses a bibliography file from a filesystem.
func Load(fsys fs.FS, name string) (*Bibliography, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.WrapIO("read", name, err)
	}
	bib, err := Parse(string(data))
	if err != nil {
		return nil, errors.WrapParse("bibtex", name, err)
	}
	return bib, nil
}

// Parse parses BibTeX source into a bibliography. Text between entries
// (comments, whitespace) is ignored. Entry bodies are matched by brace
// balance, so nested braces in field values are handled.
func Parse(src string) (*Bibliography, error) {
	bib := &Bibliography{entries: make(map[string]Entry)}

	for i := 0; i < len(src); i++ {
		if src[i] != '@' {
			continue
		}

		open := strings.IndexByte(src[i:], '{')
		if open < 0 {
			return nil, errors.New("unterminated entry header")
		}
		kind := strings.ToLower(strings.TrimSpace(src[i+1 : i+open]))
		if kind == "" {
			return nil, errors.New("entry without a kind")
		}

		body := i + open
		end, err := matchBrace(src, body)
		if err != nil {
			return nil, err
		}

		comma := strings.IndexByte(src[body:end], ',')
		if comma < 0 {
			return nil, errors.New("entry without a citation key")
		}
		key := strings.TrimFunc(src[body+1:body+comma], unicode.IsSpace)
		if key == "" {
			return nil, errors.New("entry with an empty citation key")
		}
		if _, exists := bib.entries[key]; exists {
			return nil, errors.New("duplicate citation key " + key)
		}

		bib.keys = append(bib.keys, key)
		bib.entries[key] = Entry{
			Key:    key,
			Kind:   kind,
			Source: src[i : end+1],
		}
		i = end
	}

	return bib, nil
}

// matchBrace returns the index of the brace closing the one at start.
func matchBrace(src string, start int) (int, error) {
	depth := 0
	for i := start; i < len(src); i++ {
		switch src[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, errors.New("unbalanced braces")
}

// Keys returns all citation keys in authored order.
func (b *Bibliography) Keys() []string {
	keys := make([]string, len(b.keys))
	copy(keys, b.keys)
	return keys
}

// Len returns the number of entries.
func (b *Bibliography) Len() int {
	return len(b.keys)
}

// Entry returns the entry for a citation key, or a not-found error.
func (b *Bibliography) Entry(key string) (Entry, error) {
	entry, ok := b.entries[key]
	if !ok {
		return Entry{}, errors.NewNotFoundError("bibtex entry", key)
	}
	return entry, nil
}

// Resolve returns the entries for the given citation keys, in input order.
// An unknown key fails the whole resolution with a not-found error.
func (b *Bibliography) Resolve(keys []string) ([]Entry, error) {
	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		entry, err := b.Entry(key)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
