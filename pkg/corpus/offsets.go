package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/webis-de/clueweb22/pkg/errors"
)

// offsetDigits is the fixed width of offset file lines.
const offsetDigits = 10

// ReadOffsets reads a records file's offset index: one byte offset per line,
// marking the start of each record's compressed section. The published
// offset file ja0009-57.warc.offset is missing its last line break; the two
// run-together offsets are split here.
func ReadOffsets(name string) ([]int64, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.WrapIO("open", name, err)
	}
	defer f.Close()

	fixMissingBreak := filepath.Base(name) == "ja0009-57.warc.offset"

	var offsets []int64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		lines := []string{line}
		if fixMissingBreak && len(line) > offsetDigits {
			lines = []string{line[:offsetDigits], line[offsetDigits:]}
		}
		for _, l := range lines {
			offset, err := strconv.ParseInt(l, 10, 64)
			if err != nil {
				return nil, errors.WrapParse("offsets", name, err)
			}
			offsets = append(offsets, offset)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WrapIO("read", name, err)
	}

	return offsets, nil
}

// SelectSections returns a reader over the compressed sections of the
// records with the given indices, in ascending index order. Each section is
// a complete gzip member, so the concatenation decompresses as one stream
// holding exactly the selected records.
func SelectSections(f *os.File, offsets []int64, indices []int) (io.Reader, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, errors.WrapIO("stat", f.Name(), err)
	}
	size := info.Size()

	sorted := make([]int, len(indices))
	copy(sorted, indices)
	sort.Ints(sorted)

	readers := make([]io.Reader, 0, len(sorted))
	for _, index := range sorted {
		if index < 0 || index >= len(offsets) {
			return nil, fmt.Errorf("record index %d out of range for %d offsets", index, len(offsets))
		}
		start := offsets[index]
		end := size
		if index+1 < len(offsets) {
			end = offsets[index+1]
		}
		readers = append(readers, io.NewSectionReader(f, start, end-start))
	}

	return io.MultiReader(readers...), nil
}
