package corpus

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/webis-de/clueweb22/pkg/errors"
)

// FileCount is the number of records in one records file.
type FileCount struct {
	File  FileID
	Count int
}

// RecordCounts reads the per-file record counts for one format from the
// "record_counts" directory of a corpus root, in ascending order by file ID.
// With a non-empty language, only that language's counts are read.
func RecordCounts(root string, format Format, language Language) ([]FileCount, error) {
	countsDir := filepath.Join(root, "record_counts", format.ID())

	prefix := ""
	if language != "" {
		prefix = language.ID()
	}
	matches, err := filepath.Glob(filepath.Join(countsDir, prefix+"*_counts.csv"))
	if err != nil {
		return nil, errors.WrapIO("glob", countsDir, err)
	}
	sort.Strings(matches)

	var counts []FileCount
	for _, countsFile := range matches {
		fileCounts, err := readCountsFile(countsFile)
		if err != nil {
			return nil, err
		}
		counts = append(counts, fileCounts...)
	}
	return counts, nil
}

// readCountsFile parses one "{language}{stream}_counts.csv" file. Rows hold
// a file name ("de0000-00") and its record count.
func readCountsFile(name string) ([]FileCount, error) {
	base := filepath.Base(name)
	tag := strings.TrimSuffix(base, "_counts.csv")
	if tag == base || len(tag) < 3 {
		return nil, errors.WrapParse("csv", name, errors.New("unexpected counts file name"))
	}

	language, ok := LanguageByID(tag[:len(tag)-2])
	if !ok {
		return nil, errors.WrapParse("csv", name, errors.New("unknown language in counts file name"))
	}
	stream, err := strconv.Atoi(tag[len(tag)-2:])
	if err != nil {
		return nil, errors.WrapParse("csv", name, err)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, errors.WrapIO("open", name, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2

	var counts []FileCount
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.WrapParse("csv", name, err)
	}
	for _, row := range rows {
		subdirectoryTag, fileTag, ok := strings.Cut(row[0], "-")
		if !ok || len(subdirectoryTag) < 2 {
			return nil, errors.WrapParse("csv", name, errors.New("unexpected file name column"))
		}
		subdirectory, err := strconv.Atoi(subdirectoryTag[len(subdirectoryTag)-2:])
		if err != nil {
			return nil, errors.WrapParse("csv", name, err)
		}
		file, err := strconv.Atoi(fileTag)
		if err != nil {
			return nil, errors.WrapParse("csv", name, err)
		}
		count, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, errors.WrapParse("csv", name, err)
		}

		counts = append(counts, FileCount{
			File: FileID{
				Language:     language,
				Stream:       stream,
				Subdirectory: subdirectory,
				File:         file,
			},
			Count: count,
		})
	}
	return counts, nil
}
