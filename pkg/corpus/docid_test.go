package corpus

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webis-de/clueweb22/pkg/errors"
)

func TestParseDocID(t *testing.T) {
	tests := []struct {
		id   string
		want DocID
	}{
		{
			id:   "clueweb22-de0000-00-00366",
			want: DocID{Language: LanguageDE, Stream: 0, Subdirectory: 0, File: 0, Doc: 366},
		},
		{
			id:   "clueweb22-en0045-17-12345",
			want: DocID{Language: LanguageEN, Stream: 0, Subdirectory: 45, File: 17, Doc: 12345},
		},
		{
			id:   "clueweb22-zh_chs0013-02-00007",
			want: DocID{Language: LanguageZH, Stream: 0, Subdirectory: 13, File: 2, Doc: 7},
		},
		{
			id:   "clueweb22-other1505-99-00001",
			want: DocID{Language: LanguageOther, Stream: 15, Subdirectory: 5, File: 99, Doc: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := ParseDocID(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.id, got.String(), "String must round-trip")
		})
	}
}

func TestParseDocIDErrors(t *testing.T) {
	tests := []string{
		"",
		"clueweb22-de0000-00",
		"clueweb22-de0000-00-00001-extra",
		"clueweb09-de0000-00-00001",
		"clueweb22-xx0000-00-00001",
		"clueweb22-de0099-00-00001", // subdirectory above 80
		"clueweb22-de0000-xx-00001",
		"clueweb22-de0000-101-00001", // file above 100
		"clueweb22-de0000-00-xxxxx",
	}

	for _, id := range tests {
		t.Run(id, func(t *testing.T) {
			_, err := ParseDocID(id)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidID(err))
		})
	}
}

func TestDocIDPath(t *testing.T) {
	id, err := ParseDocID("clueweb22-de0001-02-00366")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("de", "de00", "de0001", "de0001-02"), id.Path())
	assert.Equal(t, "clueweb22-de0001-02", id.FileID().String())
	assert.Equal(t, id, id.FileID().DocID(366))
}

func TestFileIDFromPath(t *testing.T) {
	file, err := FileIDFromPath("txt/de/de00/de0000/de0000-01.json.gz")
	require.NoError(t, err)
	assert.Equal(t, FileID{Language: LanguageDE, Stream: 0, Subdirectory: 0, File: 1}, file)

	file, err = FileIDFromPath("html/zh_chs/zh_chs00/zh_chs0013/zh_chs0013-02.warc.gz")
	require.NoError(t, err)
	assert.Equal(t, FileID{Language: LanguageZH, Stream: 0, Subdirectory: 13, File: 2}, file)

	_, err = FileIDFromPath("de0000-01.json.gz")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidID(err))
}

func TestFileIDFormatPath(t *testing.T) {
	file := FileID{Language: LanguageDE, Stream: 0, Subdirectory: 1, File: 2}

	assert.Equal(t,
		filepath.Join("txt", "de", "de00", "de0001", "de0001-02")+".json.gz",
		file.FormatPath(FormatTxt))
	assert.Equal(t,
		filepath.Join("html", "de", "de00", "de0001", "de0001-02")+".warc.gz",
		file.FormatPath(FormatHTML))
	assert.Equal(t,
		filepath.Join("vdom", "de", "de00", "de0001", "de0001-02")+".zip",
		file.FormatPath(FormatVDOM))
}

// The published corpus stores Chinese outlink files under a stream directory
// named "zh00" rather than "zh_chs00".
func TestFileIDFormatPathChineseOutlinks(t *testing.T) {
	file := FileID{Language: LanguageZH, Stream: 0, Subdirectory: 13, File: 2}

	assert.Equal(t,
		filepath.Join("outlink", "zh_chs", "zh00", "zh_chs0013", "zh_chs0013-02")+".json.gz",
		file.FormatPath(FormatOutlink))
	assert.Equal(t,
		filepath.Join("inlink", "zh_chs", "zh_chs00", "zh_chs0013", "zh_chs0013-02")+".json.gz",
		file.FormatPath(FormatInlink),
		"only outlink files deviate")
}

func TestFileIDOffsetPath(t *testing.T) {
	file := FileID{Language: LanguageEN, Stream: 0, Subdirectory: 0, File: 0}

	assert.Equal(t,
		filepath.Join("txt", "en", "en00", "en0000", "en0000-00")+".offset",
		file.OffsetPath(FormatTxt))
	assert.Equal(t,
		filepath.Join("html", "en", "en00", "en0000", "en0000-00")+".warc.offset",
		file.OffsetPath(FormatHTML))
	assert.Empty(t, file.OffsetPath(FormatVDOM))
}
