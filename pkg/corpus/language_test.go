package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageTags(t *testing.T) {
	tests := []struct {
		language    Language
		id          string
		tag         string
		displayName string
	}{
		{LanguageDE, "de", "de", "German"},
		{LanguageEN, "en", "en", "English"},
		{LanguagePO, "po", "po", "Polish"},
		{LanguageZH, "zh_chs", "zh", "Chinese"},
		{LanguageOther, "other", "other-languages", "Other languages"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.id, tt.language.ID())
			assert.Equal(t, tt.tag, tt.language.Tag())
			assert.Equal(t, tt.displayName, tt.language.DisplayName())
			assert.True(t, tt.language.Valid())
		})
	}
}

func TestLanguageLookup(t *testing.T) {
	for _, language := range Languages {
		byID, ok := LanguageByID(language.ID())
		require.True(t, ok)
		assert.Equal(t, language, byID)

		byTag, ok := LanguageByTag(language.Tag())
		require.True(t, ok)
		assert.Equal(t, language, byTag)
	}

	_, ok := LanguageByID("zh")
	assert.False(t, ok, "the dataset tag is not a corpus identifier")
	_, ok = LanguageByTag("zh_chs")
	assert.False(t, ok, "the corpus identifier is not a dataset tag")
	_, ok = LanguageByID("xx")
	assert.False(t, ok)
}

func TestLanguageCount(t *testing.T) {
	assert.Len(t, Languages, 11)
	assert.False(t, Language("xx").Valid())
	assert.False(t, Language("").Valid())
}
