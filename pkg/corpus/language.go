// Package corpus provides typed access to a local copy of the ClueWeb22
// corpus: languages, subsets, record formats, document and file identifiers,
// record counts, and document iteration.
//
// The package never downloads anything; it expects the corpus to be present
// on disk as distributed by the Lemur Project.
package corpus

// Language identifies a corpus language by its on-disk identifier, as used
// in directory names and document IDs (e.g. "de", "zh_chs", "other").
type Language string

// The eleven corpus languages: ten explicit languages plus a catch-all for
// everything else. ClueWeb22 uses the non-standard codes "po" for Polish and
// "zh_chs" for simplified Chinese.
const (
	LanguageDE    Language = "de"
	LanguageEN    Language = "en"
	LanguageES    Language = "es"
	LanguageFR    Language = "fr"
	LanguageIT    Language = "it"
	LanguageJA    Language = "ja"
	LanguageNL    Language = "nl"
	LanguagePO    Language = "po"
	LanguagePT    Language = "pt"
	LanguageZH    Language = "zh_chs"
	LanguageOther Language = "other"
)

// Languages lists all corpus languages in dataset catalog order.
var Languages = []Language{
	LanguageDE,
	LanguageEN,
	LanguageES,
	LanguageFR,
	LanguageIT,
	LanguageJA,
	LanguageNL,
	LanguagePO,
	LanguagePT,
	LanguageZH,
	LanguageOther,
}

// ID returns the corpus-internal language identifier used in directory
// names and document IDs.
func (l Language) ID() string {
	return string(l)
}

// Tag returns the shorthand used as suffix in dataset identifiers,
// e.g. "zh" for "zh_chs" and "other-languages" for "other".
func (l Language) Tag() string {
	switch l {
	case LanguageZH:
		return "zh"
	case LanguageOther:
		return "other-languages"
	default:
		return string(l)
	}
}

// DisplayName returns the English name of the language.
func (l Language) DisplayName() string {
	switch l {
	case LanguageDE:
		return "German"
	case LanguageEN:
		return "English"
	case LanguageES:
		return "Spanish"
	case LanguageFR:
		return "French"
	case LanguageIT:
		return "Italian"
	case LanguageJA:
		return "Japanese"
	case LanguageNL:
		return "Dutch"
	case LanguagePO:
		return "Polish"
	case LanguagePT:
		return "Portuguese"
	case LanguageZH:
		return "Chinese"
	case LanguageOther:
		return "Other languages"
	default:
		return string(l)
	}
}

// Valid reports whether the language is one of the eleven corpus languages.
func (l Language) Valid() bool {
	switch l {
	case LanguageDE, LanguageEN, LanguageES, LanguageFR, LanguageIT,
		LanguageJA, LanguageNL, LanguagePO, LanguagePT, LanguageZH,
		LanguageOther:
		return true
	default:
		return false
	}
}

// LanguageByID returns the language with the given corpus-internal
// identifier.
func LanguageByID(id string) (Language, bool) {
	l := Language(id)
	return l, l.Valid()
}

// LanguageByTag returns the language with the given dataset suffix tag.
func LanguageByTag(tag string) (Language, bool) {
	for _, l := range Languages {
		if l.Tag() == tag {
			return l, true
		}
	}
	return "", false
}
