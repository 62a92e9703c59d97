package corpus

// Subset identifies a corpus category by its published name.
type Subset string

// The corpus categories, in increasing record richness. Each subset extends
// the previous one: every A document carries all L record types, and every
// B document carries all A record types.
const (
	SubsetL Subset = "L"
	SubsetA Subset = "A"
	SubsetB Subset = "B"
)

// Subsets lists all corpus categories in catalog order.
var Subsets = []Subset{SubsetL, SubsetA, SubsetB}

// ID returns the subset name as used in the corpus version marker file.
func (s Subset) ID() string {
	return string(s)
}

// Tag returns the lowercase shorthand used as the top-level part of
// dataset identifiers.
func (s Subset) Tag() string {
	switch s {
	case SubsetL:
		return "l"
	case SubsetA:
		return "a"
	case SubsetB:
		return "b"
	default:
		return ""
	}
}

// SubsetByTag returns the subset with the given dataset tag.
func SubsetByTag(tag string) (Subset, bool) {
	for _, s := range Subsets {
		if s.Tag() == tag {
			return s, true
		}
	}
	return "", false
}

// Formats returns the record formats required to construct a document of
// this subset, in combination order.
func (s Subset) Formats() []Format {
	switch s {
	case SubsetL:
		return []Format{FormatTxt}
	case SubsetA:
		return []Format{FormatTxt, FormatHTML, FormatInlink, FormatOutlink, FormatVDOM}
	case SubsetB:
		// Page screenshots join this list once the jpg format is released.
		return []Format{FormatTxt, FormatHTML, FormatInlink, FormatOutlink, FormatVDOM}
	default:
		return nil
	}
}

// Extends returns the subset this subset extends, if any.
func (s Subset) Extends() (Subset, bool) {
	switch s {
	case SubsetA:
		return SubsetL, true
	case SubsetB:
		return SubsetA, true
	default:
		return "", false
	}
}

// Hidden reports whether datasets of this subset are withheld from the
// registry because their distribution is not yet fully validated.
func (s Subset) Hidden() bool {
	return s == SubsetL || s == SubsetA
}

// Views returns this subset and every subset it transitively extends.
// A subset can be viewed as any subset it extends because it contains all
// record types of the extended subsets.
func (s Subset) Views() []Subset {
	views := []Subset{s}
	for current := s; ; {
		extended, ok := current.Extends()
		if !ok {
			break
		}
		views = append(views, extended)
		current = extended
	}
	return views
}

// DiffFormats returns the formats included in this subset but not in any
// subset it extends. These are the formats whose files are guaranteed to
// cover exactly this subset's documents, which makes them authoritative
// for document counts.
func (s Subset) DiffFormats() []Format {
	inherited := make(map[Format]bool)
	for _, view := range s.Views() {
		if view == s {
			continue
		}
		for _, f := range view.Formats() {
			inherited[f] = true
		}
	}

	var diff []Format
	for _, f := range s.Formats() {
		if !inherited[f] {
			diff = append(diff, f)
		}
	}
	return diff
}
