// Package stemmer reduces words to Porter stems.
//
// The default mode follows the NLTK variant of the Porter algorithm, which
// departs from the published rules in a handful of places (y after a vowel,
// short ies/ied words, and several step 2 suffixes). The martin mode runs
// Martin Porter's reference rules through go-porterstemmer.
package stemmer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	porterstemmer "github.com/reiver/go-porterstemmer"
)

// Mode selects the rule set.
type Mode int

const (
	// ModeNLTK applies the NLTK extensions. It is the zero value.
	ModeNLTK Mode = iota
	// ModeMartin applies Martin Porter's reference rules.
	ModeMartin
)

func (m Mode) String() string {
	switch m {
	case ModeNLTK:
		return "nltk"
	case ModeMartin:
		return "martin"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a config value to a Mode. Empty means nltk.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "nltk":
		return ModeNLTK, nil
	case "martin":
		return ModeMartin, nil
	default:
		return 0, fmt.Errorf("unknown stemmer mode %q (want nltk or martin)", value)
	}
}

// irregular forms are resolved before the suffix rules run in nltk mode.
var irregular = map[string]string{
	"skies":    "sky",
	"sky":      "sky",
	"dying":    "die",
	"lying":    "lie",
	"tying":    "tie",
	"news":     "news",
	"innings":  "inning",
	"inning":   "inning",
	"outings":  "outing",
	"outing":   "outing",
	"cannings": "canning",
	"canning":  "canning",
	"howe":     "howe",
	"proceed":  "proceed",
	"exceed":   "exceed",
	"succeed":  "succeed",
}

// Porter is a stateless Porter stemmer. The zero value uses nltk mode and
// is safe for concurrent use.
type Porter struct {
	mode Mode
}

// NewPorter returns a stemmer in nltk mode.
func NewPorter() *Porter {
	return &Porter{mode: ModeNLTK}
}

// New returns a stemmer for mode.
func New(mode Mode) *Porter {
	return &Porter{mode: mode}
}

// Mode reports the rule set in use.
func (p *Porter) Mode() Mode { return p.mode }

// Stem returns the lowercase stem of word. Words of one or two letters are
// returned unchanged apart from case.
func (p *Porter) Stem(word string) string {
	lower := strings.ToLower(word)
	if p.mode == ModeNLTK {
		if stem, ok := irregular[lower]; ok {
			return stem
		}
	}
	if utf8.RuneCountInString(lower) <= 2 {
		return lower
	}
	if p.mode == ModeMartin {
		return martinStem(lower)
	}
	return string(nltkStem([]rune(lower)))
}

// martinStem runs go-porterstemmer. The library indexes before the start of
// the word when step 1b leaves only "e", so those words are answered here.
func martinStem(word string) string {
	base := word
	if strings.HasSuffix(base, "s") && !strings.HasSuffix(base, "ss") {
		base = strings.TrimSuffix(base, "s")
	}
	switch base {
	case "eed":
		return base
	case "eing":
		return "e"
	}
	return porterstemmer.StemString(word)
}
