package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies the language a registration form is written in.
// It is an immutable value type; two locales are equal iff their tags are equal.
type Locale struct {
	tag string
}

// The supported form locales, tagged with their ISO 639-3 codes.
var (
	English    = Locale{"eng"}
	French     = Locale{"fra"}
	Korean     = Locale{"kor"}
	Vietnamese = Locale{"vie"}
)

// supported lists every locale a form (or input sheet name) may declare.
var supported = []Locale{English, French, Korean, Vietnamese}

// westernOrder is the set of locales whose full names read first-name-first.
// Korean and Vietnamese names put the family name first.
var westernOrder = map[Locale]bool{
	English: true,
	French:  true,
}

// latinScript is the set of locales whose personal names take Latin letter
// casing. Korean names are written in Hangul and keep their original form.
var latinScript = map[Locale]bool{
	English:    true,
	French:     true,
	Vietnamese: true,
}

// languageTags maps locales to the matching golang.org/x/text language tags,
// used for locale-aware casing of personal names.
var languageTags = map[Locale]language.Tag{
	English:    language.English,
	French:     language.French,
	Korean:     language.Korean,
	Vietnamese: language.Vietnamese,
}

// Supported returns the full set of recognized locales.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// Parse converts an ISO 639-3 code into a Locale.
// The match is case-insensitive and ignores surrounding whitespace.
// An unrecognized code is an error; sheet names of the input spreadsheet
// must parse through here, so a stray tab surfaces as a configuration error.
func Parse(s string) (Locale, error) {
	tag := strings.ToLower(strings.TrimSpace(s))
	for _, l := range supported {
		if l.tag == tag {
			return l, nil
		}
	}
	return Locale{}, fmt.Errorf("unsupported locale %q (supported: %s)", s, supportedTags())
}

// MustParse is Parse for trusted literals; it panics on failure.
func MustParse(s string) Locale {
	l, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return l
}

// String returns the ISO 639-3 code of the locale.
func (l Locale) String() string {
	return l.tag
}

// IsZero reports whether the locale is the uninitialized value.
func (l Locale) IsZero() bool {
	return l.tag == ""
}

// WesternOrder reports whether full names in this locale read
// first-name-then-last-name. Non-western locales order last-name-first.
func (l Locale) WesternOrder() bool {
	return westernOrder[l]
}

// LatinScript reports whether personal names in this locale take Latin
// letter casing: upper-cased family name, capitalized given name.
func (l Locale) LatinScript() bool {
	return latinScript[l]
}

// LanguageTag returns the golang.org/x/text tag for this locale.
func (l Locale) LanguageTag() language.Tag {
	if t, ok := languageTags[l]; ok {
		return t
	}
	return language.Und
}

func supportedTags() string {
	tags := make([]string, len(supported))
	for i, l := range supported {
		tags[i] = l.tag
	}
	return strings.Join(tags, ", ")
}
