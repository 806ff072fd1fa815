package locale

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// DetectOverride picks the locale to use for a single participant whose name
// may be written in a different language than the form it came from.
//
// Mixed families routinely fill in the form of one parent's language, and in
// practice the other parent is most often Vietnamese. Language detection on
// Vietnamese personal names is trustworthy thanks to their diacritics, while
// detection on other names is too hazardous to act on. Only a Vietnamese
// detection therefore overrides the declared locale; every other outcome
// keeps it.
func DetectOverride(name string, declared Locale) Locale {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return declared
	}
	if whatlanggo.Detect(trimmed).Lang == whatlanggo.Vie {
		return Vietnamese
	}
	return declared
}
