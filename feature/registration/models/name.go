package models

import (
	"regexp"
	"strings"

	"registration-manager/core/locale"

	"golang.org/x/text/cases"
)

// namePunctuation matches the punctuation characters families sneak into
// name fields. Matches are replaced with spaces before casing.
var namePunctuation = regexp.MustCompile("[.,\\\\/#!$%^&*;:{}=\\-_`~()<>\"']")

// Name is the cleansed, locale-cased name of one registered person.
type Name struct {
	Last   string
	First  string
	Locale locale.Locale
}

// NewName cleanses and cases the raw name cells of a form row. Latin-script
// locales get an upper-cased family name and capitalized given name
// components; Korean names keep the form they were typed in.
func NewName(last, first string, loc locale.Locale) Name {
	lastName := CleanseName(last)
	firstName := CleanseName(first)

	if loc.LatinScript() {
		tag := loc.LanguageTag()
		lastName = cases.Upper(tag).String(lastName)
		firstName = cases.Title(tag).String(firstName)
	}

	return Name{Last: lastName, First: firstName, Locale: loc}
}

// FullName assembles the display name in the locale's customary order:
// given name first for western-order locales, family name first otherwise.
func (n Name) FullName() string {
	if n.Locale.WesternOrder() {
		return strings.TrimSpace(n.First + " " + n.Last)
	}
	return strings.TrimSpace(n.Last + " " + n.First)
}

// CleanseName strips punctuation from a name and collapses whitespace runs
// to single spaces.
func CleanseName(name string) string {
	return collapseWhitespace(namePunctuation.ReplaceAllString(name, " "))
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
