package models

import (
	"net/mail"
	"strings"

	"registration-manager/core/locale"
)

// Parent is one of the one or two parents on the family's form.
type Parent struct {
	Name
	Email     string
	Phone     string
	Address   string
	Secondary bool
}

// NewParent builds a Parent from the five cells of one parent group.
//
// The primary parent filled the form in, so the form's declared locale is
// taken as theirs. A secondary parent was merely referred and may speak
// another language, so their name runs through language detection before
// casing. The home address is required for the primary parent; a secondary
// parent without one is assumed to live at the primary's address.
func NewParent(last, first, email, phone, address string, secondary bool, loc locale.Locale) (Parent, error) {
	if secondary {
		loc = locale.DetectOverride(last+" "+first, loc)
	}

	mailAddr, err := normalizeEmail(email)
	if err != nil {
		return Parent{}, err
	}

	tel, err := normalizePhone(phone)
	if err != nil {
		return Parent{}, err
	}

	home := collapseWhitespace(address)
	if home == "" && !secondary {
		return Parent{}, invalid("home address", "the primary parent's home address is required")
	}

	return Parent{
		Name:      NewName(last, first, loc),
		Email:     mailAddr,
		Phone:     tel,
		Address:   home,
		Secondary: secondary,
	}, nil
}

// normalizeEmail trims and lower-cases an email address and checks it is a
// plain RFC 5322 address without a display name.
func normalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	parsed, err := mail.ParseAddress(normalized)
	if err != nil || parsed.Address != normalized {
		return "", invalid("email address", "%q is not a valid address", email)
	}
	return normalized, nil
}

// normalizePhone converts a local Vietnamese subscriber number to its
// international representation. Nine-digit numbers get the leading zero
// restored that spreadsheet cells commonly strip.
func normalizePhone(phone string) (string, error) {
	digits := strings.TrimSpace(phone)
	if digits == "" || strings.IndexFunc(digits, notASCIIDigit) >= 0 {
		return "", invalid("phone number", "%q is not numeric", phone)
	}
	if len(digits) < 9 {
		return "", invalid("phone number", "%q is missing digits", phone)
	}
	for len(digits) < 10 {
		digits = "0" + digits
	}
	return "+84." + digits, nil
}

func notASCIIDigit(r rune) bool {
	return r < '0' || r > '9'
}
