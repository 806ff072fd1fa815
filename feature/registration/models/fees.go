package models

import "regexp"

// The subscription fee a family owes, in Vietnamese dong, depending on
// whether it joins the parents association.
const (
	MemberFeeAmount    = "100,000"
	NonMemberFeeAmount = "200,000"
)

// feeAgreements keys the membership decision on the group of thousands of
// the chosen fee. The forms render the same numeral with a locale-specific
// group separator, so only the leading digit group is comparable across
// locales.
var feeAgreements = map[string]bool{
	"100": true,
	"200": false,
}

var leadingDigits = regexp.MustCompile("[0-9]+")

// ParseFeeTier reports whether the fee amount a family picked on the form
// is the parents-association member tier. Amounts that match neither tier
// count as the non-member tier rather than failing the row.
func ParseFeeTier(amount string) bool {
	return feeAgreements[leadingDigits.FindString(amount)]
}

// PaymentAmount returns the fee amount a family owes, formatted the way
// the forms print it.
func PaymentAmount(member bool) string {
	if member {
		return MemberFeeAmount
	}
	return NonMemberFeeAmount
}
