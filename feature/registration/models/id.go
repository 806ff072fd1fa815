package models

import (
	"crypto/md5"
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// idModulus keeps registration identifiers at nine decimal digits.
const idModulus = 1_000_000_000

// RegistrationID identifies one family's registration. It is a pure
// function of the parents' email addresses, which makes it the
// deduplication key across runs and across localized forms.
type RegistrationID int64

// NewRegistrationID derives the identifier for a set of parent email
// addresses. The addresses are sorted before hashing so the order of the
// parents on the form does not change the identity.
func NewRegistrationID(emails []string) RegistrationID {
	sorted := append([]string(nil), emails...)
	sort.Strings(sorted)

	checksum := md5.Sum([]byte(strings.Join(sorted, ", ")))
	n := new(big.Int).SetBytes(checksum[:])
	return RegistrationID(n.Mod(n, big.NewInt(idModulus)).Int64())
}

// String returns the plain decimal form of the identifier.
func (id RegistrationID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Pretty renders the identifier with its decimal digits grouped in blocks
// of three, most significant block first: 123456789 reads 123-456-789,
// 1234 reads 1-234. The leading block keeps its natural width.
func (id RegistrationID) Pretty() string {
	digits := id.String()

	var blocks []string
	for len(digits) > 3 {
		blocks = append([]string{digits[len(digits)-3:]}, blocks...)
		digits = digits[:len(digits)-3]
	}
	blocks = append([]string{digits}, blocks...)

	return strings.Join(blocks, "-")
}
