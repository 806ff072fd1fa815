package form

import (
	"testing"
	"time"

	"registration-manager/core/locale"
	"registration-manager/feature/registration/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRow builds a full-width row with one child and the primary parent.
func testRow() []string {
	row := make([]string, FieldCount)
	row[submittedAtColumn] = "07/01/2020 10:00:00"
	setChild(row, 1, "DOE", "Jane", "09/01/2012", "CE1")
	setParent(row, 1, "DOE", "John", "john@x.com", "912345678", "1 Rue A")
	row[feeColumn] = "100,000"
	return row
}

func setChild(row []string, number int, last, first, dob, grade string) {
	group := childGroups[number-1]
	row[group.lastName] = last
	row[group.firstName] = first
	row[group.dateOfBirth] = dob
	row[group.grade] = grade
}

func setParent(row []string, number int, last, first, email, phone, address string) {
	group := parentGroups[number-1]
	row[group.lastName] = last
	row[group.firstName] = first
	row[group.email] = email
	row[group.phone] = phone
	row[group.address] = address
}

func TestMapRow(t *testing.T) {
	row := []string{
		"07/01/2020 10:00:00",
		"DOE", "Jane", "09/01/2012", "CE1",
		"", "", "", "", "",
		"", "", "", "", "",
		"", "", "", "", "",
		"DOE", "John", "john@x.com", "912345678", "1 Rue A",
		"", "", "", "", "",
		"100,000",
	}
	require.Len(t, row, FieldCount)

	reg, err := MapRow(row, locale.French)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2020, time.July, 1, 10, 0, 0, 0, time.UTC), reg.SubmittedAt)

	require.Len(t, reg.Children, 1)
	assert.Equal(t, "Jane DOE", reg.Children[0].FullName())
	assert.Equal(t, models.Grade(6), reg.Children[0].Grade)

	require.Len(t, reg.Parents, 1)
	assert.Equal(t, "+84.0912345678", reg.Primary().Phone)
	assert.Equal(t, "john@x.com", reg.Primary().Email)

	assert.True(t, reg.AssociationMember)
	assert.Equal(t, models.RegistrationID(594427901), reg.ID)
	assert.Equal(t, locale.French, reg.Locale)
}

func TestMapRow_TruncatedRowIsPadded(t *testing.T) {
	// The sheets API drops trailing empty cells, so a single-child
	// registration often ends at the primary parent's address.
	row := testRow()[:25]

	reg, err := MapRow(row, locale.English)
	require.NoError(t, err)

	assert.Len(t, reg.Children, 1)
	assert.Len(t, reg.Parents, 1)
	assert.False(t, reg.AssociationMember)
}

func TestMapRow_EmptyRow(t *testing.T) {
	_, err := MapRow(nil, locale.English)
	assert.Error(t, err)
}

func TestMapRow_BadTimestamp(t *testing.T) {
	row := testRow()
	row[submittedAtColumn] = "2020-07-01 10:00:00"

	_, err := MapRow(row, locale.English)
	assert.ErrorContains(t, err, "submission timestamp")
}

func TestMapRow_SkipsBlankChildGroups(t *testing.T) {
	row := testRow()
	setChild(row, 3, "DOE", "Sam", "03/15/2016", "MS")

	reg, err := MapRow(row, locale.English)
	require.NoError(t, err)

	// Child 2 is blank; children 1 and 3 both map.
	require.Len(t, reg.Children, 2)
	assert.Equal(t, "Jane DOE", reg.Children[0].FullName())
	assert.Equal(t, "Sam DOE", reg.Children[1].FullName())
}

func TestMapRow_NoChildFromBlankGroup(t *testing.T) {
	row := testRow()
	// Date and grade without a last name leave the group absent.
	group := childGroups[1]
	row[group.dateOfBirth] = "03/15/2016"
	row[group.grade] = "MS"

	reg, err := MapRow(row, locale.English)
	require.NoError(t, err)
	assert.Len(t, reg.Children, 1)
}

func TestMapRow_ChildErrorNamesGroup(t *testing.T) {
	row := testRow()
	setChild(row, 2, "DOE", "Sam", "not a date", "MS")

	_, err := MapRow(row, locale.English)
	require.Error(t, err)
	assert.ErrorContains(t, err, "child 2")

	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "date of birth", vErr.Field)
}

func TestMapRow_MissingPrimaryParent(t *testing.T) {
	row := testRow()
	setParent(row, 1, "", "", "", "", "")

	_, err := MapRow(row, locale.English)
	assert.ErrorIs(t, err, ErrMissingPrimaryParent)
}

func TestMapRow_SecondaryParent(t *testing.T) {
	row := testRow()
	setParent(row, 2, "DOE", "Jane", "jane@x.com", "912345679", "")

	reg, err := MapRow(row, locale.French)
	require.NoError(t, err)

	require.Len(t, reg.Parents, 2)
	second, ok := reg.Secondary()
	require.True(t, ok)
	assert.Equal(t, "jane@x.com", second.Email)

	// Both parents feed the identifier.
	assert.Equal(t, models.NewRegistrationID([]string{"jane@x.com", "john@x.com"}), reg.ID)
}

func TestMapRow_ParentErrorNamesGroup(t *testing.T) {
	row := testRow()
	setParent(row, 2, "DOE", "Jane", "not-an-email", "912345679", "")

	_, err := MapRow(row, locale.French)
	require.Error(t, err)
	assert.ErrorContains(t, err, "parent 2")
}

func TestMapRow_RowWithoutChildren(t *testing.T) {
	row := testRow()
	setChild(row, 1, "", "", "", "")

	_, err := MapRow(row, locale.French)
	assert.ErrorContains(t, err, "at least one child")
}

func TestMapRow_KoreanNamesPassThrough(t *testing.T) {
	row := testRow()
	setChild(row, 1, "김", "민준", "09/01/2012", "CE1")
	setParent(row, 1, "김", "수현", "soohyun.kim@mail.kr", "912345678", "1 Rue A")

	reg, err := MapRow(row, locale.Korean)
	require.NoError(t, err)

	assert.Equal(t, "김 민준", reg.Children[0].FullName())
	assert.Equal(t, "김 수현", reg.Primary().FullName())
}
