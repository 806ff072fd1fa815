package models

import (
	"testing"
	"time"

	"registration-manager/core/locale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChild(t *testing.T) Child {
	t.Helper()
	child, err := NewChild("doe", "jane", "09/01/2012", "CE1", locale.French)
	require.NoError(t, err)
	return child
}

func testParent(t *testing.T, email string, secondary bool) Parent {
	t.Helper()
	address := "1 Rue A"
	if secondary {
		address = ""
	}
	parent, err := NewParent("doe", "john", email, "912345678", address, secondary, locale.French)
	require.NoError(t, err)
	return parent
}

func TestNew(t *testing.T) {
	submitted := time.Date(2020, time.July, 1, 10, 0, 0, 0, time.UTC)
	child := testChild(t)
	primary := testParent(t, "john@x.com", false)

	reg, err := New(submitted, []Child{child}, []Parent{primary}, true, locale.French)
	require.NoError(t, err)

	assert.Equal(t, RegistrationID(594427901), reg.ID)
	assert.Equal(t, submitted, reg.SubmittedAt)
	assert.Len(t, reg.Children, 1)
	assert.True(t, reg.AssociationMember)
	assert.Equal(t, locale.French, reg.Locale)
}

func TestNew_RequiresParticipants(t *testing.T) {
	submitted := time.Now()
	child := testChild(t)
	parent := testParent(t, "john@x.com", false)

	_, err := New(submitted, nil, []Parent{parent}, false, locale.French)
	assert.ErrorContains(t, err, "at least one child")

	_, err = New(submitted, []Child{child}, nil, false, locale.French)
	assert.ErrorContains(t, err, "at least one parent")
}

func TestNew_ZeroLocaleDefaultsToEnglish(t *testing.T) {
	reg, err := New(time.Now(), []Child{testChild(t)}, []Parent{testParent(t, "john@x.com", false)}, false, locale.Locale{})
	require.NoError(t, err)
	assert.Equal(t, locale.English, reg.Locale)
}

func TestRegistration_IDMatchesParentEmails(t *testing.T) {
	primary := testParent(t, "john@x.com", false)
	secondary := testParent(t, "jane@x.com", true)

	reg, err := New(time.Now(), []Child{testChild(t)}, []Parent{primary, secondary}, false, locale.French)
	require.NoError(t, err)

	assert.Equal(t, NewRegistrationID([]string{"jane@x.com", "john@x.com"}), reg.ID)
	assert.Equal(t, RegistrationID(848159394), reg.ID)
	assert.Equal(t, []string{"john@x.com", "jane@x.com"}, reg.ParentEmails())
}

func TestRegistration_ParentAccessors(t *testing.T) {
	primary := testParent(t, "john@x.com", false)
	secondary := testParent(t, "jane@x.com", true)

	reg, err := New(time.Now(), []Child{testChild(t)}, []Parent{primary, secondary}, false, locale.French)
	require.NoError(t, err)

	assert.Equal(t, "john@x.com", reg.Primary().Email)
	second, ok := reg.Secondary()
	require.True(t, ok)
	assert.Equal(t, "jane@x.com", second.Email)

	single, err := New(time.Now(), []Child{testChild(t)}, []Parent{primary}, false, locale.French)
	require.NoError(t, err)
	_, ok = single.Secondary()
	assert.False(t, ok)
}
