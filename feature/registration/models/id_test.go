package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRegistrationID(t *testing.T) {
	tests := []struct {
		name   string
		emails []string
		want   RegistrationID
	}{
		{name: "single parent", emails: []string{"john@x.com"}, want: 594427901},
		{name: "two parents", emails: []string{"john@x.com", "jane@x.com"}, want: 848159394},
		{name: "unrelated set", emails: []string{"a@x.com", "b@y.org"}, want: 255804747},
		{name: "another single parent", emails: []string{"parent@example.com"}, want: 509384250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewRegistrationID(tt.emails))
		})
	}
}

func TestNewRegistrationID_OrderInvariant(t *testing.T) {
	a := NewRegistrationID([]string{"john@x.com", "jane@x.com"})
	b := NewRegistrationID([]string{"jane@x.com", "john@x.com"})
	assert.Equal(t, a, b)
}

func TestNewRegistrationID_DistinctSetsDiffer(t *testing.T) {
	a := NewRegistrationID([]string{"john@x.com"})
	b := NewRegistrationID([]string{"john@x.com", "jane@x.com"})
	assert.NotEqual(t, a, b)
}

func TestNewRegistrationID_DoesNotMutateInput(t *testing.T) {
	emails := []string{"john@x.com", "jane@x.com"}
	NewRegistrationID(emails)
	assert.Equal(t, []string{"john@x.com", "jane@x.com"}, emails)
}

func TestRegistrationID_Pretty(t *testing.T) {
	tests := []struct {
		name string
		id   RegistrationID
		want string
	}{
		{name: "nine digits", id: 123456789, want: "123-456-789"},
		{name: "two digits", id: 42, want: "42"},
		{name: "four digits", id: 1234, want: "1-234"},
		{name: "six digits", id: 700831, want: "700-831"},
		{name: "zero", id: 0, want: "0"},
		{name: "zero padded middle block", id: 1000003, want: "1-000-003"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.id.Pretty())
		})
	}
}

func TestRegistrationID_String(t *testing.T) {
	assert.Equal(t, "594427901", RegistrationID(594427901).String())
	assert.Equal(t, "0", RegistrationID(0).String())
}
