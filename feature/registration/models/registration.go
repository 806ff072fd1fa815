package models

import (
	"errors"
	"time"

	"registration-manager/core/locale"
)

// SubmittedAtLayout is the timestamp format of the form's submission
// column.
const SubmittedAtLayout = "01/02/2006 15:04:05"

// Registration is the validated application of one family. It is built
// once from a form row and never mutated afterwards.
type Registration struct {
	ID                RegistrationID
	SubmittedAt       time.Time
	Children          []Child
	Parents           []Parent
	AssociationMember bool
	Locale            locale.Locale
}

// New assembles a Registration from its parsed participants. A family
// must register at least one child, and the first parent is the required
// primary one. A zero locale falls back to English.
func New(submittedAt time.Time, children []Child, parents []Parent, member bool, loc locale.Locale) (*Registration, error) {
	if len(children) == 0 {
		return nil, errors.New("a registration needs at least one child")
	}
	if len(parents) == 0 {
		return nil, errors.New("a registration needs at least one parent")
	}
	if loc.IsZero() {
		loc = locale.English
	}

	return &Registration{
		ID:                NewRegistrationID(parentEmails(parents)),
		SubmittedAt:       submittedAt,
		Children:          children,
		Parents:           parents,
		AssociationMember: member,
		Locale:            loc,
	}, nil
}

// Primary returns the parent who filled the form in.
func (r *Registration) Primary() Parent {
	return r.Parents[0]
}

// Secondary returns the referred second parent, if the form named one.
func (r *Registration) Secondary() (Parent, bool) {
	for _, p := range r.Parents {
		if p.Secondary {
			return p, true
		}
	}
	return Parent{}, false
}

// ParentEmails returns every parent's normalized email address in form
// order.
func (r *Registration) ParentEmails() []string {
	return parentEmails(r.Parents)
}

func parentEmails(parents []Parent) []string {
	emails := make([]string, len(parents))
	for i, p := range parents {
		emails[i] = p.Email
	}
	return emails
}
