// Package models defines the validated records of a family's registration
// to the school transport service.
//
// Raw form rows are mapped into these types by feature/registration/form.
// The constructors in this package own all per-field validation and
// normalization, so a Child or Parent value that exists is always well
// formed: names are cleansed and cased for their locale, email addresses
// are lower-cased and syntax-checked, phone numbers carry the +84.
// international prefix, and grade labels are resolved to their rank.
//
// # Participants
//
//   - Name: the cleansed, locale-cased person name shared by both kinds.
//   - Child: a name plus date of birth and education grade.
//   - Parent: a name plus email address, phone number and home address.
//
// # Registration
//
// Registration groups the children and parents of one submitted form row
// together with the fee tier the family picked. Its identifier is derived
// from the parents' email addresses alone, so repeated submissions by the
// same family collapse onto the same identifier no matter which form they
// used or how often they retried.
package models
