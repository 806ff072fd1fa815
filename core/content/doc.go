// Package content provides notification templates and placeholder expansion.
//
// Templates live on disk as one directory per locale tag, each holding a
// subject line, an HTML body and optional attachments:
//
//	templates/
//	  fra/
//	    subject.txt
//	    body.html
//	    attachments/
//	      welcome.pdf
//	  eng/
//	    ...
//
// A locale without its own directory resolves to the default locale's
// directory, attachments included.
//
// # Placeholders
//
// Bodies and subjects may reference values as ::name:: tokens. Expand enforces
// a strict contract in both directions: a referenced name without a value and
// a value without a reference are both errors, reported together in a single
// ContractError. Subject lines relax the second half of the contract via
// ignoreUnused since they rarely use every value the body does.
package content
