// Package locale defines the set of languages the registration forms are
// published in and the rules that depend on them.
//
// A Locale is an opaque value type keyed by an ISO 639-3 code. It drives:
//   - full-name ordering (western locales read first-name-first),
//   - name casing (latin-script locales are re-cased, Korean is not),
//   - which localized notification template and attachments are selected.
//
// # Detection override
//
// DetectOverride implements the narrow language-detection heuristic used for
// secondary parents: a reliably Korean name switches that parent to the
// Korean locale, anything else falls back to the form's declared locale.
package locale
