// Package geocode resolves postal addresses to geographic coordinates.
//
// It wraps the Google Maps Geocoding API behind a one-method interface so the
// map export can place families without knowing about the provider. A Noop
// implementation covers runs where geocoding is switched off.
//
// Lookup failures for a single address are reported as ErrNoMatch and are
// expected; callers skip the address rather than fail the run.
package geocode
