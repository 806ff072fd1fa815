// Package metrics exposes Prometheus counters for the processing loop.
//
// All collectors live on a private registry rather than the package-global
// default, so tests can create registries freely and the /metrics endpoint
// serves exactly the counters this process owns.
package metrics
