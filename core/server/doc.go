// Package server holds the ops HTTP endpoint and its configuration.
//
// The endpoint is optional and disabled by default; a one-shot run has no use
// for it. When enabled it serves liveness on /healthz, the most recent cycle
// report on /status and Prometheus counters on /metrics.
//
// # Configuration
//
// The Config struct defines the enable switch and the listen port. It is
// embedded by core/config like every other partial configuration.
package server
