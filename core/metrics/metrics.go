package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the process counters exposed on the ops endpoint.
type Registry struct {
	reg *prometheus.Registry

	CyclesTotal      *prometheus.CounterVec
	CycleDurationSec prometheus.Histogram
	RowsRead         prometheus.Counter
	RowsSkipped      prometheus.Counter
	Parsed           prometheus.Counter
	ParseFailures    prometheus.Counter
	Appended         prometheus.Counter
	Duplicates       prometheus.Counter
	MailSent         *prometheus.CounterVec
	MailFailures     prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	cycles := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "regman_cycles_total"}, []string{"result"})
	cycleDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "regman_cycle_duration_seconds",
		Buckets: prometheus.DefBuckets,
	})
	rowsRead := prometheus.NewCounter(prometheus.CounterOpts{Name: "regman_rows_read_total"})
	rowsSkipped := prometheus.NewCounter(prometheus.CounterOpts{Name: "regman_rows_skipped_total"})
	parsed := prometheus.NewCounter(prometheus.CounterOpts{Name: "regman_registrations_parsed_total"})
	parseFailures := prometheus.NewCounter(prometheus.CounterOpts{Name: "regman_parse_failures_total"})
	appended := prometheus.NewCounter(prometheus.CounterOpts{Name: "regman_registrations_appended_total"})
	duplicates := prometheus.NewCounter(prometheus.CounterOpts{Name: "regman_registrations_duplicate_total"})
	mailSent := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "regman_mail_sent_total"}, []string{"locale"})
	mailFailures := prometheus.NewCounter(prometheus.CounterOpts{Name: "regman_mail_failures_total"})

	r.MustRegister(cycles, cycleDuration, rowsRead, rowsSkipped, parsed, parseFailures, appended, duplicates, mailSent, mailFailures)
	return &Registry{
		reg:              r,
		CyclesTotal:      cycles,
		CycleDurationSec: cycleDuration,
		RowsRead:         rowsRead,
		RowsSkipped:      rowsSkipped,
		Parsed:           parsed,
		ParseFailures:    parseFailures,
		Appended:         appended,
		Duplicates:       duplicates,
		MailSent:         mailSent,
		MailFailures:     mailFailures,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
