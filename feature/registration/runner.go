package registration

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
)

// Runner drives the service. In loop mode it processes a cycle, idles for
// the configured interval and repeats until canceled. Outside loop mode it
// stops after the first successful cycle. In both modes a transient remote
// failure waits one interval and reruns the whole cycle from ingest, so a
// flaky network never leaves a batch half-processed.
type Runner struct {
	service  *Service
	interval time.Duration
	loop     bool
	logger   *zap.Logger
}

func NewRunner(service *Service, interval time.Duration, loop bool, logger *zap.Logger) *Runner {
	return &Runner{service: service, interval: interval, loop: loop, logger: logger}
}

// Run processes cycles until done. Cancellation is honored only at the top
// of the idle wait: a cycle in flight always finishes, so appends and
// notifications are never cut halfway.
func (r *Runner) Run(ctx context.Context) error {
	for {
		err := r.service.RunOnce(context.WithoutCancel(ctx))
		switch {
		case err == nil:
			if !r.loop {
				return nil
			}
		case IsTransient(err):
			r.logger.Warn("Cycle failed on a remote hiccup, will retry", zap.Error(err))
		default:
			return err
		}

		select {
		case <-ctx.Done():
			r.logger.Info("Stopping")
			return ctx.Err()
		case <-time.After(r.interval):
		}
	}
}

// IsTransient reports whether an error looks like a remote hiccup worth
// retrying: network failures, timeouts, dropped connections, and throttling
// or server errors from the spreadsheet backend. Anything else would fail
// the same way on the next attempt.
func IsTransient(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusRequestTimeout, http.StatusTooManyRequests:
			return true
		default:
			return apiErr.Code >= http.StatusInternalServerError
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}
