package registration

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"registration-manager/core/logger"
	"registration-manager/core/metrics"
	"registration-manager/core/sheets"
	"registration-manager/core/utils"
	"registration-manager/feature/registration/form"
	"registration-manager/feature/registration/models"
	"registration-manager/feature/registration/reconcile"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Params carries the service collaborators. An empty LedgerID switches the
// service to print mode, where ledger rows go to Out instead of the
// spreadsheet. Notifier and Exporter are optional.
type Params struct {
	Source   Source
	Sheets   sheets.Client
	LedgerID string
	Notifier *Notifier
	Exporter *Exporter
	KMLPath  string
	Metrics  *metrics.Registry
	Logger   *zap.Logger
	Out      io.Writer
}

// Service runs one full processing cycle: ingest the form rows, map them
// to registrations, commit the fresh ones to the ledger and notify their
// families, then refresh the homes KML.
type Service struct {
	source   Source
	sheets   sheets.Client
	ledgerID string
	notifier *Notifier
	exporter *Exporter
	kmlPath  string
	metrics  *metrics.Registry
	logger   *zap.Logger
	out      io.Writer

	mu   sync.Mutex
	last *Report
}

// Report summarizes the most recent completed cycle for the ops endpoint.
type Report struct {
	StartedAt  time.Time `json:"started_at"`
	Source     string    `json:"source"`
	RowsRead   int       `json:"rows_read"`
	Parsed     int       `json:"parsed"`
	Duplicates int       `json:"duplicates"`
	Appended   int       `json:"appended"`
}

func NewService(p Params) *Service {
	return &Service{
		source:   p.Source,
		sheets:   p.Sheets,
		ledgerID: p.LedgerID,
		notifier: p.Notifier,
		exporter: p.Exporter,
		kmlPath:  p.KMLPath,
		metrics:  p.Metrics,
		logger:   p.Logger,
		out:      p.Out,
	}
}

// RunOnce executes one processing cycle. Any row that fails to map aborts
// the cycle: a malformed submission means the form layout drifted, and
// processing the rows around it would commit a wrong batch.
func (s *Service) RunOnce(ctx context.Context) error {
	started := time.Now()
	report := &Report{StartedAt: started.UTC(), Source: s.source.Describe()}
	cycle := logger.WithCycleID(s.logger, uuid.NewString())

	batch, err := s.ingest(ctx, cycle, report)
	if err != nil {
		s.observeCycle(started, "failure")
		return err
	}

	if s.ledgerID == "" {
		s.printBatch(batch)
	} else if err := s.commit(ctx, batch, report); err != nil {
		s.observeCycle(started, "failure")
		return err
	}

	if s.exporter != nil {
		if err := s.exporter.Export(ctx, uniqueRegistrations(batch), s.kmlPath); err != nil {
			s.observeCycle(started, "failure")
			return err
		}
	}

	s.observeCycle(started, "success")
	s.mu.Lock()
	s.last = report
	s.mu.Unlock()

	cycle.Info("Cycle complete",
		zap.Int("rows_read", report.RowsRead),
		zap.Int("parsed", report.Parsed),
		zap.Int("duplicates", report.Duplicates),
		zap.Int("appended", report.Appended),
		zap.Duration("took", time.Since(started)),
	)
	return nil
}

// LastReport returns the report of the most recent successful cycle, or
// nil before the first one completes.
func (s *Service) LastReport() any {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last == nil {
		return nil
	}
	return s.last
}

func (s *Service) ingest(ctx context.Context, cycle *zap.Logger, report *Report) ([]*models.Registration, error) {
	batches, err := s.source.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.source.Describe(), err)
	}

	var registrations []*models.Registration
	for _, batch := range batches {
		for _, row := range batch.Rows {
			report.RowsRead++
			s.metrics.RowsRead.Inc()

			if blankRow(row.Cells) {
				s.metrics.RowsSkipped.Inc()
				continue
			}

			reg, err := form.MapRow(row.Cells, batch.Locale)
			if err != nil {
				s.metrics.ParseFailures.Inc()
				return nil, fmt.Errorf("%s row %d: %w", batch.Origin, row.Number, err)
			}

			report.Parsed++
			s.metrics.Parsed.Inc()
			registrations = append(registrations, reg)
		}

		cycle.Debug("Read form rows",
			zap.String("origin", batch.Origin),
			zap.Stringer("locale", batch.Locale),
			zap.Int("rows", len(batch.Rows)),
		)
	}

	return registrations, nil
}

func (s *Service) commit(ctx context.Context, batch []*models.Registration, report *Report) error {
	state, err := reconcile.Fetch(ctx, s.sheets, s.ledgerID)
	if err != nil {
		return err
	}

	fresh := reconcile.Diff(batch, state)
	report.Duplicates = len(batch) - len(fresh)
	s.metrics.Duplicates.Add(float64(report.Duplicates))

	var notify reconcile.NotifyFunc
	if s.notifier != nil {
		notify = s.notifier.Notify
	}

	appended, err := reconcile.Apply(ctx, s.sheets, s.ledgerID, state, fresh, notify)
	report.Appended = appended
	s.metrics.Appended.Add(float64(appended))
	return err
}

// printBatch writes the ledger rows to the output stream instead of the
// ledger. Operators use this to inspect a batch before committing it.
func (s *Service) printBatch(batch []*models.Registration) {
	for _, reg := range batch {
		for _, row := range reconcile.BuildRows(reg) {
			fmt.Fprintln(s.out, strings.Join(utils.RowStrings(row), "\t"))
		}
	}
}

func (s *Service) observeCycle(started time.Time, result string) {
	s.metrics.CyclesTotal.WithLabelValues(result).Inc()
	s.metrics.CycleDurationSec.Observe(time.Since(started).Seconds())
}

// uniqueRegistrations drops later batch entries sharing an earlier entry's
// identifier. The KML covers every family exactly once, committed or not.
func uniqueRegistrations(batch []*models.Registration) []*models.Registration {
	seen := make(map[models.RegistrationID]struct{}, len(batch))
	unique := make([]*models.Registration, 0, len(batch))

	for _, reg := range batch {
		if _, ok := seen[reg.ID]; ok {
			continue
		}
		seen[reg.ID] = struct{}{}
		unique = append(unique, reg)
	}

	return unique
}
