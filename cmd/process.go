package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"registration-manager/core/config"
	"registration-manager/core/content"
	"registration-manager/core/geocode"
	"registration-manager/core/locale"
	"registration-manager/core/logger"
	"registration-manager/core/mailer"
	"registration-manager/core/metrics"
	"registration-manager/core/server"
	"registration-manager/core/sheets"
	"registration-manager/feature/registration"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the process command
	fileFlag         string
	localeFlag       string
	credentialsFlag  string
	inputIDFlag      string
	outputIDFlag     string
	apiKeyFlag       string
	smtpHostFlag     string
	smtpPortFlag     int
	smtpUserFlag     string
	authorNameFlag   string
	authorAddrFlag   string
	templatePathFlag string
	kmlFileFlag      string
	noEmailFlag      bool
	noGeocodingFlag  bool
	noKMLFlag        bool
	loopFlag         bool
	intervalFlag     int
)

// processCmd runs the registration processing cycle, once or as a loop.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Parse form responses and reconcile them into the master ledger",
	Long: `Process reads the registration form responses, validates and normalizes
every row, and appends the registrations not yet present in the master
ledger, e-mailing each family a localized confirmation.

The rows come either from the form responses spreadsheet (one sheet per
locale) or from a CSV export of a single localized form. Without an
output spreadsheet the ledger rows are printed to standard output
instead of committed.

Examples:
  # Inspect a CSV export without touching the ledger
  registration-manager process --file responses.csv --locale fra

  # One reconciliation pass against the live documents
  registration-manager process -i <form-id> -o <ledger-id>

  # Keep processing every 5 minutes until interrupted
  registration-manager process -i <form-id> -o <ledger-id> --loop`,
	RunE: runProcess,
}

func init() {
	f := processCmd.Flags()
	f.StringVarP(&fileFlag, "file", "f", "", "path of a CSV export of one localized form")
	f.StringVarP(&localeFlag, "locale", "l", "", "locale tag of the CSV file rows (eng, fra, kor, vie)")
	f.StringVarP(&credentialsFlag, "credentials", "c", "", "path of the Google service account key file")
	f.StringVarP(&inputIDFlag, "input-spreadsheet-id", "i", "", "identifier of the form responses spreadsheet")
	f.StringVarP(&outputIDFlag, "output-spreadsheet-id", "o", "", "identifier of the master ledger spreadsheet (omit to print instead)")
	f.StringVar(&apiKeyFlag, "google-api-key", "", "Google Maps Platform API key for geocoding")
	f.StringVar(&smtpHostFlag, "smtp-host", "", "SMTP server hostname")
	f.IntVar(&smtpPortFlag, "smtp-port", 587, "SMTP server port")
	f.StringVar(&smtpUserFlag, "smtp-username", "", "SMTP login")
	f.StringVar(&authorNameFlag, "email-author-name", "", "display name of the confirmation sender")
	f.StringVar(&authorAddrFlag, "email-author-address", "", "address of the confirmation sender")
	f.StringVar(&templatePathFlag, "template-path", "", "root directory of the per-locale email templates")
	f.StringVar(&kmlFileFlag, "kml-file", "", "path of the KML file of children's homes")
	f.BoolVar(&noEmailFlag, "no-email", false, "do not send confirmation emails")
	f.BoolVar(&noGeocodingFlag, "no-geocoding", false, "do not resolve home addresses")
	f.BoolVar(&noKMLFlag, "no-kml", false, "do not write the KML file")
	f.BoolVar(&loopFlag, "loop", false, "keep processing until interrupted")
	f.IntVar(&intervalFlag, "interval", 300, "seconds to idle between cycles")

	RootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyProcessFlags(cmd, cfg)

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	if (cfg.Source.File == "") == (cfg.Source.SpreadsheetID == "") {
		return errors.New("exactly one of --file and --input-spreadsheet-id must be given")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sheetsClient sheets.Client
	if cfg.Source.SpreadsheetID != "" || cfg.Run.LedgerSpreadsheetID != "" {
		sheetsClient, err = sheets.NewClient(ctx, cfg.Sheets)
		if err != nil {
			return fmt.Errorf("failed to create sheets client: %w", err)
		}
	}

	var source registration.Source
	if cfg.Source.File != "" {
		loc, err := locale.Parse(cfg.Source.FileLocale)
		if err != nil {
			return fmt.Errorf("file source: %w", err)
		}
		source = &registration.FileSource{Path: cfg.Source.File, Locale: loc, HasHeader: cfg.Source.FileHeader}
	} else {
		source = &registration.SpreadsheetSource{Client: sheetsClient, SpreadsheetID: cfg.Source.SpreadsheetID}
	}

	loop := cfg.Run.Loop
	if loop && cfg.Source.SpreadsheetID == "" {
		logg.Info("Loop mode needs the form spreadsheet as its source, running once")
		loop = false
	}

	reg := metrics.NewRegistry()

	var notifier *registration.Notifier
	if cfg.Mail.Enabled {
		store, err := content.NewStore(cfg.Content)
		if err != nil {
			return fmt.Errorf("failed to load notification templates: %w", err)
		}
		m, err := mailer.NewMailer(cfg.Mail)
		if err != nil {
			return fmt.Errorf("failed to create mailer: %w", err)
		}
		notifier = registration.NewNotifier(m, store, reg, logg)
	} else {
		logg.Info("Email notifications are disabled")
	}

	var exporter *registration.Exporter
	if cfg.Run.KMLFile != "" {
		g := geocode.Geocoder(geocode.Noop{})
		if cfg.Geocode.Enabled {
			g, err = geocode.NewGeocoder(cfg.Geocode)
			if err != nil {
				return fmt.Errorf("failed to create geocoder: %w", err)
			}
		} else {
			logg.Info("Geocoding is disabled, the KML will map no homes")
		}
		exporter = registration.NewExporter(g, logg)
	}

	svc := registration.NewService(registration.Params{
		Source:   source,
		Sheets:   sheetsClient,
		LedgerID: cfg.Run.LedgerSpreadsheetID,
		Notifier: notifier,
		Exporter: exporter,
		KMLPath:  cfg.Run.KMLFile,
		Metrics:  reg,
		Logger:   logg,
		Out:      os.Stdout,
	})

	if loop && cfg.Ops.Enabled {
		app := server.New(reg.Handler(), svc.LastReport)
		go func() {
			logg.Info("Starting ops endpoint", zap.String("port", cfg.Ops.Port))
			if err := app.Listen(":" + cfg.Ops.Port); err != nil {
				logg.Error("Ops endpoint failed", zap.Error(err))
			}
		}()
		defer func() { _ = app.Shutdown() }()
	}

	runner := registration.NewRunner(svc, time.Duration(cfg.Run.IntervalSeconds)*time.Second, loop, logg)
	logg.Info("Starting registration processing",
		zap.String("source", source.Describe()),
		zap.Bool("loop", loop),
	)

	if err := runner.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logg.Info("Stopped on operator interrupt")
			return nil
		}
		return err
	}
	return nil
}

// applyProcessFlags lets command line flags override the loaded
// configuration.
func applyProcessFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.Source.File = fileFlag
	}
	if flags.Changed("locale") {
		cfg.Source.FileLocale = localeFlag
	}
	if flags.Changed("credentials") {
		cfg.Sheets.CredentialsFile = credentialsFlag
	}
	if flags.Changed("input-spreadsheet-id") {
		cfg.Source.SpreadsheetID = inputIDFlag
	}
	if flags.Changed("output-spreadsheet-id") {
		cfg.Run.LedgerSpreadsheetID = outputIDFlag
	}
	if flags.Changed("google-api-key") {
		cfg.Geocode.APIKey = apiKeyFlag
	}
	if flags.Changed("smtp-host") {
		cfg.Mail.Host = smtpHostFlag
	}
	if flags.Changed("smtp-port") {
		cfg.Mail.Port = smtpPortFlag
	}
	if flags.Changed("smtp-username") {
		cfg.Mail.Username = smtpUserFlag
	}
	if flags.Changed("email-author-name") {
		cfg.Mail.SenderName = authorNameFlag
	}
	if flags.Changed("email-author-address") {
		cfg.Mail.SenderAddress = authorAddrFlag
	}
	if flags.Changed("template-path") {
		cfg.Content.Dir = templatePathFlag
	}
	if flags.Changed("kml-file") {
		cfg.Run.KMLFile = kmlFileFlag
	}
	if flags.Changed("interval") {
		cfg.Run.IntervalSeconds = intervalFlag
	}
	if noEmailFlag {
		cfg.Mail.Enabled = false
	}
	if noGeocodingFlag {
		cfg.Geocode.Enabled = false
	}
	if noKMLFlag {
		cfg.Run.KMLFile = ""
	}
	if loopFlag {
		cfg.Run.Loop = true
	}
}
