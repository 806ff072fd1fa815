package sheets

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// Client defines the interface for spreadsheet operations.
type Client interface {
	// ListSheetTitles returns the titles of all sheets in a spreadsheet, in document order.
	ListSheetTitles(ctx context.Context, spreadsheetID string) ([]string, error)
	// ReadRange reads a cell range from one sheet. Cells use A1 notation without the sheet prefix.
	ReadRange(ctx context.Context, spreadsheetID, sheetTitle, cells string) ([][]any, error)
	// AppendRows writes rows starting at the given 1-based row, without cell format interpretation.
	AppendRows(ctx context.Context, spreadsheetID, sheetTitle string, startRow int, rows [][]any) error
}

// NewClient creates a new Google Sheets client based on the configuration.
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	svc, err := gsheets.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(gsheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	return &googleClient{
		svc:     svc,
		timeout: time.Duration(timeout) * time.Second,
	}, nil
}

type googleClient struct {
	svc     *gsheets.Service
	timeout time.Duration
}

func (c *googleClient) ListSheetTitles(ctx context.Context, spreadsheetID string) ([]string, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.svc.Spreadsheets.Get(spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get spreadsheet %s: %w", spreadsheetID, err)
	}

	titles := make([]string, 0, len(resp.Sheets))
	for _, sheet := range resp.Sheets {
		if sheet.Properties != nil {
			titles = append(titles, sheet.Properties.Title)
		}
	}
	return titles, nil
}

func (c *googleClient) ReadRange(ctx context.Context, spreadsheetID, sheetTitle, cells string) ([][]any, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	readRange := rangeRef(sheetTitle, cells)
	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", readRange, err)
	}
	return resp.Values, nil
}

func (c *googleClient) AppendRows(ctx context.Context, spreadsheetID, sheetTitle string, startRow int, rows [][]any) error {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	writeRange := rangeRef(sheetTitle, fmt.Sprintf("A%d", startRow))
	body := &gsheets.ValueRange{Values: rows}
	// RAW keeps cell contents exactly as written; USER_ENTERED would let the
	// backend reinterpret ids and phone numbers as numbers or dates.
	_, err := c.svc.Spreadsheets.Values.Update(spreadsheetID, writeRange, body).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to write range %s: %w", writeRange, err)
	}
	return nil
}

func (c *googleClient) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

// rangeRef builds a fully qualified A1 reference. Sheet titles are quoted so
// titles containing spaces or locale codes never change the range meaning.
func rangeRef(sheetTitle, cells string) string {
	escaped := strings.ReplaceAll(sheetTitle, "'", "''")
	return fmt.Sprintf("'%s'!%s", escaped, cells)
}
