package registration

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"registration-manager/core/locale"
	"registration-manager/core/sheets"
	"registration-manager/core/utils"
)

// formRange addresses the 31 form columns of one locale sheet, below the
// header row.
const formRange = "A2:AE"

// Row is one raw form row with its 1-based position in the source.
type Row struct {
	Number int
	Cells  []string
}

// RowBatch is a set of raw rows sharing one locale.
type RowBatch struct {
	Locale locale.Locale
	// Origin names where the rows came from, used in error and log
	// context.
	Origin string
	Rows   []Row
}

// Source yields the raw localized form rows of one cycle.
type Source interface {
	Read(ctx context.Context) ([]RowBatch, error)
	// Describe names the source for logs and reports.
	Describe() string
}

// FileSource reads registrations from a local CSV export of a single
// localized form.
type FileSource struct {
	Path      string
	Locale    locale.Locale
	HasHeader bool
}

func (s *FileSource) Read(ctx context.Context) ([]RowBatch, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open form export: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read form export %s: %w", s.Path, err)
	}

	first := 1
	if s.HasHeader && len(records) > 0 {
		records = records[1:]
		first = 2
	}

	rows := make([]Row, len(records))
	for i, record := range records {
		rows[i] = Row{Number: first + i, Cells: record}
	}

	return []RowBatch{{Locale: s.Locale, Origin: s.Path, Rows: rows}}, nil
}

func (s *FileSource) Describe() string {
	return "file " + s.Path
}

// SpreadsheetSource reads registrations from the remote form spreadsheet,
// which holds one sheet per locale. Every sheet title must parse as a
// locale tag; an unrecognized title means the spreadsheet is not the one
// the operator thinks it is.
type SpreadsheetSource struct {
	Client        sheets.Client
	SpreadsheetID string
}

func (s *SpreadsheetSource) Read(ctx context.Context) ([]RowBatch, error) {
	titles, err := s.Client.ListSheetTitles(ctx, s.SpreadsheetID)
	if err != nil {
		return nil, fmt.Errorf("list form sheets: %w", err)
	}

	batches := make([]RowBatch, 0, len(titles))
	for _, title := range titles {
		loc, err := locale.Parse(title)
		if err != nil {
			return nil, fmt.Errorf("form sheet %q: %w", title, err)
		}

		grid, err := s.Client.ReadRange(ctx, s.SpreadsheetID, title, formRange)
		if err != nil {
			return nil, fmt.Errorf("read form sheet %q: %w", title, err)
		}

		rows := make([]Row, len(grid))
		for i, cells := range grid {
			// The range starts on row 2, below the form header.
			rows[i] = Row{Number: i + 2, Cells: utils.RowStrings(cells)}
		}

		batches = append(batches, RowBatch{Locale: loc, Origin: fmt.Sprintf("sheet %q", title), Rows: rows})
	}

	return batches, nil
}

func (s *SpreadsheetSource) Describe() string {
	return "spreadsheet " + s.SpreadsheetID
}

// blankRow reports whether a row carries no values at all. Exported form
// sheets accumulate such rows when families clear their responses.
func blankRow(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
