package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of sheets.Client
type Client struct {
	mock.Mock
}

func (m *Client) ListSheetTitles(ctx context.Context, spreadsheetID string) ([]string, error) {
	args := m.Called(ctx, spreadsheetID)
	if titles, ok := args.Get(0).([]string); ok {
		return titles, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ReadRange(ctx context.Context, spreadsheetID, sheetTitle, cells string) ([][]any, error) {
	args := m.Called(ctx, spreadsheetID, sheetTitle, cells)
	if rows, ok := args.Get(0).([][]any); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) AppendRows(ctx context.Context, spreadsheetID, sheetTitle string, startRow int, rows [][]any) error {
	args := m.Called(ctx, spreadsheetID, sheetTitle, startRow, rows)
	return args.Error(0)
}
