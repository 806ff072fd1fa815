package reconcile

import (
	"context"
	"errors"
	"testing"

	"registration-manager/core/sheets/mocks"
	"registration-manager/feature/registration/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListSheetTitles", mock.Anything, "ledger").Return([]string{"Sheet1"}, nil)
	client.On("ReadRange", mock.Anything, "ledger", "Sheet1", "A1:N").Return([][]any{
		{"School transport registrations"},
		{"Registration ID", "Submitted at"},
		{"594427901", "2020-07-01 10:00:00", "Jane DOE"},
		{"", "", "Sam DOE"},
		{"848-159-394", "2020-07-02 09:30:00", "Kim DOE"},
		{"", "", "Lou DOE"},
	}, nil)

	state, err := Fetch(context.Background(), client, "ledger")
	require.NoError(t, err)

	assert.Equal(t, "Sheet1", state.Sheet)
	assert.Equal(t, 6, state.UsedRows)
	assert.Len(t, state.IDs, 2)
	assert.True(t, state.Contains(models.RegistrationID(594427901)))
	assert.True(t, state.Contains(models.RegistrationID(848159394)))
	assert.False(t, state.Contains(models.RegistrationID(42)))
}

func TestFetch_EmptyLedger(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListSheetTitles", mock.Anything, "ledger").Return([]string{"Sheet1"}, nil)
	client.On("ReadRange", mock.Anything, "ledger", "Sheet1", "A1:N").Return([][]any{}, nil)

	state, err := Fetch(context.Background(), client, "ledger")
	require.NoError(t, err)

	assert.Zero(t, state.UsedRows)
	assert.Empty(t, state.IDs)
}

func TestFetch_MoreThanOneSheet(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListSheetTitles", mock.Anything, "ledger").Return([]string{"2020", "2021"}, nil)

	_, err := Fetch(context.Background(), client, "ledger")
	require.Error(t, err)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, []string{"2020", "2021"}, shapeErr.Sheets)
	assert.Contains(t, err.Error(), "exactly one sheet")

	client.AssertNotCalled(t, "ReadRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFetch_MalformedIDCell(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListSheetTitles", mock.Anything, "ledger").Return([]string{"Sheet1"}, nil)
	client.On("ReadRange", mock.Anything, "ledger", "Sheet1", "A1:N").Return([][]any{
		{"title"},
		{"Registration ID"},
		{"pending", "2020-07-01 10:00:00"},
	}, nil)

	_, err := Fetch(context.Background(), client, "ledger")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ledger row 3")
	assert.Contains(t, err.Error(), "no digits")
}

func TestFetch_ReadErrorPropagates(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListSheetTitles", mock.Anything, "ledger").Return([]string{"Sheet1"}, nil)
	client.On("ReadRange", mock.Anything, "ledger", "Sheet1", "A1:N").Return(nil, errors.New("boom"))

	_, err := Fetch(context.Background(), client, "ledger")
	assert.ErrorContains(t, err, "boom")
}

func TestParseIDCell(t *testing.T) {
	tests := []struct {
		name    string
		cell    string
		want    models.RegistrationID
		wantErr bool
	}{
		{name: "plain", cell: "594427901", want: 594427901},
		{name: "pretty form", cell: "594-427-901", want: 594427901},
		{name: "thousand separators", cell: "594,427,901", want: 594427901},
		{name: "no digits", cell: "pending", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIDCell(tt.cell)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
