package mocks

import (
	"context"

	"registration-manager/core/geocode"

	"github.com/stretchr/testify/mock"
)

// Geocoder is a mock implementation of geocode.Geocoder
type Geocoder struct {
	mock.Mock
}

func (m *Geocoder) Locate(ctx context.Context, address string) (geocode.Point, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(geocode.Point), args.Error(1)
}
