package mocks

import (
	"context"

	"registration-manager/core/mailer"

	"github.com/stretchr/testify/mock"
)

// Mailer is a mock implementation of mailer.Mailer
type Mailer struct {
	mock.Mock
}

func (m *Mailer) Send(ctx context.Context, msg mailer.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
