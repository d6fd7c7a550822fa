package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Controller is a mock implementation of commands.Controller
type Controller struct {
	mock.Mock
}

func (m *Controller) Start(folder string) (string, error) {
	args := m.Called(folder)
	return args.String(0), args.Error(1)
}

func (m *Controller) Stop(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *Controller) Running() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *Controller) Addr() string {
	args := m.Called()
	return args.String(0)
}
