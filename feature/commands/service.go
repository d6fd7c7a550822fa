package commands

import (
	"context"
	"fmt"

	"site-preview/core/preview"

	"go.uber.org/zap"
)

// Controller is the preview server lifecycle the commands drive.
// *preview.Runner implements it.
type Controller interface {
	Start(folder string) (string, error)
	Stop(ctx context.Context) error
	Running() bool
	Addr() string
}

// Status describes the preview server state.
type Status struct {
	Running bool   `json:"running"`
	Address string `json:"address,omitempty"`
	URL     string `json:"url,omitempty"`
}

// Service implements the host commands.
type Service struct {
	controller Controller
	logger     *zap.Logger
}

// NewService creates a new commands service.
func NewService(controller Controller, logger *zap.Logger) *Service {
	return &Service{
		controller: controller,
		logger:     logger,
	}
}

// StartServer starts serving folder and returns a message carrying the URL.
func (s *Service) StartServer(folder string) (string, error) {
	addr, err := s.controller.Start(folder)
	if err != nil {
		return "", err
	}
	return "Server started on " + preview.URL(addr), nil
}

// StopServer stops the preview server.
func (s *Service) StopServer(ctx context.Context) (string, error) {
	if err := s.controller.Stop(ctx); err != nil {
		return "", err
	}
	return "Server stopped", nil
}

// Status reports the current preview server state.
func (s *Service) Status() Status {
	if !s.controller.Running() {
		return Status{}
	}
	st := Status{Running: true, Address: s.controller.Addr()}
	if st.Address != "" {
		st.URL = preview.URL(st.Address)
	}
	return st
}

// Greet returns a greeting for name.
func (s *Service) Greet(name string) string {
	return fmt.Sprintf("Hello, %s! You've been greeted from Go!", name)
}
