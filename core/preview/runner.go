package preview

import (
	"context"
	"fmt"
	"net"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Runner starts and stops the preview server.
// All Runners sharing a Registry share its single-instance guarantee.
type Runner struct {
	registry *Registry
	logger   *zap.Logger
	addr     string
}

// Option configures a Runner.
type Option func(*Runner)

// WithAddr overrides the bind address. Mostly useful in tests, where
// "127.0.0.1:0" picks a free port.
func WithAddr(addr string) Option {
	return func(r *Runner) {
		r.addr = addr
	}
}

// NewRunner creates a Runner on top of registry.
func NewRunner(registry *Registry, logger *zap.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Runner{
		registry: registry,
		logger:   logger,
		addr:     DefaultAddr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start serves folder and returns the bound host:port.
//
// It returns ErrAlreadyRunning without side effects while another server is
// registered, and an error wrapping ErrBindFailed when the address cannot be
// bound. The serve loop runs in its own goroutine; Start does not wait for it.
func (r *Runner) Start(folder string) (string, error) {
	h, err := r.registry.Claim()
	if err != nil {
		return "", err
	}

	cfg := NewServerConfig(folder, r.addr)

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		h.markDone()
		r.registry.discard(h)
		return "", fmt.Errorf("%w on %s: %w", ErrBindFailed, cfg.Addr, err)
	}

	addr := ln.Addr().String()
	h.setAddr(addr)

	go r.serve(newApp(cfg, r.logger), ln, h)

	r.logger.Info("Preview server started",
		zap.String("addr", addr),
		zap.String("folder", cfg.Folder),
	)
	return addr, nil
}

// Stop requests shutdown of the running server and waits until its listener
// is closed or ctx is done. It returns ErrNotRunning when nothing is registered.
func (r *Runner) Stop(ctx context.Context) error {
	h, err := r.registry.Release()
	if err != nil {
		return err
	}
	h.Fire()

	select {
	case <-h.Done():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for preview server to exit: %w", ctx.Err())
	}
}

// Running reports whether a server is registered.
func (r *Runner) Running() bool {
	return r.registry.Running()
}

// Addr returns the bound address of the running server, or "" when idle.
func (r *Runner) Addr() string {
	if h := r.registry.current(); h != nil {
		return h.Addr()
	}
	return ""
}

// Done returns a channel closed once the running server's serve loop has
// exited, whether through Stop or on its own. It returns nil when idle.
func (r *Runner) Done() <-chan struct{} {
	if h := r.registry.current(); h != nil {
		return h.Done()
	}
	return nil
}

// serve owns the listener until the handle fires or the serve loop dies.
func (r *Runner) serve(app *fiber.App, ln net.Listener, h *ShutdownHandle) {
	defer h.markDone()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- app.Listener(ln)
	}()

	select {
	case <-h.Fired():
		if err := app.Shutdown(); err != nil {
			r.logger.Warn("Preview server shutdown failed", zap.Error(err))
		}
		// Shutdown only closes listeners the serve loop has registered.
		_ = ln.Close()
		if err := <-serveErr; err != nil {
			r.logger.Warn("Preview server exited with error", zap.Error(err))
		}
		r.logger.Info("Preview server stopped", zap.String("addr", h.Addr()))

	case err := <-serveErr:
		_ = ln.Close()
		r.registry.discard(h)
		r.logger.Error("Preview server exited unexpectedly",
			zap.String("addr", h.Addr()),
			zap.Error(err),
		)
	}
}
