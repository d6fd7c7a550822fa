package preview

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunner_ServeExitsWhenListenerDies(t *testing.T) {
	reg := NewRegistry()
	r := NewRunner(reg, zap.NewNop(), WithAddr("127.0.0.1:0"))

	h, err := reg.Claim()
	require.NoError(t, err)
	done := r.Done()
	require.NotNil(t, done)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	h.setAddr(ln.Addr().String())
	require.NoError(t, ln.Close())

	r.serve(newApp(NewServerConfig(t.TempDir(), ""), zap.NewNop()), ln, h)

	assert.False(t, reg.Running())
	assert.Empty(t, r.Addr())
	select {
	case <-done:
	default:
		t.Fatal("done still open after the serve loop exited")
	}

	// The dead claim is gone, so the next start succeeds.
	_, err = r.Start(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, r.Stop(ctx))
}

func TestRunner_StopWaitsForInFlightRequest(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/slow", func(c *fiber.Ctx) error {
		close(entered)
		<-release
		return c.SendString("done")
	})

	reg := NewRegistry()
	r := NewRunner(reg, zap.NewNop())

	h, err := reg.Claim()
	require.NoError(t, err)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	h.setAddr(ln.Addr().String())
	go r.serve(app, ln, h)

	type result struct {
		status int
		body   string
		err    error
	}
	results := make(chan result, 1)
	go func() {
		client := &http.Client{
			Timeout:   5 * time.Second,
			Transport: &http.Transport{DisableKeepAlives: true},
		}
		resp, err := client.Get(URL(h.Addr()) + "/slow")
		if err != nil {
			results <- result{err: err}
			return
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		results <- result{status: resp.StatusCode, body: string(body), err: err}
	}()

	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("request never reached the handler")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	stopped := make(chan error, 1)
	go func() {
		stopped <- r.Stop(ctx)
	}()

	select {
	case err := <-stopped:
		t.Fatalf("Stop returned with a request in flight: %v", err)
	case <-time.After(100 * time.Millisecond):
	}

	close(release)
	require.NoError(t, <-stopped)

	select {
	case res := <-results:
		require.NoError(t, res.err)
		assert.Equal(t, http.StatusOK, res.status)
		assert.Equal(t, "done", res.body)
	case <-time.After(5 * time.Second):
		t.Fatal("client never got a response")
	}
	assert.False(t, reg.Running())
}
