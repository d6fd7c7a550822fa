package preview

import "sync"

// ShutdownHandle is the one-shot stop signal of a running server.
//
// The Registry owns the sending side (Fire); the serve goroutine owns the
// receiving side (Fired) and closes Done once it has exited.
type ShutdownHandle struct {
	signal chan struct{}
	done   chan struct{}

	fireOnce sync.Once
	doneOnce sync.Once

	mu   sync.RWMutex
	addr string
}

func newShutdownHandle() *ShutdownHandle {
	return &ShutdownHandle{
		signal: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Fire requests shutdown. Calls after the first are no-ops.
func (h *ShutdownHandle) Fire() {
	h.fireOnce.Do(func() { close(h.signal) })
}

// Fired is closed once Fire has been called.
func (h *ShutdownHandle) Fired() <-chan struct{} {
	return h.signal
}

// Done is closed when the serve goroutine has exited and released its listener.
func (h *ShutdownHandle) Done() <-chan struct{} {
	return h.done
}

// Addr returns the address the server bound to, or "" while still starting.
func (h *ShutdownHandle) Addr() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.addr
}

func (h *ShutdownHandle) setAddr(addr string) {
	h.mu.Lock()
	h.addr = addr
	h.mu.Unlock()
}

func (h *ShutdownHandle) markDone() {
	h.doneOnce.Do(func() { close(h.done) })
}

// Registry tracks the single running preview server.
type Registry struct {
	mu     sync.Mutex
	handle *ShutdownHandle
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Claim reserves the registry for a new server and returns its handle.
func (r *Registry) Claim() (*ShutdownHandle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.handle != nil {
		return nil, ErrAlreadyRunning
	}
	r.handle = newShutdownHandle()
	return r.handle, nil
}

// Release takes the stored handle out of the registry.
// The caller is responsible for firing it.
func (r *Registry) Release() (*ShutdownHandle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h := r.handle
	if h == nil {
		return nil, ErrNotRunning
	}
	r.handle = nil
	return h, nil
}

// Running reports whether a handle is stored.
func (r *Registry) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.handle != nil
}

func (r *Registry) current() *ShutdownHandle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.handle
}

// discard clears the slot only if it still holds h.
func (r *Registry) discard(h *ShutdownHandle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.handle == h {
		r.handle = nil
	}
}
