package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"mymdb/internal/logger"
)

type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable.
type Func func()

func (f Func) Shutdown() { f() }

type resource struct {
	name string
	res  Shutdownable
}

// Manager releases process-wide resources exactly once, newest first. Its
// context is cancelled as soon as shutdown begins.
type Manager struct {
	mu        sync.Mutex
	resources []resource
	logger    logger.Logger
	timeout   time.Duration
	closed    bool
	ctx       context.Context
	cancel    context.CancelFunc
}

func NewManager(log logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		logger:  log,
		timeout: 10 * time.Second,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Register adds a resource to release on shutdown under a name used in logs.
func (m *Manager) Register(name string, res Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.resources = append(m.resources, resource{name: name, res: res})
}

// Listen calls onSignal when SIGINT or SIGTERM arrives. onSignal runs on the
// signal goroutine; with a nil onSignal the manager shuts down directly.
func (m *Manager) Listen(onSignal func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			if onSignal != nil {
				onSignal()
			} else {
				m.Shutdown()
			}
		case <-m.ctx.Done():
		}
	}()
}

// Shutdown releases registered resources in reverse order. Only the first
// call does any work.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	m.closed = true
	m.cancel()

	m.logger.Info("ShutdownManager", "releasing resources", map[string]interface{}{
		"resources": len(m.resources),
	})

	for i := len(m.resources) - 1; i >= 0; i-- {
		m.release(m.resources[i])
	}
}

func (m *Manager) release(r resource) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		r.res.Shutdown()
	}()

	select {
	case <-done:
		m.logger.Debug("ShutdownManager", "resource released", map[string]interface{}{
			"resource": r.name,
		})
	case <-time.After(m.timeout):
		m.logger.Warning("ShutdownManager", "resource release timed out", map[string]interface{}{
			"resource": r.name,
			"timeout":  m.timeout.String(),
		})
	}
}

// Context is cancelled once Shutdown starts. Work started from the UI should
// run under it.
func (m *Manager) Context() context.Context {
	return m.ctx
}
