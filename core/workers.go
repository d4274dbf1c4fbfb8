package core

import (
	"sync"

	"go.uber.org/atomic"
)

// Token is the cooperative cancellation handle passed to every worker body.
// Workers must poll Killed at safe points and return promptly once it is set;
// nothing terminates a worker forcibly.
type Token struct {
	kill *atomic.Bool
}

// Killed reports whether the worker has been asked to stop.
func (t *Token) Killed() bool { return t.kill.Load() }

// Worker is one named background task.
type Worker struct {
	name string
	kill atomic.Bool
	done chan struct{}
}

func (w *Worker) Name() string { return w.name }

// Kill requests cooperative termination. The worker keeps running until its
// body observes the token and returns.
func (w *Worker) Kill() { w.kill.Store(true) }

// KillRequested reports whether Kill has been called.
func (w *Worker) KillRequested() bool { return w.kill.Load() }

// Join blocks until the worker body has returned.
func (w *Worker) Join() { <-w.done }

// Running reports whether the worker body has not yet returned.
func (w *Worker) Running() bool {
	select {
	case <-w.done:
		return false
	default:
		return true
	}
}

// Workers is a registry of named background tasks. One instance is owned by
// the orchestrator and passed by reference to whichever component starts or
// stops workers; there is no package-level registry.
//
// The contract for validation workers is one live worker per name. Start
// replaces the previous entry unconditionally, so callers that need the
// old worker gone must Kill and Join it first.
type Workers struct {
	mu      sync.Mutex
	workers map[string]*Worker
}

func NewWorkers() *Workers {
	return &Workers{workers: make(map[string]*Worker)}
}

// Start launches fn on a new worker registered under name and returns its
// handle.
func (ws *Workers) Start(name string, fn func(*Token)) *Worker {
	w := &Worker{name: name, done: make(chan struct{})}
	ws.mu.Lock()
	ws.workers[name] = w
	ws.mu.Unlock()
	go func() {
		defer close(w.done)
		fn(&Token{kill: &w.kill})
	}()
	return w
}

// Get returns the worker registered under name, running or finished.
func (ws *Workers) Get(name string) (*Worker, bool) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	w, ok := ws.workers[name]
	return w, ok
}

// Names returns the registered worker names, mostly for diagnostics.
func (ws *Workers) Names() []string {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	out := make([]string, 0, len(ws.workers))
	for name := range ws.workers {
		out = append(out, name)
	}
	return out
}
