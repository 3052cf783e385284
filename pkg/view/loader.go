package view

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	verrors "github.com/vango-dev/vadmin/internal/errors"
	"github.com/vango-dev/vadmin/pkg/ui"
)

// Status is the loader state discriminator.
type Status uint8

const (
	StatusIdle    Status = iota // No loadable set
	StatusLoading               // Loader invocation in flight
	StatusLoaded                // Component available
	StatusFailed                // Loader failed or produced nothing
)

// String returns the string representation of the Status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of loader state. It is replaced wholesale
// on every transition, never patched.
type Snapshot struct {
	Status    Status
	Component ui.Component
	Err       error
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the logger used for load failures.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithOnChange sets a callback invoked after every state transition.
// The callback receives the new snapshot and runs outside the loader's lock.
func WithOnChange(fn func(Snapshot)) LoaderOption {
	return func(l *Loader) {
		l.onChange = fn
	}
}

// WithContext sets the base context passed to loader invocations.
func WithContext(ctx context.Context) LoaderOption {
	return func(l *Loader) {
		l.ctx = ctx
	}
}

// Loader drives a Loadable to a renderable component.
//
// States: idle → loading → {loaded | failed}. A ready component skips
// loading and lands on loaded directly. Re-invocation happens only when the
// loadable pointer changes; setting the same pointer repeatedly is a no-op
// (memoization is an invariant of the machine, not an optimization).
//
// Each invocation captures a generation number. A result whose generation
// no longer matches — because a newer loadable superseded it or the loader
// was disposed — is discarded, so stale results can never overwrite fresher
// state. Cancellation is cooperative only: the in-flight invocation is not
// aborted, its result is ignored.
type Loader struct {
	mu       sync.Mutex
	current  *Loadable
	gen      uint64
	disposed bool
	snap     Snapshot

	onChange func(Snapshot)
	logger   *slog.Logger
	ctx      context.Context
}

// NewLoader creates a loader in the idle state.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		snap: Snapshot{Status: StatusIdle},
		ctx:  context.Background(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}
	return l
}

// State returns the current snapshot.
func (l *Loader) State() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snap
}

// Set points the loader at a loadable, superseding any in-flight load.
// A nil loadable returns the loader to idle.
func (l *Loader) Set(loadable *Loadable) {
	l.mu.Lock()
	if l.disposed {
		l.mu.Unlock()
		return
	}
	if loadable == l.current && loadable != nil {
		l.mu.Unlock()
		return
	}

	l.current = loadable
	l.gen++
	gen := l.gen

	if loadable == nil {
		l.transitionLocked(Snapshot{Status: StatusIdle})
		return
	}

	if comp, ok := loadable.Ready(); ok {
		recordLoad("ready")
		l.transitionLocked(Snapshot{Status: StatusLoaded, Component: comp})
		return
	}

	l.transitionLocked(Snapshot{Status: StatusLoading})

	go l.load(loadable, gen)
}

// load invokes the loadable off the caller's goroutine and applies the
// result if this generation is still current.
func (l *Loader) load(loadable *Loadable, gen uint64) {
	comp, err := l.safeInvoke(loadable)

	l.mu.Lock()
	if l.disposed || l.gen != gen {
		l.mu.Unlock()
		recordLoad("stale")
		return
	}

	if err != nil {
		recordLoad(loadResult(err))
		l.logger.Error("view load failed", "error", err)
		l.transitionLocked(Snapshot{Status: StatusFailed, Err: err})
		return
	}

	recordLoad("loaded")
	l.transitionLocked(Snapshot{Status: StatusLoaded, Component: comp})
}

// safeInvoke recovers loader panics into E002 errors so a crashing loader
// degrades to a failed state instead of taking the process down.
func (l *Loader) safeInvoke(loadable *Loadable) (comp ui.Component, err error) {
	defer func() {
		if r := recover(); r != nil {
			comp = nil
			err = verrors.New("E002").WithDetail(fmt.Sprintf("loader panicked: %v", r))
		}
	}()
	return loadable.invoke(l.ctx)
}

// Dispose tears the loader down. Results arriving afterwards are discarded.
func (l *Loader) Dispose() {
	l.mu.Lock()
	if l.disposed {
		l.mu.Unlock()
		return
	}
	l.disposed = true
	l.current = nil
	l.gen++
	// No notification: the consumer is gone.
	l.snap = Snapshot{Status: StatusIdle}
	l.mu.Unlock()
}

// transitionLocked replaces the snapshot and notifies outside the lock.
// Callers must hold l.mu; the lock is released here.
func (l *Loader) transitionLocked(snap Snapshot) {
	l.snap = snap
	notify := l.onChange
	l.mu.Unlock()

	if notify != nil {
		notify(snap)
	}
}

// loadResult maps a load error to its metric label.
func loadResult(err error) string {
	if ae, ok := err.(*verrors.AdminError); ok && ae.Code == "E003" {
		return "empty"
	}
	return "failed"
}
