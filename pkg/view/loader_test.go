package view

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	verrors "github.com/vango-dev/vadmin/internal/errors"
)

// snapshotRecorder collects loader transitions for assertions.
type snapshotRecorder struct {
	mu    sync.Mutex
	snaps []Snapshot
	ch    chan Snapshot
}

func newSnapshotRecorder() *snapshotRecorder {
	return &snapshotRecorder{ch: make(chan Snapshot, 16)}
}

func (r *snapshotRecorder) record(s Snapshot) {
	r.mu.Lock()
	r.snaps = append(r.snaps, s)
	r.mu.Unlock()
	r.ch <- s
}

func (r *snapshotRecorder) waitFor(t *testing.T, status Status) Snapshot {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case s := <-r.ch:
			if s.Status == status {
				return s
			}
		case <-deadline:
			t.Fatalf("Timeout waiting for status %s", status)
		}
	}
}

func (r *snapshotRecorder) statuses() []Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Status, len(r.snaps))
	for i, s := range r.snaps {
		out[i] = s.Status
	}
	return out
}

func TestLoaderInitialIdle(t *testing.T) {
	l := NewLoader()
	if got := l.State().Status; got != StatusIdle {
		t.Errorf("Initial status = %s, want idle", got)
	}
}

func TestLoaderReadyComponentSkipsLoading(t *testing.T) {
	rec := newSnapshotRecorder()
	l := NewLoader(WithOnChange(rec.record))

	l.Set(ComponentOf(stubComponent("ready")))

	snap := l.State()
	if snap.Status != StatusLoaded || snap.Component == nil {
		t.Fatalf("Ready component did not load synchronously: %+v", snap)
	}
	if got := rec.statuses(); len(got) != 1 || got[0] != StatusLoaded {
		t.Errorf("Transitions = %v, want [loaded]", got)
	}
}

func TestLoaderTransitionsExactlyOnce(t *testing.T) {
	rec := newSnapshotRecorder()
	l := NewLoader(WithOnChange(rec.record))

	calls := 0
	loadable := LoaderOf(func(ctx context.Context) (any, error) {
		calls++
		return stubComponent("lazy"), nil
	})

	l.Set(loadable)
	rec.waitFor(t, StatusLoaded)

	// Same pointer again: forbidden to re-invoke.
	l.Set(loadable)
	time.Sleep(20 * time.Millisecond)

	if calls != 1 {
		t.Errorf("Loader invoked %d times, want exactly 1", calls)
	}
	want := []Status{StatusLoading, StatusLoaded}
	got := rec.statuses()
	if len(got) != len(want) {
		t.Fatalf("Transitions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Transitions = %v, want %v", got, want)
		}
	}
}

func TestLoaderSupersededResultDiscarded(t *testing.T) {
	rec := newSnapshotRecorder()
	l := NewLoader(WithOnChange(rec.record))

	releaseFirst := make(chan struct{})
	firstDone := make(chan struct{})
	first := LoaderOf(func(ctx context.Context) (any, error) {
		<-releaseFirst
		defer close(firstDone)
		return stubComponent("first"), nil
	})
	secondComp := stubComponent("second")
	second := LoaderOf(func(ctx context.Context) (any, error) {
		return secondComp, nil
	})

	l.Set(first)  // Blocks.
	l.Set(second) // Supersedes before first resolves.
	rec.waitFor(t, StatusLoaded)

	// Let the first loader finish late; its result must be discarded.
	close(releaseFirst)
	<-firstDone
	time.Sleep(20 * time.Millisecond)

	snap := l.State()
	if snap.Status != StatusLoaded {
		t.Fatalf("Status = %s, want loaded", snap.Status)
	}
	if snap.Component != secondComp {
		t.Error("Stale first result overwrote the second loadable's outcome")
	}
}

func TestLoaderFailure(t *testing.T) {
	rec := newSnapshotRecorder()
	l := NewLoader(WithOnChange(rec.record))

	boom := errors.New("network down")
	l.Set(LoaderOf(func(ctx context.Context) (any, error) {
		return nil, boom
	}))

	snap := rec.waitFor(t, StatusFailed)
	ae, ok := snap.Err.(*verrors.AdminError)
	if !ok || ae.Code != "E002" {
		t.Fatalf("Err = %v, want E002", snap.Err)
	}
	if !errors.Is(snap.Err, boom) {
		t.Error("Underlying loader error not wrapped")
	}
}

func TestLoaderEmptyResult(t *testing.T) {
	rec := newSnapshotRecorder()
	l := NewLoader(WithOnChange(rec.record))

	l.Set(LoaderOf(func(ctx context.Context) (any, error) {
		return nil, nil
	}))

	snap := rec.waitFor(t, StatusFailed)
	ae, ok := snap.Err.(*verrors.AdminError)
	if !ok || ae.Code != "E003" {
		t.Fatalf("Err = %v, want E003 (resolved but empty)", snap.Err)
	}
}

func TestLoaderModuleUnwrap(t *testing.T) {
	rec := newSnapshotRecorder()
	l := NewLoader(WithOnChange(rec.record))

	def := stubComponent("module-default")
	l.Set(LoaderOf(func(ctx context.Context) (any, error) {
		return Module{Default: def}, nil
	}))

	snap := rec.waitFor(t, StatusLoaded)
	if snap.Component != def {
		t.Error("Module default not unwrapped")
	}
}

func TestLoaderPanicRecovered(t *testing.T) {
	rec := newSnapshotRecorder()
	l := NewLoader(WithOnChange(rec.record))

	l.Set(LoaderOf(func(ctx context.Context) (any, error) {
		panic("loader exploded")
	}))

	snap := rec.waitFor(t, StatusFailed)
	ae, ok := snap.Err.(*verrors.AdminError)
	if !ok || ae.Code != "E002" {
		t.Fatalf("Err = %v, want E002 from recovered panic", snap.Err)
	}
}

func TestLoaderDisposeDiscardsLateResult(t *testing.T) {
	var mu sync.Mutex
	var late []Snapshot
	l := NewLoader(WithOnChange(func(s Snapshot) {
		mu.Lock()
		late = append(late, s)
		mu.Unlock()
	}))

	release := make(chan struct{})
	done := make(chan struct{})
	l.Set(LoaderOf(func(ctx context.Context) (any, error) {
		<-release
		defer close(done)
		return stubComponent("late"), nil
	}))

	l.Dispose()
	close(release)
	<-done
	time.Sleep(20 * time.Millisecond)

	if got := l.State().Status; got != StatusIdle {
		t.Errorf("Status after dispose = %s, want idle", got)
	}
	mu.Lock()
	defer mu.Unlock()
	for _, s := range late {
		if s.Status == StatusLoaded {
			t.Error("Late result notified after Dispose")
		}
	}
}

func TestLoaderSetNilReturnsToIdle(t *testing.T) {
	l := NewLoader()
	l.Set(ComponentOf(stubComponent("x")))
	l.Set(nil)

	if got := l.State().Status; got != StatusIdle {
		t.Errorf("Status = %s, want idle after Set(nil)", got)
	}
}

func TestLoaderSetAfterDisposeIgnored(t *testing.T) {
	l := NewLoader()
	l.Dispose()
	l.Set(ComponentOf(stubComponent("x")))

	if got := l.State().Status; got != StatusIdle {
		t.Errorf("Set after Dispose applied: %s", got)
	}
}

func TestStatusString(t *testing.T) {
	for _, s := range []Status{StatusIdle, StatusLoading, StatusLoaded, StatusFailed} {
		if s.String() == "unknown" {
			t.Errorf("Status %d has no string form", s)
		}
	}
}
