package view

import (
	"context"

	verrors "github.com/vango-dev/vadmin/internal/errors"
	"github.com/vango-dev/vadmin/pkg/ui"
)

// Module mirrors a module-like loader result carrying a default export.
// Loaders may return one of these instead of a bare component; the loader
// state machine unwraps Default.
type Module struct {
	Default ui.Component
}

// LoaderFunc produces a component, possibly after asynchronous work.
// It may return a ui.Component, a Module, or a *Module.
type LoaderFunc func(ctx context.Context) (any, error)

// Loadable is an explicitly tagged component source: either a ready
// component or a deferred loader. There is no arity or shape inspection;
// the construction site decides which one it is.
//
// Identity is pointer identity. The loader state machine re-runs only when
// it observes a different *Loadable, so callers should construct a Loadable
// once and reuse it rather than rebuilding it per render.
type Loadable struct {
	component ui.Component
	loader    LoaderFunc
}

// ComponentOf wraps an already-usable component.
func ComponentOf(c ui.Component) *Loadable {
	return &Loadable{component: c}
}

// LoaderOf wraps a deferred loader function.
func LoaderOf(fn LoaderFunc) *Loadable {
	return &Loadable{loader: fn}
}

// Ready returns the component when the loadable holds one directly.
func (l *Loadable) Ready() (ui.Component, bool) {
	if l.component != nil {
		return l.component, true
	}
	return nil, false
}

// invoke runs the deferred loader and normalizes its result.
//
// The error taxonomy distinguishes "failed to load" (the loader returned an
// error, code E002) from "resolved but empty" (the loader succeeded but
// produced nothing usable, code E003). Both render the same category of
// inline error UI; the codes keep them apart in diagnostics.
func (l *Loadable) invoke(ctx context.Context) (ui.Component, error) {
	if l.loader == nil {
		if l.component != nil {
			return l.component, nil
		}
		return nil, verrors.New("E003").WithDetail("loadable holds neither a component nor a loader")
	}

	result, err := l.loader(ctx)
	if err != nil {
		return nil, verrors.New("E002").Wrap(err)
	}

	switch v := result.(type) {
	case nil:
		return nil, verrors.New("E003")
	case Module:
		if v.Default == nil {
			return nil, verrors.New("E003").WithDetail("module has no default component")
		}
		return v.Default, nil
	case *Module:
		if v == nil || v.Default == nil {
			return nil, verrors.New("E003").WithDetail("module has no default component")
		}
		return v.Default, nil
	case ui.Component:
		return v, nil
	default:
		return nil, verrors.New("E003").WithDetail("loader returned an unusable value")
	}
}
