package dashboard

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/vango-dev/vadmin/pkg/pref"
)

func collapseCache() *pref.Cache {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return pref.NewCache(pref.NewMemoryStore(), pref.Synchronous(), pref.WithLogger(logger))
}

func TestCollapsedSectionsDefaults(t *testing.T) {
	ctx := context.Background()
	cs := NewCollapsedSections(collapseCache(), "u1", "dashboard:collapsed:")

	if got := cs.Collapsed(ctx, "unknown", true); !got {
		t.Error("Unknown section should use its declared default (collapsed)")
	}
	if got := cs.Collapsed(ctx, "unknown", false); got {
		t.Error("Unknown section should use its declared default (open)")
	}
}

func TestCollapsedSectionsStoredWins(t *testing.T) {
	ctx := context.Background()
	cs := NewCollapsedSections(collapseCache(), "u1", "dashboard:collapsed:")

	cs.SetCollapsed(ctx, "filters", false)
	if cs.Collapsed(ctx, "filters", true) {
		t.Error("Stored preference should override the declared default")
	}

	cs.SetCollapsed(ctx, "filters", true)
	if !cs.Collapsed(ctx, "filters", false) {
		t.Error("Toggle not applied")
	}
}

func TestCollapsedSectionsResolverHook(t *testing.T) {
	ctx := context.Background()
	cs := NewCollapsedSections(collapseCache(), "u1", "dashboard:collapsed:")
	cs.SetCollapsed(ctx, "filters", true)

	r := &Resolver{Collapsed: cs.ResolverHook(ctx)}
	out := r.Flatten(Section{ID: "filters", Wrapper: WrapperCollapsible}, 12)
	if !out[0].Collapsed {
		t.Error("Resolver hook did not surface the stored state")
	}
}

func TestCollapsedSectionsUserIsolation(t *testing.T) {
	ctx := context.Background()
	cache := collapseCache()
	a := NewCollapsedSections(cache, "alice", "dashboard:collapsed:")
	b := NewCollapsedSections(cache, "bob", "dashboard:collapsed:")

	a.SetCollapsed(ctx, "filters", true)
	if b.Collapsed(ctx, "filters", false) {
		t.Error("Collapsed state leaked between users")
	}
}
