package dashboard

import (
	"context"

	"github.com/vango-dev/vadmin/pkg/pref"
)

// CollapsedSections resolves and persists per-user collapsed state for
// collapsible sections, backed by an optimistic preference cache.
//
// The stored value wins; a section with no stored preference falls back to
// its declared default. Toggles apply locally first and persist in the
// background (pref.Cache semantics), so readers may briefly observe state
// the backend has not confirmed yet.
type CollapsedSections struct {
	cache     *pref.Cache
	userID    string
	keyPrefix string
}

// NewCollapsedSections creates a manager for one user and preference
// namespace (e.g. "dashboard:collapsed:").
func NewCollapsedSections(cache *pref.Cache, userID, keyPrefix string) *CollapsedSections {
	return &CollapsedSections{
		cache:     cache,
		userID:    userID,
		keyPrefix: keyPrefix,
	}
}

// Collapsed returns the effective collapsed state for a section.
func (c *CollapsedSections) Collapsed(ctx context.Context, sectionID string, defaultCollapsed bool) bool {
	value, err := c.cache.Get(ctx, c.userID, c.keyPrefix+sectionID)
	if err != nil {
		return defaultCollapsed
	}
	if collapsed, ok := value.(bool); ok {
		return collapsed
	}
	return defaultCollapsed
}

// SetCollapsed records a toggle, optimistically.
func (c *CollapsedSections) SetCollapsed(ctx context.Context, sectionID string, collapsed bool) {
	c.cache.Set(ctx, c.userID, c.keyPrefix+sectionID, collapsed)
}

// ResolverHook adapts the manager to Resolver.Collapsed.
func (c *CollapsedSections) ResolverHook(ctx context.Context) func(sectionID string, defaultCollapsed bool) bool {
	return func(sectionID string, defaultCollapsed bool) bool {
		return c.Collapsed(ctx, sectionID, defaultCollapsed)
	}
}
