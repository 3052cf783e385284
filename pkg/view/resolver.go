package view

import (
	"github.com/vango-dev/vadmin/pkg/route"
	"github.com/vango-dev/vadmin/pkg/ui"
)

// EffectiveConfig is the fully merged, precedence-resolved configuration
// for one route resolution. It is produced fresh per resolution and never
// mutated afterwards, only replaced.
type EffectiveConfig struct {
	// ViewID is the registry id that was selected. Empty when an explicit
	// override component bypassed selection entirely.
	ViewID string

	// Loadable supplies the component. Nil means the resolved id had no
	// registry entry; the caller renders an "unknown view" state.
	Loadable *Loadable

	// Props is the shallow overlay of the definition's base config and the
	// route's local config, local keys winning. Always non-nil.
	Props map[string]any
}

// ResolveOptions carries the competing configuration sources for Resolve.
type ResolveOptions struct {
	// Override is the caller-level escape hatch: when set, it is used
	// directly and the registry is skipped.
	Override ui.Component

	// SchemaView is the view id declared by server schema metadata.
	SchemaView string

	// StaticView is the view id from local static configuration.
	StaticView string

	// LocalConfig is the route's per-collection view configuration,
	// shallow-merged over the definition's base config.
	LocalConfig map[string]any

	// Registry resolves view ids. Required unless Override is set or the
	// route is a global edit with no explicit view selection.
	Registry *Registry

	// DefaultGlobalEdit is the dedicated loadable used for global edit
	// routes when neither schema nor static configuration names a view.
	// Globals deliberately never fall back to the shared "form" entry.
	DefaultGlobalEdit *Loadable
}

// GlobalEditViewID is the pseudo id reported when the dedicated global-edit
// default is used without a registry lookup.
const GlobalEditViewID = "global-edit"

// Resolve merges the four configuration sources into one EffectiveConfig.
//
// Precedence, highest first: explicit override, schema-declared view name,
// statically configured view name, system default id ("table" for lists,
// "form" for edit/create). The selection tiers pick a view id; only the
// winning definition's BaseConfig and the route's LocalConfig are merged.
//
// Resolve is deterministic and idempotent: the same inputs produce deeply
// equal results.
func Resolve(m route.Match, opts ResolveOptions) EffectiveConfig {
	if opts.Override != nil {
		return EffectiveConfig{
			Loadable: ComponentOf(opts.Override),
			Props:    mergeProps(nil, opts.LocalConfig),
		}
	}

	if m.Kind == route.KindGlobalEdit && opts.SchemaView == "" && opts.StaticView == "" {
		return EffectiveConfig{
			ViewID:   GlobalEditViewID,
			Loadable: opts.DefaultGlobalEdit,
			Props:    mergeProps(nil, opts.LocalConfig),
		}
	}

	kind := kindFor(m)
	id := opts.SchemaView
	if id == "" {
		id = opts.StaticView
	}
	if id == "" {
		if kind == KindList {
			id = DefaultListViewID
		} else {
			id = DefaultEditViewID
		}
	}

	if opts.Registry == nil {
		return EffectiveConfig{ViewID: id, Props: mergeProps(nil, opts.LocalConfig)}
	}

	def, ok := opts.Registry.Lookup(kind, id)
	if !ok {
		// Unknown view id: reported, non-fatal. The caller renders an
		// inline notice naming the id.
		return EffectiveConfig{ViewID: id, Props: mergeProps(nil, opts.LocalConfig)}
	}

	return EffectiveConfig{
		ViewID:   id,
		Loadable: def.Loadable,
		Props:    mergeProps(def.BaseConfig, opts.LocalConfig),
	}
}

// kindFor maps a route match to the registry namespace it resolves in.
func kindFor(m route.Match) Kind {
	if m.Kind == route.KindCollectionList {
		return KindList
	}
	return KindEdit
}

// mergeProps shallow-overlays local over base into a fresh map.
func mergeProps(base, local map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(local))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range local {
		merged[k] = v
	}
	return merged
}
