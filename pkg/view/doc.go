// Package view selects and loads the component that renders an admin route.
//
// Three pieces cooperate:
//
//   - Registry: a (kind, id)-keyed table of view definitions, where kind is
//     "list" or "edit" and each definition holds a Loadable plus base config.
//   - Resolve: merges the four competing configuration sources — explicit
//     override, server-schema view name, static view name, system default —
//     into one EffectiveConfig per route resolution.
//   - Loader: a small state machine (idle → loading → {loaded | failed})
//     that drives a Loadable to a renderable component, guarded against
//     duplicate invocations and stale results.
//
// A Loadable is explicitly tagged as either a ready component or a deferred
// loader; nothing is inferred from function shape.
package view
