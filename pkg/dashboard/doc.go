// Package dashboard resolves recursive dashboard layout trees into flat,
// ordered render instructions.
//
// A layout is a tree of widgets (leaves with a 1..12 column span), sections
// (wrapped groups with their own arrangement), and tabs (mutually exclusive
// panes, resolved lazily). Flattening clamps spans, computes responsive
// span classes, derives stable keys, applies per-user collapsed state, and
// drops unrecognized or over-deep nodes instead of failing. Hand-authored
// configuration degrades, it never crashes.
package dashboard
