// Package server turns a panel declaration into an HTTP surface.
//
// Requests under the panel's base path flow through one pipeline: path
// segments are matched to a route kind, the effective view configuration is
// resolved against the server schema and local declaration, the view is
// loaded through the loader state machine, and the result is rendered into
// the HTML shell. Every failure along the way renders a specific inline
// state: not found, restricted access, unknown view, or failed to load.
//
// The package also mounts the upload staging endpoint, a websocket channel
// for schema refresh push, and Prometheus metrics at /metrics.
package server
