// Package panel holds the declarative description of an admin panel:
// collections, globals, custom pages, the dashboard layout, and the view
// registry wiring. A Panel is plain data; the server package turns it into
// a running HTTP surface.
package panel
