// Package schema models the server-declared admin configuration.
//
// The server publishes, per collection and global, an optional view id and
// view-specific config for list and form surfaces (admin.list.view,
// admin.form.view). The Provider fetches and caches that document; a fetch
// failure degrades to the empty schema so route resolution is never blocked
// on the network.
package schema
