// Package route classifies admin URL path segments into route matches.
//
// The matcher is a pure function over already-split path segments: no I/O,
// no side effects, total over all inputs. The host HTTP mux owns URL
// parsing; this package only decides what an admin destination means:
//
//	m := route.MatchPath([]string{"collections", "posts", "42"}, known)
//	// m.Kind == route.KindCollectionEdit, m.Name == "posts", m.ID == "42"
//
// It also parses the "prefill.<field>" query-parameter convention that
// seeds default values on create routes.
package route
