package route

import "strings"

// Kind is the route classification discriminator.
type Kind uint8

const (
	KindDashboard        Kind = iota // Admin root
	KindCollectionList               // /collections/:slug
	KindCollectionCreate             // /collections/:slug/create
	KindCollectionEdit               // /collections/:slug/:id
	KindGlobalEdit                   // /globals/:slug
	KindPage                         // Registered custom page
	KindNotFound                     // No rule matched
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindDashboard:
		return "dashboard"
	case KindCollectionList:
		return "collection-list"
	case KindCollectionCreate:
		return "collection-create"
	case KindCollectionEdit:
		return "collection-edit"
	case KindGlobalEdit:
		return "global-edit"
	case KindPage:
		return "page"
	case KindNotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// PageDef describes a registered custom admin page.
type PageDef struct {
	// Name identifies the page in the registry and in diagnostics.
	Name string

	// Path is the declared URL path. A leading slash is tolerated and
	// stripped during matching.
	Path string
}

// Known holds the entity names the matcher resolves against.
type Known struct {
	Collections map[string]bool
	Globals     map[string]bool

	// Pages are scanned in registration order; the first match wins.
	Pages []PageDef
}

// Match is the result of classifying one URL's path segments.
// Exactly one Kind is active; the value is immutable once produced.
type Match struct {
	Kind Kind

	// Name is the collection, global, or page name, depending on Kind.
	Name string

	// ID is the document id for KindCollectionEdit.
	ID string

	// Page is the matched definition for KindPage.
	Page *PageDef
}

// MatchPath classifies path segments into a Match.
//
// Rules apply in order, first match wins:
//
//  1. Empty segment list is the dashboard.
//  2. "collections/<slug>" is a list, "collections/<slug>/create" a create
//     form, "collections/<slug>/<id>" an edit form. A document id literally
//     named "create" is therefore unreachable; that is the documented
//     behavior, not an oversight.
//  3. "globals/<slug>" is a global edit only when the slug names a known
//     global. An unknown slug falls through so custom pages can claim the
//     prefix.
//  4. Custom pages match on their declared path (leading slash stripped)
//     against either the first segment or the full joined path.
//  5. Anything else is not-found.
//
// Collections and globals short-circuit before pages are considered, so a
// page can never shadow a collection or global route. MatchPath is total:
// it never panics and always returns exactly one variant.
func MatchPath(segments []string, known Known) Match {
	if len(segments) == 0 {
		return Match{Kind: KindDashboard}
	}

	if segments[0] == "collections" && len(segments) >= 2 {
		slug := segments[1]
		switch {
		case len(segments) == 2:
			return Match{Kind: KindCollectionList, Name: slug}
		case segments[2] == "create":
			return Match{Kind: KindCollectionCreate, Name: slug}
		default:
			return Match{Kind: KindCollectionEdit, Name: slug, ID: segments[2]}
		}
	}

	if segments[0] == "globals" && len(segments) >= 2 && known.Globals[segments[1]] {
		return Match{Kind: KindGlobalEdit, Name: segments[1]}
	}

	joined := strings.Join(segments, "/")
	for i := range known.Pages {
		page := &known.Pages[i]
		declared := strings.TrimPrefix(page.Path, "/")
		if declared == segments[0] || declared == joined {
			return Match{Kind: KindPage, Name: page.Name, Page: page}
		}
	}

	return Match{Kind: KindNotFound}
}
