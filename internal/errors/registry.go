package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// View Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryView,
		Message:  "Unknown view id",
		Detail:   "The resolved view id has no entry in the view registry for this kind. The rest of the page continues to work; register the view or fix the configured name.",
		DocURL:   "https://vango.dev/docs/vadmin/errors/E001",
	},
	"E002": {
		Category: CategoryView,
		Message:  "Failed to load view component",
		Detail:   "The view loader returned an error or panicked. The error is recovered into an inline error state.",
		DocURL:   "https://vango.dev/docs/vadmin/errors/E002",
	},
	"E003": {
		Category: CategoryView,
		Message:  "View loader produced no component",
		Detail:   "The loader resolved without error but returned nothing usable. Check that the loader returns a Component or a Module with a Default.",
		DocURL:   "https://vango.dev/docs/vadmin/errors/E003",
	},
	"E004": {
		Category: CategoryView,
		Message:  "View already resolved",
		Detail:   "A view id cannot be re-registered after it has been resolved. Replacing a definition mid-session is undefined behavior.",
		DocURL:   "https://vango.dev/docs/vadmin/errors/E004",
	},

	// ============================================
	// Routing Errors (E020-E039)
	// ============================================

	"E020": {
		Category: CategoryRouting,
		Message:  "Entity not present in server schema",
		Detail:   "The matched route names a collection or global that the server schema does not declare. It may exist but be hidden or unauthorized.",
		DocURL:   "https://vango.dev/docs/vadmin/errors/E020",
	},

	// ============================================
	// Schema Errors (E040-E059)
	// ============================================

	"E040": {
		Category: CategorySchema,
		Message:  "Schema fetch failed",
		Detail:   "The server schema could not be fetched. Route resolution degrades to local configuration and registry defaults.",
		DocURL:   "https://vango.dev/docs/vadmin/errors/E040",
	},

	// ============================================
	// Config Errors (E100-E119)
	// ============================================

	"E100": {
		Category: CategoryConfig,
		Message:  "vadmin.json not found",
		Detail:   "No vadmin.json was found in the current directory or any parent.",
		DocURL:   "https://vango.dev/docs/vadmin/errors/E100",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Invalid vadmin.json",
		Detail:   "The configuration file could not be parsed.",
		DocURL:   "https://vango.dev/docs/vadmin/errors/E101",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Could not write vadmin.json",
		DocURL:   "https://vango.dev/docs/vadmin/errors/E102",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Invalid panel declaration",
		Detail:   "The panel configuration is self-contradictory: an entity is unnamed or declared twice.",
		DocURL:   "https://vango.dev/docs/vadmin/errors/E103",
	},

	// ============================================
	// Upload Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryUpload,
		Message:  "Upload exceeds size limit",
		DocURL:   "https://vango.dev/docs/vadmin/errors/E120",
	},
	"E121": {
		Category: CategoryUpload,
		Message:  "Uploaded file not found",
		DocURL:   "https://vango.dev/docs/vadmin/errors/E121",
	},
}
