// Package vadmin provides the public API for the vadmin admin panel toolkit.
//
// This is the recommended import for most applications:
//
//	import "github.com/vango-dev/vadmin"
//
// Usage:
//
//	p := &vadmin.Panel{
//	    Title: "Barbershop",
//	    Collections: []vadmin.Collection{{Name: "appointments"}},
//	}
//	srv, err := vadmin.NewServer(vadmin.ServerOptions{Panel: p})
//	http.ListenAndServe(":3100", srv.Handler())
package vadmin

import (
	"github.com/vango-dev/vadmin/pkg/dashboard"
	"github.com/vango-dev/vadmin/pkg/panel"
	"github.com/vango-dev/vadmin/pkg/pref"
	"github.com/vango-dev/vadmin/pkg/route"
	"github.com/vango-dev/vadmin/pkg/schema"
	"github.com/vango-dev/vadmin/pkg/server"
	"github.com/vango-dev/vadmin/pkg/ui"
	"github.com/vango-dev/vadmin/pkg/upload"
	"github.com/vango-dev/vadmin/pkg/view"
)

// =============================================================================
// Panel declaration (re-export from pkg/panel)
// =============================================================================

// Panel is the root declarative description of an admin panel.
type Panel = panel.Panel

// Collection declares one list/edit entity pair.
type Collection = panel.Collection

// Global declares a singleton document with a single edit surface.
type Global = panel.Global

// Page declares a custom admin page mounted under the panel base path.
type Page = panel.Page

// =============================================================================
// UI primitives (re-export from pkg/ui)
// =============================================================================

// Component is anything that can render itself to a Node tree.
type Component = ui.Component

// Node is one element in the render tree.
type Node = ui.Node

// Func wraps a render function as a Component.
var Func = ui.Func

// El creates an element node.
var El = ui.El

// Text creates a text node.
var Text = ui.Text

// Fragment groups children without an enclosing element.
var Fragment = ui.Fragment

// RenderComponent renders a component to an HTML string.
var RenderComponent = ui.RenderComponent

// =============================================================================
// Route matching (re-export from pkg/route)
// =============================================================================

// RouteKind is the route classification discriminator.
type RouteKind = route.Kind

// Route classifications, in rule order.
const (
	RouteDashboard        = route.KindDashboard
	RouteCollectionList   = route.KindCollectionList
	RouteCollectionCreate = route.KindCollectionCreate
	RouteCollectionEdit   = route.KindCollectionEdit
	RouteGlobalEdit       = route.KindGlobalEdit
	RoutePage             = route.KindPage
	RouteNotFound         = route.KindNotFound
)

// Match is a classified admin path.
type Match = route.Match

// Known is the entity universe routes are matched against.
type Known = route.Known

// PageDef describes a registered custom admin page.
type PageDef = route.PageDef

// MatchPath classifies path segments against the known entities.
var MatchPath = route.MatchPath

// ParsePrefill extracts prefill.* query parameters into typed values.
var ParsePrefill = route.ParsePrefill

// =============================================================================
// View registry and resolution (re-export from pkg/view)
// =============================================================================

// ViewKind distinguishes the two registry namespaces.
type ViewKind = view.Kind

// Registry namespaces.
const (
	ViewList = view.KindList
	ViewEdit = view.KindEdit
)

// System default view ids.
const (
	DefaultListViewID = view.DefaultListViewID
	DefaultEditViewID = view.DefaultEditViewID
	GlobalEditViewID  = view.GlobalEditViewID
)

// ViewRegistry maps view ids to definitions, per namespace.
type ViewRegistry = view.Registry

// ViewDefinition is one registered view implementation.
type ViewDefinition = view.Definition

// Loadable supplies a component, directly or deferred.
type Loadable = view.Loadable

// EffectiveConfig is the resolved view plus its merged configuration.
type EffectiveConfig = view.EffectiveConfig

// NewViewRegistry creates an empty registry.
var NewViewRegistry = view.NewRegistry

// ComponentOf wraps a ready component as a Loadable.
var ComponentOf = view.ComponentOf

// LoaderOf wraps a deferred loader function as a Loadable.
var LoaderOf = view.LoaderOf

// ResolveView resolves the effective view and configuration for a match.
var ResolveView = view.Resolve

// =============================================================================
// Async view loading (re-export from pkg/view)
// =============================================================================

// Loader drives a Loadable through idle, loading, loaded, failed.
type Loader = view.Loader

// LoaderSnapshot is one observed loader state.
type LoaderSnapshot = view.Snapshot

// LoadStatus is the loader state discriminator.
type LoadStatus = view.Status

// Loader states.
const (
	LoadIdle    = view.StatusIdle
	LoadLoading = view.StatusLoading
	LoadLoaded  = view.StatusLoaded
	LoadFailed  = view.StatusFailed
)

// NewLoader creates a loader.
var NewLoader = view.NewLoader

// WithLoaderContext sets the context loads run under.
var WithLoaderContext = view.WithContext

// WithOnChange registers a state change callback.
var WithOnChange = view.WithOnChange

// =============================================================================
// Dashboard layout (re-export from pkg/dashboard)
// =============================================================================

// LayoutNode is one node in a dashboard layout tree.
type LayoutNode = dashboard.LayoutNode

// Widget is a leaf node occupying a column span.
type Widget = dashboard.Widget

// Section groups widgets under a label with optional chrome.
type Section = dashboard.Section

// Tabs shows one child set at a time.
type Tabs = dashboard.Tabs

// Tab is one labeled child set inside Tabs.
type Tab = dashboard.Tab

// Section chrome variants.
const (
	WrapperFlat        = dashboard.WrapperFlat
	WrapperCard        = dashboard.WrapperCard
	WrapperCollapsible = dashboard.WrapperCollapsible
)

// Section arrangement variants.
const (
	LayoutStack  = dashboard.LayoutStack
	LayoutGrid   = dashboard.LayoutGrid
	LayoutInline = dashboard.LayoutInline
)

// Flatten resolves a layout tree into render instructions.
var Flatten = dashboard.Flatten

// ParseLayout decodes a JSON layout document into a layout tree.
var ParseLayout = dashboard.ParseLayout

// ResolveSpanClass maps a column span to its responsive CSS classes.
var ResolveSpanClass = dashboard.ResolveSpanClass

// =============================================================================
// Entity schema (re-export from pkg/schema)
// =============================================================================

// Schema is a fetched entity schema document.
type Schema = schema.Schema

// SchemaProvider caches and refreshes a fetched schema.
type SchemaProvider = schema.Provider

// NewSchemaProvider creates a provider around a fetch function.
var NewSchemaProvider = schema.NewProvider

// NewHTTPFetcher fetches a schema document over HTTP.
var NewHTTPFetcher = schema.NewHTTPFetcher

// =============================================================================
// Preferences (re-export from pkg/pref)
// =============================================================================

// PrefStore persists user preference values.
type PrefStore = pref.Store

// PrefCache is a write-behind preference cache with optimistic updates.
type PrefCache = pref.Cache

// NewPrefCache creates a cache over a store.
var NewPrefCache = pref.NewCache

// NewMemoryPrefStore creates an in-process store.
var NewMemoryPrefStore = pref.NewMemoryStore

// =============================================================================
// Uploads (re-export from pkg/upload)
// =============================================================================

// UploadStore stages uploaded files until they are claimed.
type UploadStore = upload.Store

// NewDiskUploadStore stages files on the local filesystem.
var NewDiskUploadStore = upload.NewDiskStore

// NewS3UploadStore stages files in an S3 bucket.
var NewS3UploadStore = upload.NewS3Store

// =============================================================================
// Server (re-export from pkg/server)
// =============================================================================

// Server serves an admin panel over HTTP.
type Server = server.Server

// ServerOptions configures a Server.
type ServerOptions = server.Options

// NewServer creates a server for a panel.
var NewServer = server.New
