package server

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vadmin/pkg/dashboard"
	"github.com/vango-dev/vadmin/pkg/panel"
	"github.com/vango-dev/vadmin/pkg/pref"
	"github.com/vango-dev/vadmin/pkg/route"
	"github.com/vango-dev/vadmin/pkg/schema"
	"github.com/vango-dev/vadmin/pkg/ui"
	"github.com/vango-dev/vadmin/pkg/upload"
	"github.com/vango-dev/vadmin/pkg/view"
)

const tracerName = "vadmin"

// Options configures a Server.
type Options struct {
	// Panel is the declarative panel description. Required.
	Panel *panel.Panel

	// Schema supplies the server-declared schema. Nil means no schema;
	// resolution uses local configuration only.
	Schema *schema.Provider

	// Prefs backs per-user preferences. Nil uses an in-memory cache.
	Prefs *pref.Cache

	// Uploads enables the file staging endpoint when set.
	Uploads      upload.Store
	UploadConfig upload.Config

	// Logger defaults to slog.Default.
	Logger *slog.Logger

	// UserID extracts the acting user from a request, for preference
	// scoping. Defaults to a shared anonymous user.
	UserID func(*http.Request) string

	// LoadTimeout bounds how long a request waits for an async view
	// loader before rendering the loading state. Default 10s.
	LoadTimeout time.Duration
}

// Server serves one admin panel over HTTP: route matching, view resolution
// and loading, dashboard rendering, uploads, schema refresh push, and
// metrics.
type Server struct {
	panel       *panel.Panel
	schema      *schema.Provider
	prefs       *pref.Cache
	uploads     upload.Store
	uploadCfg   upload.Config
	logger      *slog.Logger
	userID      func(*http.Request) string
	loadTimeout time.Duration
	tracer      trace.Tracer
	hub         *refreshHub
}

// New validates the panel and builds a server around it.
func New(opts Options) (*Server, error) {
	if err := opts.Panel.Validate(); err != nil {
		return nil, err
	}

	s := &Server{
		panel:       opts.Panel,
		schema:      opts.Schema,
		prefs:       opts.Prefs,
		uploads:     opts.Uploads,
		uploadCfg:   opts.UploadConfig,
		logger:      opts.Logger,
		userID:      opts.UserID,
		loadTimeout: opts.LoadTimeout,
		tracer:      otel.Tracer(tracerName),
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.prefs == nil {
		s.prefs = pref.NewCache(pref.NewMemoryStore(), pref.WithLogger(s.logger))
	}
	if s.userID == nil {
		s.userID = func(*http.Request) string { return "anonymous" }
	}
	if s.loadTimeout <= 0 {
		s.loadTimeout = 10 * time.Second
	}
	s.hub = newRefreshHub(s.logger)
	return s, nil
}

// Handler returns the full HTTP surface: the admin UI mounted at the
// panel's base path, plus /metrics at the root.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Route(s.panel.Base(), func(r chi.Router) {
		r.Get("/_ws", s.handleWS)
		if s.uploads != nil {
			r.Method(http.MethodPost, "/_upload", upload.Handler(s.uploads, s.uploadCfg, s.logger))
		}
		r.Get("/", s.handleAdmin)
		r.Get("/*", s.handleAdmin)
	})

	r.Handle("/metrics", promhttp.Handler())
	return r
}

// handleAdmin is the match → resolve → load → render pipeline.
func (s *Server) handleAdmin(w http.ResponseWriter, r *http.Request) {
	segments := splitSegments(chi.URLParam(r, "*"))
	m := route.MatchPath(segments, s.panel.Known())

	ctx, span := s.tracer.Start(r.Context(), "vadmin "+r.URL.Path,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("vadmin.path", r.URL.Path),
			attribute.String("vadmin.route_kind", m.Kind.String()),
			attribute.String("vadmin.entity", m.Name),
		),
	)
	defer span.End()

	start := time.Now()
	defer func() {
		observeRequest(m.Kind.String(), time.Since(start))
	}()

	switch m.Kind {
	case route.KindDashboard:
		s.renderDashboard(ctx, w, r)
	case route.KindPage:
		s.renderPage(w, m)
	case route.KindNotFound:
		span.SetStatus(codes.Error, "route not found")
		s.renderState(w, http.StatusNotFound, notFoundView(s.panel.Base()))
	default:
		s.renderEntity(ctx, w, r, m, span)
	}
}

// renderEntity handles list, create, edit, and global-edit routes.
func (s *Server) renderEntity(ctx context.Context, w http.ResponseWriter, r *http.Request, m route.Match, span trace.Span) {
	sch := s.currentSchema(ctx)

	// A populated schema that omits the entity means it exists but is
	// hidden or unauthorized for this user. An empty schema (failed fetch,
	// no provider) never blocks routing.
	if !schemaEmpty(sch) && !sch.HasEntity(m.Name) {
		span.SetStatus(codes.Error, "restricted entity")
		s.logger.Warn("entity not in server schema", "entity", m.Name, "kind", m.Kind.String())
		s.renderState(w, http.StatusForbidden, restrictedView(m.Name, s.panel.Base()))
		return
	}

	cfg := view.Resolve(m, s.panel.ViewOptions(m, sch))

	if m.Kind == route.KindCollectionCreate {
		if prefill := route.ParsePrefill(r.URL.Query()); len(prefill) > 0 {
			cfg.Props["defaultValues"] = prefill
		}
	}

	if cfg.Loadable == nil {
		s.renderState(w, http.StatusOK, unknownViewNotice(cfg.ViewID))
		return
	}

	snap := s.awaitLoad(ctx, cfg.Loadable)
	switch snap.Status {
	case view.StatusLoaded:
		s.renderView(w, m, cfg, snap.Component)
	case view.StatusFailed:
		span.RecordError(snap.Err)
		span.SetStatus(codes.Error, "view load failed")
		s.renderState(w, http.StatusOK, loadFailedView(snap.Err))
	default:
		// Still loading at the timeout. Render the loading state; the
		// client retries.
		s.renderState(w, http.StatusOK, loadingView())
	}
}

// awaitLoad drives a loader to a terminal state, bounded by LoadTimeout.
func (s *Server) awaitLoad(ctx context.Context, loadable *view.Loadable) view.Snapshot {
	done := make(chan view.Snapshot, 4)
	loader := view.NewLoader(
		view.WithContext(ctx),
		view.WithLogger(s.logger),
		view.WithOnChange(func(snap view.Snapshot) {
			if snap.Status == view.StatusLoaded || snap.Status == view.StatusFailed {
				select {
				case done <- snap:
				default:
				}
			}
		}),
	)
	defer loader.Dispose()

	loader.Set(loadable)
	if snap := loader.State(); snap.Status == view.StatusLoaded || snap.Status == view.StatusFailed {
		return snap
	}

	timer := time.NewTimer(s.loadTimeout)
	defer timer.Stop()
	select {
	case snap := <-done:
		return snap
	case <-ctx.Done():
		return loader.State()
	case <-timer.C:
		return loader.State()
	}
}

// currentSchema fetches through the provider, or yields the empty schema
// when none is configured.
func (s *Server) currentSchema(ctx context.Context) schema.Schema {
	if s.schema == nil {
		return schema.Schema{}
	}
	return s.schema.Get(ctx)
}

func schemaEmpty(sch schema.Schema) bool {
	return len(sch.Collections) == 0 && len(sch.Globals) == 0
}

// renderDashboard flattens the panel's layout tree with this user's
// collapsed-section state applied.
func (s *Server) renderDashboard(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	collapsed := dashboard.NewCollapsedSections(s.prefs, s.userID(r), collapsedPrefPrefix)
	resolver := &dashboard.Resolver{
		Logger:    s.logger,
		Collapsed: collapsed.ResolverHook(ctx),
		ActiveTab: activeTabFromQuery(r),
	}
	instructions := resolver.FlattenAll(s.panel.Dashboard, s.panel.Columns())
	s.renderState(w, http.StatusOK, dashboardNode(instructions))
}

func (s *Server) renderPage(w http.ResponseWriter, m route.Match) {
	pg, ok := s.panel.PageByName(m.Name)
	if !ok || pg.Component == nil {
		s.renderState(w, http.StatusNotFound, notFoundView(s.panel.Base()))
		return
	}
	s.renderState(w, http.StatusOK, pg.Component.Render())
}

// renderView writes a resolved, loaded view with its props embedded for
// the client runtime.
func (s *Server) renderView(w http.ResponseWriter, m route.Match, cfg view.EffectiveConfig, comp ui.Component) {
	body := ui.El("div",
		comp.Render(),
		propsScript(cfg.Props),
	).WithAttr("data-route", m.Kind.String()).WithAttr("data-view", cfg.ViewID)

	s.renderState(w, http.StatusOK, body)
}

// renderState writes a node wrapped in the HTML shell.
func (s *Server) renderState(w http.ResponseWriter, status int, body *ui.Node) {
	writeShell(w, status, s.panel.Title, body)
}

// splitSegments turns the wildcard remainder into clean path segments.
// The root mount yields an empty slice, which matches as the dashboard.
func splitSegments(rest string) []string {
	rest = strings.Trim(rest, "/")
	if rest == "" {
		return nil
	}
	return strings.Split(rest, "/")
}

// activeTabFromQuery reads tab selections from ?tab.<tabsKey>=<tabID>.
func activeTabFromQuery(r *http.Request) func(tabsKey string) string {
	query := r.URL.Query()
	return func(tabsKey string) string {
		return query.Get("tab." + tabsKey)
	}
}
