package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vadmin/internal/config"
	"github.com/vango-dev/vadmin/pkg/dashboard"
	"github.com/vango-dev/vadmin/pkg/panel"
	"github.com/vango-dev/vadmin/pkg/schema"
	"github.com/vango-dev/vadmin/pkg/server"
	"github.com/vango-dev/vadmin/pkg/ui"
	"github.com/vango-dev/vadmin/pkg/upload"
	"github.com/vango-dev/vadmin/pkg/view"
)

func serveCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview the panel described by vadmin.json",
		Long: `Start a preview server for the panel described by vadmin.json.

Entities get placeholder table and form views so the routing, resolution,
and dashboard layout can be exercised before any real views exist. The
config file is watched; edits apply without a restart.

Examples:
  vadmin serve
  vadmin serve --port=8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, host)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from vadmin.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from vadmin.json)")

	return cmd
}

func runServe(port int, host string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	if port != 0 {
		cfg.Port = port
	}
	if host != "" {
		cfg.Host = host
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	p, err := panelFromConfig(cfg)
	if err != nil {
		return err
	}

	opts := server.Options{
		Panel:  p,
		Logger: logger,
	}
	if cfg.SchemaURL != "" {
		opts.Schema = schema.NewProvider(
			schema.NewHTTPFetcher(cfg.SchemaURL, nil),
			schema.WithLogger(logger),
		)
	}
	if cfg.Upload.Dir != "" {
		store, err := upload.NewDiskStore(cfg.Upload.Dir, cfg.Upload.MaxFileSize)
		if err != nil {
			return err
		}
		opts.Uploads = store
		opts.UploadConfig = upload.Config{MaxFileSize: cfg.Upload.MaxFileSize}
	}

	srv, err := server.New(opts)
	if err != nil {
		return err
	}

	watcher, err := config.Watch(cfg, logger, func(*config.Config) {
		// Entity changes need a restart; schema-side changes push live.
		if opts.Schema != nil {
			opts.Schema.Invalidate()
		}
		srv.NotifySchemaChanged()
	})
	if err != nil {
		logger.Warn("config watching disabled", "error", err)
	} else {
		defer watcher.Close()
	}

	success("Panel %q ready", cfg.Name)
	info("http://%s%s", cfg.Addr(), p.Base())
	return http.ListenAndServe(cfg.Addr(), srv.Handler())
}

// panelFromConfig builds a preview panel: entities from the config, with
// placeholder views standing in for the project's real components.
func panelFromConfig(cfg *config.Config) (*panel.Panel, error) {
	reg := view.NewRegistry()
	reg.MustRegister(view.KindList, view.DefaultListViewID, view.Definition{
		Loadable: view.ComponentOf(placeholder("table view")),
	})
	reg.MustRegister(view.KindEdit, view.DefaultEditViewID, view.Definition{
		Loadable: view.ComponentOf(placeholder("form view")),
	})

	p := &panel.Panel{
		Title:             cfg.Name,
		BasePath:          cfg.BasePath,
		DashboardColumns:  cfg.Dashboard.Columns,
		Registry:          reg,
		DefaultGlobalEdit: view.ComponentOf(placeholder("global editor")),
	}
	for _, name := range cfg.Collections {
		p.Collections = append(p.Collections, panel.Collection{Name: name})
	}
	for _, name := range cfg.Globals {
		p.Globals = append(p.Globals, panel.Global{Name: name})
	}
	for _, pg := range cfg.Pages {
		p.Pages = append(p.Pages, panel.Page{
			Name:      pg.Name,
			Path:      pg.Path,
			Component: placeholder("page " + pg.Name),
		})
	}

	if lp := cfg.LayoutPath(); lp != "" {
		data, err := os.ReadFile(lp)
		if err != nil {
			return nil, fmt.Errorf("reading dashboard layout: %w", err)
		}
		layout, err := dashboard.ParseLayout(data)
		if err != nil {
			return nil, fmt.Errorf("parsing dashboard layout: %w", err)
		}
		p.Dashboard = layout
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func placeholder(label string) ui.Component {
	return ui.Func(func() *ui.Node {
		return ui.El("div", ui.Text("Placeholder: "+label)).
			WithClass("vadmin-placeholder")
	})
}
