package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vadmin/internal/config"
	"github.com/vango-dev/vadmin/pkg/route"
)

func routesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes [path]",
		Short: "Resolve a path against vadmin.json",
		Long: `Resolve a URL path against the entities declared in vadmin.json and
print the classification. With no argument, prints the route table.

Examples:
  vadmin routes
  vadmin routes /collections/appointments/create
  vadmin routes /globals/settings`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}
			known := knownFromConfig(cfg)

			if len(args) == 0 {
				printRouteTable(cfg)
				return nil
			}

			segments := splitPath(args[0])
			m := route.MatchPath(segments, known)

			fmt.Printf("%s\n", args[0])
			fmt.Printf("  kind:   %s\n", m.Kind)
			if m.Name != "" {
				fmt.Printf("  name:   %s\n", m.Name)
			}
			if m.ID != "" {
				fmt.Printf("  id:     %s\n", m.ID)
			}
			if m.Page != nil {
				fmt.Printf("  page:   %s (%s)\n", m.Page.Name, m.Page.Path)
			}
			return nil
		},
	}
	return cmd
}

func knownFromConfig(cfg *config.Config) route.Known {
	known := route.Known{
		Collections: make(map[string]bool, len(cfg.Collections)),
		Globals:     make(map[string]bool, len(cfg.Globals)),
	}
	for _, name := range cfg.Collections {
		known.Collections[name] = true
	}
	for _, name := range cfg.Globals {
		known.Globals[name] = true
	}
	for _, pg := range cfg.Pages {
		known.Pages = append(known.Pages, route.PageDef{Name: pg.Name, Path: pg.Path})
	}
	return known
}

func printRouteTable(cfg *config.Config) {
	base := cfg.BasePath
	fmt.Printf("%s  (dashboard)\n", base)
	for _, name := range cfg.Collections {
		fmt.Printf("%s/collections/%s  (list)\n", base, name)
		fmt.Printf("%s/collections/%s/create  (create)\n", base, name)
		fmt.Printf("%s/collections/%s/:id  (edit)\n", base, name)
	}
	for _, name := range cfg.Globals {
		fmt.Printf("%s/globals/%s  (global edit)\n", base, name)
	}
	for _, pg := range cfg.Pages {
		fmt.Printf("%s/%s  (page %s)\n", base, strings.TrimPrefix(pg.Path, "/"), pg.Name)
	}
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
