package panel

import (
	"github.com/vango-dev/vadmin/pkg/route"
	"github.com/vango-dev/vadmin/pkg/schema"
	"github.com/vango-dev/vadmin/pkg/view"
)

// ViewOptions assembles the competing configuration sources for one matched
// route: the declaration's override and static view name, the server
// schema's declared view name and config, and the registry. The result feeds
// view.Resolve unchanged.
//
// Only list, create, edit, and global-edit matches select views; any other
// kind yields empty options.
func (p *Panel) ViewOptions(m route.Match, sch schema.Schema) view.ResolveOptions {
	opts := view.ResolveOptions{
		Registry:          p.Registry,
		DefaultGlobalEdit: p.DefaultGlobalEdit,
	}

	switch m.Kind {
	case route.KindCollectionList:
		entry, _ := sch.Collection(m.Name)
		opts.SchemaView = entry.Admin.List.View
		if c, ok := p.Collection(m.Name); ok {
			opts.Override = c.ListOverride
			opts.StaticView = c.ListView
			opts.LocalConfig = overlay(entry.Admin.List.Config, c.ListConfig)
		} else {
			opts.LocalConfig = overlay(entry.Admin.List.Config, nil)
		}

	case route.KindCollectionCreate, route.KindCollectionEdit:
		entry, _ := sch.Collection(m.Name)
		opts.SchemaView = entry.Admin.Form.View
		if c, ok := p.Collection(m.Name); ok {
			opts.Override = c.EditOverride
			opts.StaticView = c.EditView
			opts.LocalConfig = overlay(entry.Admin.Form.Config, c.EditConfig)
		} else {
			opts.LocalConfig = overlay(entry.Admin.Form.Config, nil)
		}

	case route.KindGlobalEdit:
		entry, _ := sch.Global(m.Name)
		opts.SchemaView = entry.Admin.Form.View
		if g, ok := p.Global(m.Name); ok {
			opts.Override = g.Override
			opts.StaticView = g.EditView
			opts.LocalConfig = overlay(entry.Admin.Form.Config, g.Config)
		} else {
			opts.LocalConfig = overlay(entry.Admin.Form.Config, nil)
		}
	}

	return opts
}

// overlay shallow-merges local over base. Declaration config wins over
// server schema config key by key.
func overlay(base, local map[string]any) map[string]any {
	if len(base) == 0 && len(local) == 0 {
		return nil
	}
	merged := make(map[string]any, len(base)+len(local))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range local {
		merged[k] = v
	}
	return merged
}
