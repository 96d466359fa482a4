// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/portfolio-service/internal/db"
	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/internal/types"
)

var (
	sortOrder   = []string{"sort_order ASC", "created_at ASC"}
	newestFirst = []string{"created_at DESC"}
)

func visibleOnly(query sq.SelectBuilder, filters types.Filters) sq.SelectBuilder {
	if filters.PublicOnly {
		query = query.Where(sq.Eq{"is_visible": true})
	}
	return query
}

var CategorySpec = TableSpec[types.Category]{
	Name:    "categories",
	Columns: []string{"id", "user_id", "name", "description", "color", "created_at", "updated_at"},
	OrderBy: newestFirst,
	Scan: func(row rowScanner) (*types.Category, error) {
		var c types.Category
		if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Description, &c.Color, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		return &c, nil
	},
}

var NicheSpec = TableSpec[types.Niche]{
	Name:     "niches",
	Columns:  []string{"id", "user_id", "title", "overview", "tools", "key_features", "image", "sort_order", "ai_driven", "created_at", "updated_at"},
	OrderBy:  sortOrder,
	Sortable: true,
	Scan: func(row rowScanner) (*types.Niche, error) {
		var n types.Niche
		if err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Overview, &n.Tools, &n.KeyFeatures, &n.Image, &n.SortOrder, &n.AIDriven, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		return &n, nil
	},
}

var TechnologySpec = TableSpec[types.Technology]{
	Name:     "technologies",
	Columns:  []string{"id", "user_id", "title", "type", "icon", "skills", "sort_order", "created_at", "updated_at"},
	OrderBy:  sortOrder,
	Sortable: true,
	Scan: func(row rowScanner) (*types.Technology, error) {
		var t types.Technology
		if err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Type, &t.Icon, &t.Skills, &t.SortOrder, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		return &t, nil
	},
}

var MenuSpec = TableSpec[types.Menu]{
	Name:     "menus",
	Columns:  []string{"id", "user_id", "menu_type", "section_id", "label", "icon", "link_url", "sort_order", "is_visible", "show_in_header", "show_in_footer", "show_in_mobile", "created_at", "updated_at"},
	OrderBy:  sortOrder,
	Sortable: true,
	Filter: func(query sq.SelectBuilder, filters types.Filters) sq.SelectBuilder {
		switch filters.Location {
		case types.LocationHeader:
			query = query.Where(sq.Eq{"show_in_header": true, "is_visible": true})
		case types.LocationFooter:
			query = query.Where(sq.Eq{"show_in_footer": true, "is_visible": true})
		case types.LocationMobile:
			query = query.Where(sq.Eq{"show_in_mobile": true, "is_visible": true})
		default:
			query = visibleOnly(query, filters)
		}
		return query
	},
	Scan: func(row rowScanner) (*types.Menu, error) {
		var m types.Menu
		if err := row.Scan(&m.ID, &m.UserID, &m.MenuType, &m.SectionID, &m.Label, &m.Icon, &m.LinkURL, &m.SortOrder, &m.IsVisible, &m.ShowInHeader, &m.ShowInFooter, &m.ShowInMobile, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		return &m, nil
	},
}

var DynamicSectionSpec = TableSpec[types.DynamicSection]{
	Name: "dynamic_sections",
	Columns: []string{
		"id", "user_id", "section_type", "title", "subtitle", "content", "image_url", "video_url",
		"alignment", "position_after", "is_visible", "sort_order", "section_id", "background_color",
		"cta_button_text", "cta_button_link", "embed_type", "embed_url", "accordion_items",
		"created_at", "updated_at",
	},
	OrderBy:  sortOrder,
	Sortable: true,
	Filter:   visibleOnly,
	// sections placed after the deleted one fall back to the default position
	BeforeDelete: func(ctx context.Context, sb sq.StatementBuilderType, ownerID, id string) error {
		_, err := sb.Update("dynamic_sections").
			Set("position_after", nil).
			Where(sq.Eq{"user_id": ownerID, "position_after": id}).
			ExecContext(ctx)
		return err
	},
	Scan: func(row rowScanner) (*types.DynamicSection, error) {
		var s types.DynamicSection
		err := row.Scan(
			&s.ID, &s.UserID, &s.SectionType, &s.Title, &s.Subtitle, &s.Content, &s.ImageURL, &s.VideoURL,
			&s.Alignment, &s.PositionAfter, &s.IsVisible, &s.SortOrder, &s.SectionID, &s.BackgroundColor,
			&s.CTAButtonText, &s.CTAButtonLink, &s.EmbedType, &s.EmbedURL, &s.AccordionItems,
			&s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		return &s, nil
	},
}

var ContactQuerySpec = TableSpec[types.ContactQuery]{
	Name:    "contact_queries",
	Columns: []string{"id", "user_id", "form_type", "name", "email", "phone", "company", "subject", "message", "status", "priority", "created_at", "updated_at"},
	OrderBy: newestFirst,
	Scan: func(row rowScanner) (*types.ContactQuery, error) {
		var q types.ContactQuery
		if err := row.Scan(&q.ID, &q.UserID, &q.FormType, &q.Name, &q.Email, &q.Phone, &q.Company, &q.Subject, &q.Message, &q.Status, &q.Priority, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		return &q, nil
	},
}

// Tables groups the tenant owned tables served by the content gateway.
type Tables struct {
	Projects       *ProjectStore
	ProjectImages  *ProjectImageStore
	Categories     *OwnedTable[types.Category]
	Niches         *OwnedTable[types.Niche]
	Technologies   *OwnedTable[types.Technology]
	Menus          *OwnedTable[types.Menu]
	Sections       *OwnedTable[types.DynamicSection]
	ContactQueries *OwnedTable[types.ContactQuery]
}

func NewTables(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Tables {
	return &Tables{
		Projects:       NewProjectStore(c, tracer, monitor, logger),
		ProjectImages:  NewProjectImageStore(c, tracer, monitor, logger),
		Categories:     NewOwnedTable(CategorySpec, c, tracer, monitor, logger),
		Niches:         NewOwnedTable(NicheSpec, c, tracer, monitor, logger),
		Technologies:   NewOwnedTable(TechnologySpec, c, tracer, monitor, logger),
		Menus:          NewOwnedTable(MenuSpec, c, tracer, monitor, logger),
		Sections:       NewOwnedTable(DynamicSectionSpec, c, tracer, monitor, logger),
		ContactQueries: NewOwnedTable(ContactQuerySpec, c, tracer, monitor, logger),
	}
}
