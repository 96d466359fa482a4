// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	httpTypes "github.com/canonical/portfolio-service/internal/http/types"
	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/types"
	"github.com/canonical/portfolio-service/pkg/resolver"
)

const (
	SectionTypeFixed   = "hardcoded"
	SectionTypeDynamic = "dynamic"
)

// SectionOption is an entry of the menu editor's section dropdown.
type SectionOption struct {
	ID        string  `json:"id"`
	SectionID *string `json:"section_id,omitempty"`
	Title     string  `json:"title"`
	Type      string  `json:"type"`
}

// sections every portfolio page renders
func fixedSections() []SectionOption {
	return []SectionOption{
		{ID: "hero", Title: "Hero Section", Type: SectionTypeFixed},
		{ID: "portfolio", Title: "Portfolio Section", Type: SectionTypeFixed},
		{ID: "technologies", Title: "Technologies Section", Type: SectionTypeFixed},
		{ID: "domains", Title: "Domains & Niche Section", Type: SectionTypeFixed},
		{ID: "projectCycle", Title: "Project Life Cycle", Type: SectionTypeFixed},
		{ID: "prompts", Title: "Prompts Section", Type: SectionTypeFixed},
		{ID: "gallery", Title: "Gallery Section", Type: SectionTypeFixed},
		{ID: "footer", Title: "Footer", Type: SectionTypeFixed},
	}
}

// MenuSections lists the fixed page sections followed by the tenant's
// dynamic sections. Without a tenant the list is empty.
func (g *Gateways) MenuSections(ctx context.Context, tenantID string) ([]SectionOption, error) {
	ctx, span := g.tracer.Start(ctx, "content.Gateways.MenuSections")
	defer span.End()

	if tenantID == "" {
		return []SectionOption{}, nil
	}

	sections, err := g.Sections.ListOwned(ctx, tenantID, types.Filters{})
	if err != nil {
		return nil, err
	}

	options := fixedSections()
	for _, s := range sections {
		options = append(options, sectionOption(s))
	}

	return options, nil
}

func sectionOption(s *types.DynamicSection) SectionOption {
	o := SectionOption{ID: s.ID, Type: SectionTypeDynamic}

	if s.SectionID != nil && *s.SectionID != "" {
		o.SectionID = s.SectionID
	}

	if s.Title != nil && *s.Title != "" {
		o.Title = *s.Title
	} else {
		o.Title = fmt.Sprintf("Dynamic Section (%s)", s.SectionType)
	}

	return o
}

// menuSectionsHandler serves GET /api/menus/sections for the tenant the
// resolver finds, token first and request domain second.
func menuSectionsHandler(g *Gateways, logger logging.LoggerInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := resolver.FromContext(r.Context())

		options, err := g.MenuSections(r.Context(), res.TenantID)
		if err != nil {
			if werr := httpTypes.WriteError(w, http.StatusInternalServerError, "Failed to fetch sections"); werr != nil {
				logger.Errorf("failed to encode response: %v", werr)
			}
			return
		}

		if err := httpTypes.WriteData(w, http.StatusOK, options, ""); err != nil {
			logger.Errorf("failed to encode response: %v", err)
		}
	}
}

func registerMenuSections(mux *chi.Mux, g *Gateways, cfg APIConfig) {
	mux.With(resolver.Middleware(cfg.Resolver)).Get("/api/menus/sections", menuSectionsHandler(g, g.logger))
}
