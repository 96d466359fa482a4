// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"github.com/go-chi/chi/v5"

	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/storage"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/internal/types"
	"github.com/canonical/portfolio-service/internal/validation"
)

// Gateways holds one gateway per content kind.
type Gateways struct {
	Projects       *Gateway[types.Project]
	Categories     *Gateway[types.Category]
	Niches         *Gateway[types.Niche]
	Technologies   *Gateway[types.Technology]
	Gallery        *Gateway[types.GalleryImage]
	Settings       *Gateway[types.Setting]
	Menus          *Gateway[types.Menu]
	Sections       *Gateway[types.DynamicSection]
	ContactQueries *Gateway[types.ContactQuery]
	Images         *ProjectImages

	settings *Settings

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RegisterEndpoints mounts the API of every content kind.
func (g *Gateways) RegisterEndpoints(mux *chi.Mux, cfg APIConfig) {
	NewAPI(g.Projects, func() Payload { return new(ProjectPayload) }, cfg, g.tracer, g.monitor, g.logger).RegisterEndpoints(mux)
	NewAPI(g.Categories, func() Payload { return new(CategoryPayload) }, cfg, g.tracer, g.monitor, g.logger).RegisterEndpoints(mux)
	NewAPI(g.Niches, func() Payload { return new(NichePayload) }, cfg, g.tracer, g.monitor, g.logger).RegisterEndpoints(mux)
	NewAPI(g.Technologies, func() Payload { return new(TechnologyPayload) }, cfg, g.tracer, g.monitor, g.logger).RegisterEndpoints(mux)
	NewAPI(g.Gallery, nil, cfg, g.tracer, g.monitor, g.logger).RegisterEndpoints(mux)
	NewAPI(g.Menus, func() Payload { return new(MenuPayload) }, cfg, g.tracer, g.monitor, g.logger).RegisterEndpoints(mux)
	NewAPI(g.Sections, func() Payload { return new(DynamicSectionPayload) }, cfg, g.tracer, g.monitor, g.logger).RegisterEndpoints(mux)
	NewAPI(g.ContactQueries, func() Payload { return new(ContactQueryPayload) }, cfg, g.tracer, g.monitor, g.logger).RegisterEndpoints(mux)
	NewSettingsAPI(g.Settings, g.settings, cfg, g.tracer, g.monitor, g.logger).RegisterEndpoints(mux)
	NewProjectImagesAPI(g.Images, cfg, g.tracer, g.monitor, g.logger).RegisterEndpoints(mux)
	registerMenuSections(mux, g, cfg)
}

func NewGateways(
	tables *storage.Tables,
	settings SettingsStorageInterface,
	gallery *GalleryStore,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Gateways {
	v := validation.NewValidator()
	g := new(Gateways)

	g.Projects = NewGateway[types.Project](tables.Projects, Options[types.Project]{Kind: "projects", Demo: DemoProjects}, v, tracer, monitor, logger)
	g.Categories = NewGateway[types.Category](tables.Categories, Options[types.Category]{Kind: "categories", Demo: DemoCategories}, v, tracer, monitor, logger)
	g.Niches = NewGateway[types.Niche](tables.Niches, Options[types.Niche]{Kind: "niches", Demo: DemoNiches, Sortable: true}, v, tracer, monitor, logger)
	g.Technologies = NewGateway[types.Technology](tables.Technologies, Options[types.Technology]{Kind: "technologies", Demo: DemoTechnologies, Sortable: true}, v, tracer, monitor, logger)
	g.Gallery = NewGateway[types.GalleryImage](gallery, Options[types.GalleryImage]{Kind: "gallery", ReadOnly: true}, v, tracer, monitor, logger)
	g.Settings = NewGateway[types.Setting](NewSettingsStore(settings), Options[types.Setting]{Kind: "settings", Demo: DemoSettings, ReadOnly: true}, v, tracer, monitor, logger)
	g.Menus = NewGateway[types.Menu](tables.Menus, Options[types.Menu]{Kind: "menus", Sortable: true}, v, tracer, monitor, logger)
	g.Sections = NewGateway[types.DynamicSection](tables.Sections, Options[types.DynamicSection]{Kind: "dynamic-sections", Sortable: true}, v, tracer, monitor, logger)
	g.ContactQueries = NewGateway[types.ContactQuery](tables.ContactQueries, Options[types.ContactQuery]{Kind: "contact-queries", Fallback: true}, v, tracer, monitor, logger)

	g.Images = NewProjectImages(tables.ProjectImages, v, tracer, monitor, logger)

	g.settings = NewSettings(settings, tracer, monitor, logger)

	g.tracer = tracer
	g.monitor = monitor
	g.logger = logger

	return g
}
