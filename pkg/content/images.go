// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	httpTypes "github.com/canonical/portfolio-service/internal/http/types"
	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/storage"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/internal/types"
	"github.com/canonical/portfolio-service/internal/validation"
	"github.com/canonical/portfolio-service/pkg/authentication"
	"github.com/canonical/portfolio-service/pkg/resolver"
)

// ProjectImages manages the images attached to a tenant's projects.
type ProjectImages struct {
	store     ImageStoreInterface
	validator *validation.Validator

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// List never fails, an unresolved tenant or a storage failure give an
// empty demo list.
func (p *ProjectImages) List(ctx context.Context, tenantID, projectID string) ListResult[types.ProjectImage] {
	ctx, span := p.tracer.Start(ctx, "content.ProjectImages.List")
	defer span.End()

	empty := ListResult[types.ProjectImage]{Data: []*types.ProjectImage{}, Demo: true}

	if tenantID == "" {
		return empty
	}

	images, err := p.store.ListByProject(ctx, tenantID, projectID)
	if err != nil {
		p.logger.Errorf("failed to list images of project %s: %v", projectID, err)
		return empty
	}

	if images == nil {
		images = []*types.ProjectImage{}
	}

	return ListResult[types.ProjectImage]{Data: images}
}

func (p *ProjectImages) Add(ctx context.Context, tenantID, projectID string, payload *ProjectImagePayload) (*types.ProjectImage, error) {
	ctx, span := p.tracer.Start(ctx, "content.ProjectImages.Add")
	defer span.End()

	if tenantID == "" {
		return nil, ErrAuthenticationRequired
	}

	if projectID == "" {
		return nil, ErrNotFound
	}

	if err := p.validator.Struct(payload); err != nil {
		return nil, err
	}

	img, err := p.store.Insert(ctx, tenantID, projectID, payload.Values())
	if err != nil {
		return nil, p.storageError("add", err)
	}

	return img, nil
}

// Clear removes every image of a project.
func (p *ProjectImages) Clear(ctx context.Context, tenantID, projectID string) error {
	ctx, span := p.tracer.Start(ctx, "content.ProjectImages.Clear")
	defer span.End()

	if tenantID == "" {
		return ErrAuthenticationRequired
	}

	if projectID == "" {
		return ErrNotFound
	}

	n, err := p.store.DeleteByProject(ctx, tenantID, projectID)
	if err != nil {
		return p.storageError("clear", err)
	}

	p.logger.Debugf("removed %d images of project %s", n, projectID)

	return nil
}

func (p *ProjectImages) storageError(op string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}

	p.logger.Errorf("failed to %s project images: %v", op, err)

	return fmt.Errorf("failed to %s project images: %w", op, ErrStorage)
}

func NewProjectImages(store ImageStoreInterface, v *validation.Validator, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *ProjectImages {
	p := new(ProjectImages)

	p.store = store
	p.validator = v

	p.tracer = tracer
	p.monitor = monitor
	p.logger = logger

	return p
}

// ProjectImagesAPI serves the images of one project:
//
//	GET    /api/projects/{id}/images  public read, resolved tenant only
//	POST   /api/projects/{id}/images  add an image
//	DELETE /api/projects/{id}/images  remove every image
type ProjectImagesAPI struct {
	images *ProjectImages
	cfg    APIConfig

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *ProjectImagesAPI) RegisterEndpoints(mux *chi.Mux) {
	const path = "/api/projects/{id}/images"

	mux.With(resolver.Middleware(a.cfg.Resolver)).Get(path, a.list)

	writes := mux.With(a.cfg.Authn, a.cfg.Tx)
	writes.Post(path, a.add)
	writes.Delete(path, a.clear)
}

func (a *ProjectImagesAPI) list(w http.ResponseWriter, r *http.Request) {
	res := resolver.FromContext(r.Context())

	result := a.images.List(r.Context(), res.TenantID, chi.URLParam(r, "id"))

	if err := httpTypes.WriteList(w, result.Data, result.Demo); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *ProjectImagesAPI) add(w http.ResponseWriter, r *http.Request) {
	payload := new(ProjectImagePayload)
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		writeError(w, &validation.Error{Message: "invalid request body"}, "project", a.logger)
		return
	}

	tenantID, _ := authentication.GetUserID(r.Context())

	img, err := a.images.Add(r.Context(), tenantID, chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, err, "project", a.logger)
		return
	}

	if err := httpTypes.WriteData(w, http.StatusCreated, img, "project image added"); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *ProjectImagesAPI) clear(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := authentication.GetUserID(r.Context())

	if err := a.images.Clear(r.Context(), tenantID, chi.URLParam(r, "id")); err != nil {
		writeError(w, err, "project", a.logger)
		return
	}

	if err := httpTypes.WriteData(w, http.StatusOK, nil, "project images deleted"); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func NewProjectImagesAPI(images *ProjectImages, cfg APIConfig, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *ProjectImagesAPI {
	a := new(ProjectImagesAPI)

	if cfg.Tx == nil {
		cfg.Tx = passthrough
	}

	a.images = images
	a.cfg = cfg

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
