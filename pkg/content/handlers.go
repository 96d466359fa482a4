// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	httpTypes "github.com/canonical/portfolio-service/internal/http/types"
	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/internal/types"
	"github.com/canonical/portfolio-service/internal/validation"
	"github.com/canonical/portfolio-service/pkg/authentication"
	"github.com/canonical/portfolio-service/pkg/resolver"
)

type Middleware = func(http.Handler) http.Handler

// APIConfig carries the middlewares shared by every content API.
type APIConfig struct {
	Resolver resolver.ResolverInterface
	// Authn rejects requests without a valid bearer token.
	Authn Middleware
	// Tx wraps writes in a transaction, may be nil.
	Tx Middleware
}

// API serves one content kind over HTTP:
//
//	GET    /api/<kind>            public read, resolved tenant or demo content
//	GET    /api/dashboard/<kind>  the caller's own rows
//	GET    /api/<kind>/{id}       one of the caller's rows
//	POST   /api/<kind>            create
//	PUT    /api/<kind>/{id}       update
//	DELETE /api/<kind>/{id}       delete
//	POST   /api/<kind>/reorder    sortable kinds only
type API[T any] struct {
	gateway    *Gateway[T]
	newPayload func() Payload
	present    func([]*T) interface{}
	cfg        APIConfig

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// WithPresenter replaces the list rendering of the API.
func (a *API[T]) WithPresenter(present func([]*T) interface{}) *API[T] {
	a.present = present
	return a
}

func (a *API[T]) RegisterEndpoints(mux *chi.Mux) {
	kind := a.gateway.Kind()
	base := "/api/" + kind

	mux.With(resolver.Middleware(a.cfg.Resolver)).Get(base, a.listPublic)
	mux.With(a.cfg.Authn).Get("/api/dashboard/"+kind, a.listOwned)

	if a.newPayload != nil && !a.gateway.ReadOnly() {
		mux.With(a.cfg.Authn).Get(base+"/{id}", a.get)

		writes := mux.With(a.cfg.Authn, a.cfg.Tx)
		writes.Post(base, a.create)
		writes.Put(base+"/{id}", a.update)
		writes.Delete(base+"/{id}", a.delete)
	}

	if a.gateway.Sortable() {
		mux.With(a.cfg.Authn, a.cfg.Tx).Post(base+"/reorder", a.reorder)
	}
}

func (a *API[T]) listPublic(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res := resolver.FromContext(ctx)
	if a.gateway.Fallback() {
		res = a.cfg.Resolver.ApplyFallback(ctx, res)
	}

	result := a.gateway.ListPublic(ctx, res.TenantID, filtersFrom(r, true))

	if err := httpTypes.WriteList(w, a.render(result.Data), result.Demo); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API[T]) listOwned(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := authentication.GetUserID(r.Context())

	rows, err := a.gateway.ListOwned(r.Context(), tenantID, filtersFrom(r, false))
	if err != nil {
		a.writeError(w, err)
		return
	}

	if err := httpTypes.WriteList(w, a.render(rows), false); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API[T]) get(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := authentication.GetUserID(r.Context())

	row, err := a.gateway.Get(r.Context(), tenantID, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeData(w, http.StatusOK, row, "")
}

func (a *API[T]) create(w http.ResponseWriter, r *http.Request) {
	payload, ok := a.decode(w, r)
	if !ok {
		return
	}

	tenantID, _ := authentication.GetUserID(r.Context())

	row, err := a.gateway.Create(r.Context(), tenantID, payload)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeData(w, http.StatusCreated, row, fmt.Sprintf("%s created", a.gateway.Kind()))
}

func (a *API[T]) update(w http.ResponseWriter, r *http.Request) {
	payload, ok := a.decode(w, r)
	if !ok {
		return
	}

	tenantID, _ := authentication.GetUserID(r.Context())

	row, err := a.gateway.Update(r.Context(), tenantID, chi.URLParam(r, "id"), payload)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeData(w, http.StatusOK, row, fmt.Sprintf("%s updated", a.gateway.Kind()))
}

func (a *API[T]) delete(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := authentication.GetUserID(r.Context())

	if err := a.gateway.Delete(r.Context(), tenantID, chi.URLParam(r, "id")); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeData(w, http.StatusOK, nil, fmt.Sprintf("%s deleted", a.gateway.Kind()))
}

func (a *API[T]) reorder(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeReorder(r.Body)
	if err != nil {
		a.writeError(w, &validation.Error{Field: "items", Message: "invalid request body"})
		return
	}

	tenantID, _ := authentication.GetUserID(r.Context())

	if err := a.gateway.Reorder(r.Context(), tenantID, payload); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeData(w, http.StatusOK, nil, fmt.Sprintf("%s reordered", a.gateway.Kind()))
}

// decodeReorder accepts either {"items": [...]} or a bare array.
func decodeReorder(body io.Reader) (*ReorderPayload, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}

	payload := new(ReorderPayload)

	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &payload.Items)
	} else {
		err = json.Unmarshal(raw, payload)
	}

	return payload, err
}

func (a *API[T]) decode(w http.ResponseWriter, r *http.Request) (Payload, bool) {
	payload := a.newPayload()

	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		a.writeError(w, &validation.Error{Message: "invalid request body"})
		return nil, false
	}

	return payload, true
}

func (a *API[T]) render(rows []*T) interface{} {
	if a.present != nil {
		return a.present(rows)
	}
	return rows
}

func (a *API[T]) writeData(w http.ResponseWriter, status int, data interface{}, message string) {
	if err := httpTypes.WriteData(w, status, data, message); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API[T]) writeError(w http.ResponseWriter, err error) {
	writeError(w, err, a.gateway.Kind(), a.logger)
}

// writeError maps gateway errors to status codes without exposing
// storage details.
func writeError(w http.ResponseWriter, err error, kind string, logger logging.LoggerInterface) {
	status, message := http.StatusInternalServerError, "Internal server error"

	var verr *validation.Error
	switch {
	case errors.Is(err, ErrAuthenticationRequired):
		status, message = http.StatusUnauthorized, "Authentication required"
	case errors.As(err, &verr):
		status, message = http.StatusBadRequest, verr.Message
	case errors.Is(err, ErrNotFound):
		status, message = http.StatusNotFound, fmt.Sprintf("%s not found", kind)
	case errors.Is(err, ErrReadOnly):
		status, message = http.StatusMethodNotAllowed, fmt.Sprintf("%s are read only", kind)
	}

	if werr := httpTypes.WriteError(w, status, message); werr != nil {
		logger.Errorf("failed to encode response: %v", werr)
	}
}

func filtersFrom(r *http.Request, public bool) types.Filters {
	q := r.URL.Query()

	f := types.Filters{
		Location:   q.Get("location"),
		PublicOnly: public,
		Domain:     resolver.ExtractHost(resolver.NewRequestContext(r).DomainSource()),
	}

	if v, err := strconv.ParseInt(q.Get("limit"), 10, 64); err == nil && v > 0 {
		f.Limit = v
	}

	if v, err := strconv.ParseInt(q.Get("page"), 10, 64); err == nil && v > 0 {
		f.Page = v
	}

	return f
}

func passthrough(next http.Handler) http.Handler {
	return next
}

func NewAPI[T any](
	gateway *Gateway[T],
	newPayload func() Payload,
	cfg APIConfig,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API[T] {
	a := new(API[T])

	if cfg.Tx == nil {
		cfg.Tx = passthrough
	}

	a.gateway = gateway
	a.newPayload = newPayload
	a.cfg = cfg

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

// SettingsAPI adds the settings upsert to the read only settings API.
type SettingsAPI struct {
	*API[types.Setting]

	settings *Settings
}

func (a *SettingsAPI) RegisterEndpoints(mux *chi.Mux) {
	a.API.RegisterEndpoints(mux)

	mux.With(a.cfg.Authn, a.cfg.Tx).Put("/api/settings", a.upsert)
}

func (a *SettingsAPI) upsert(w http.ResponseWriter, r *http.Request) {
	values := make(map[string]json.RawMessage)
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		a.writeError(w, &validation.Error{Message: "invalid request body"})
		return
	}

	tenantID, _ := authentication.GetUserID(r.Context())

	if err := a.settings.Upsert(r.Context(), tenantID, values); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeData(w, http.StatusOK, nil, "settings saved")
}

func NewSettingsAPI(gateway *Gateway[types.Setting], settings *Settings, cfg APIConfig, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *SettingsAPI {
	a := new(SettingsAPI)

	a.API = NewAPI(gateway, nil, cfg, tracer, monitor, logger).WithPresenter(func(rows []*types.Setting) interface{} {
		return FoldSettings(rows)
	})
	a.settings = settings

	return a
}
