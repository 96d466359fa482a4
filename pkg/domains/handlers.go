// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package domains

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/portfolio-service/internal/http/types"
	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/storage"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/pkg/authentication"
	"github.com/canonical/portfolio-service/pkg/resolver"
)

// Profile is the public view of the tenant bound to a domain.
type Profile struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      *string `json:"name"`
	FullName  *string `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
	Domain    string  `json:"domain"`
}

type configResponse struct {
	Success    bool   `json:"success"`
	StorageURL string `json:"storage_url"`
	StorageKey string `json:"storage_key"`
	IsCustom   bool   `json:"is_custom"`
}

type resolveResponse struct {
	Host       string              `json:"host"`
	Variants   []string            `json:"variants"`
	Resolution resolver.Resolution `json:"resolution"`
}

type API struct {
	cache    ConfigCacheInterface
	storage  StorageInterface
	resolver resolver.ResolverInterface
	authn    func(http.Handler) http.Handler
	debug    bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/domains/config", a.config)
	mux.Get("/api/domains/user", a.user)
	mux.With(a.authn).Get("/api/domains", a.list)

	if a.debug {
		mux.Get("/api/domains/resolve", a.resolve)
	}
}

func (a *API) config(w http.ResponseWriter, r *http.Request) {
	domain := r.URL.Query().Get("domain")
	if domain == "" {
		a.writeError(w, http.StatusBadRequest, "domain parameter is required")
		return
	}

	cfg := a.cache.Get(r.Context(), domain)

	a.write(w, http.StatusOK, configResponse{
		Success:    true,
		StorageURL: cfg.URL,
		StorageKey: cfg.Key,
		IsCustom:   cfg.Custom,
	})
}

func (a *API) user(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "domains.API.user")
	defer span.End()

	domain := resolver.ExtractHost(r.URL.Query().Get("domain"))
	if domain == "" {
		a.writeError(w, http.StatusBadRequest, "domain parameter is required")
		return
	}

	d, err := a.storage.GetEnabledDomainByName(ctx, domain)
	if err == nil {
		var u *Profile
		if u, err = a.profile(ctx, d.UserID, d.Name); err == nil {
			a.writeData(w, u)
			return
		}
	}

	if errors.Is(err, storage.ErrNotFound) {
		a.writeError(w, http.StatusNotFound, "Domain not found or inactive")
		return
	}

	a.logger.Errorf("failed to load domain user for %q: %v", domain, err)
	a.writeError(w, http.StatusInternalServerError, "Failed to fetch domain user")
}

func (a *API) profile(ctx context.Context, userID, domain string) (*Profile, error) {
	u, err := a.storage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
		Domain:    domain,
	}, nil
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	domains, err := a.storage.ListDomainsByOwner(r.Context(), userID)
	if err != nil {
		a.logger.Errorf("failed to list domains of %s: %v", userID, err)
		a.writeError(w, http.StatusInternalServerError, "Failed to fetch domains")
		return
	}

	a.writeData(w, domains)
}

func (a *API) resolve(w http.ResponseWriter, r *http.Request) {
	rc := resolver.NewRequestContext(r)

	a.writeData(w, resolveResponse{
		Host:       resolver.ExtractHost(rc.DomainSource()),
		Variants:   a.resolver.Variants(rc),
		Resolution: a.resolver.Resolve(r.Context(), rc),
	})
}

func (a *API) writeData(w http.ResponseWriter, data any) {
	if err := types.WriteData(w, http.StatusOK, data, ""); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) write(w http.ResponseWriter, status int, body any) {
	if err := types.WriteJSON(w, status, body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, message string) {
	if err := types.WriteError(w, status, message); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func NewAPI(
	cache ConfigCacheInterface,
	s StorageInterface,
	r resolver.ResolverInterface,
	authn func(http.Handler) http.Handler,
	debug bool,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	a := new(API)

	a.cache = cache
	a.storage = s
	a.resolver = r
	a.authn = authn
	a.debug = debug

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
