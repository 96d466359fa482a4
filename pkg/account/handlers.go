// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/portfolio-service/internal/http/types"
	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/storage"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/pkg/authentication"
)

// API serves the profile of the authenticated user.
type API struct {
	storage StorageInterface
	authn   func(http.Handler) http.Handler

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.With(a.authn).Get("/api/auth/me", a.me)
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "account.API.me")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := a.storage.GetUserByID(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		a.writeError(w, http.StatusNotFound, "User not found")
		return
	}

	if err != nil {
		a.logger.Errorf("failed to load user %s: %v", userID, err)
		a.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := types.WriteData(w, http.StatusOK, user, ""); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, message string) {
	if err := types.WriteError(w, status, message); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func NewAPI(s StorageInterface, authn func(http.Handler) http.Handler, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.storage = s
	a.authn = authn

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
