// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/portfolio-service/internal/http/types"
	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/pkg/authentication"
)

type API struct {
	service ServiceInterface
	apiKey  string

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/webhooks/registration", a.registration)
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "webhooks.API.registration")
	defer span.End()

	if !a.authorized(r) {
		a.logger.Security().AuthnFailure("invalid webhook api key")
		a.writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var identity Identity
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := a.service.HandleRegistration(ctx, identity)

	switch {
	case errors.Is(err, ErrInvalidIdentity):
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, ErrEmailTaken):
		a.writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		a.logger.Errorf("registration webhook failed: %v", err)
		a.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := types.WriteData(w, http.StatusOK, user, "user provisioned"); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

// authorized accepts every request when no key is configured.
func (a *API) authorized(r *http.Request) bool {
	if a.apiKey == "" {
		return true
	}

	token, ok := authentication.BearerToken(r.Header)
	if !ok {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(token), []byte(a.apiKey)) == 1
}

func (a *API) writeError(w http.ResponseWriter, status int, message string) {
	if err := types.WriteError(w, status, message); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func NewAPI(service ServiceInterface, apiKey string, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.apiKey = apiKey

	a.tracer = tracer
	a.logger = logger

	return a
}
