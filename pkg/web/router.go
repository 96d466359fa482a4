// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/portfolio-service/internal/db"
	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/storage"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/pkg/account"
	"github.com/canonical/portfolio-service/pkg/authentication"
	"github.com/canonical/portfolio-service/pkg/content"
	"github.com/canonical/portfolio-service/pkg/domains"
	"github.com/canonical/portfolio-service/pkg/metrics"
	"github.com/canonical/portfolio-service/pkg/resolver"
	"github.com/canonical/portfolio-service/pkg/status"
	"github.com/canonical/portfolio-service/pkg/webhooks"
)

type Config struct {
	AllowedOrigins []string
	// Debug exposes the resolver diagnostics endpoint.
	Debug bool
	// WebhookAPIKey guards the registration webhook when set.
	WebhookAPIKey string
}

func NewRouter(
	cfg Config,
	verifier authentication.TokenVerifierInterface,
	res resolver.ResolverInterface,
	s storage.StorageInterface,
	gateways *content.Gateways,
	configs domains.ConfigCacheInterface,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.AllowedOrigins),
	)

	router.Use(middlewares...)

	authn := authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate()
	tx := db.TransactionMiddleware(dbClient, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(dbClient, tracer, monitor, logger).RegisterEndpoints(router)

	account.NewAPI(s, authn, tracer, monitor, logger).RegisterEndpoints(router)
	domains.NewAPI(configs, s, res, authn, cfg.Debug, tracer, monitor, logger).RegisterEndpoints(router)
	gateways.RegisterEndpoints(router, content.APIConfig{Resolver: res, Authn: authn, Tx: tx})

	webhooks.NewAPI(
		webhooks.NewService(s, tracer, monitor, logger),
		cfg.WebhookAPIKey,
		tracer,
		logger,
	).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
