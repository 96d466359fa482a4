// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/tracing"
)

const (
	ModeHMAC = "hmac"
	ModeOIDC = "oidc"
	ModeNoop = "noop"
)

type Config struct {
	Mode          string
	JWTSecret     string
	Issuer        string
	JWKSURL       string
	RequiredScope string
}

// NewAuthenticator returns the single token verifier selected by cfg.Mode.
func NewAuthenticator(
	ctx context.Context,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (TokenVerifierInterface, error) {
	switch cfg.Mode {
	case ModeHMAC:
		if cfg.JWTSecret == "" {
			return nil, fmt.Errorf("jwt secret is required for hmac authentication")
		}
		logger.Info("HMAC JWT authentication is enabled")
		return NewHMACVerifier(cfg.JWTSecret, tracer, monitor, logger), nil
	case ModeOIDC:
		return NewJWTAuthenticator(ctx, cfg.Issuer, cfg.JWKSURL, cfg.RequiredScope, tracer, monitor, logger)
	case ModeNoop:
		logger.Warn("authentication is disabled, tokens are trusted as user ids")
		return NewNoopVerifier(), nil
	default:
		return nil, fmt.Errorf("unknown authentication mode %q", cfg.Mode)
	}
}

// NewJWTAuthenticator verifies tokens of an OIDC issuer.
func NewJWTAuthenticator(
	ctx context.Context,
	issuer string,
	jwksURL string,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (TokenVerifierInterface, error) {
	if issuer == "" {
		return nil, fmt.Errorf("issuer is required for JWT authentication")
	}

	if jwksURL != "" {
		logger.Infof("verifying tokens of %s against JWKS %s", issuer, jwksURL)
	} else {
		logger.Infof("verifying tokens of %s through OIDC discovery", issuer)
	}

	idTokenVerifier, err := NewIDTokenVerifier(ctx, issuer, jwksURL)
	if err != nil {
		return nil, err
	}

	return NewJWTVerifier(idTokenVerifier, requiredScope, tracer, monitor, logger), nil
}
