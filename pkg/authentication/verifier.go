// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/tracing"
)

type JWTVerifier struct {
	verifier      *oidc.IDTokenVerifier
	requiredScope string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (*Principal, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}

	var claims struct {
		Subject string   `json:"sub"`
		UserID  string   `json:"id"`
		Email   string   `json:"email"`
		Scope   string   `json:"scope"`
		Scopes  []string `json:"scp"`
	}

	if err := token.Claims(&claims); err != nil {
		v.logger.Debugf("failed to extract claims: %v", err)
		return nil, fmt.Errorf("failed to read claims: %w", err)
	}

	id := claims.UserID
	if id == "" {
		id = claims.Subject
	}

	if id == "" {
		return nil, fmt.Errorf("token carries no user id")
	}

	if v.requiredScope != "" && !hasScope(claims.Scope, claims.Scopes, v.requiredScope) {
		v.logger.Security().AuthzFailure(id, "jwt_api_access")
		return nil, fmt.Errorf("unauthorized: missing required scope")
	}

	return &Principal{TenantID: id, Email: claims.Email}, nil
}

func hasScope(scope string, scopes []string, required string) bool {
	if slices.Contains(strings.Fields(scope), required) {
		return true
	}
	return slices.Contains(scopes, required)
}

func NewJWTVerifier(
	verifier *oidc.IDTokenVerifier,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	v := new(JWTVerifier)

	v.verifier = verifier
	v.requiredScope = requiredScope

	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger

	return v
}
