// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resolver

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/storage"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/pkg/authentication"
)

type Source string

const (
	SourceToken    Source = "token"
	SourceDomain   Source = "domain"
	SourceFallback Source = "fallback"
	SourceNone     Source = "none"
)

// RequestContext holds the raw request inputs used to find a tenant.
type RequestContext struct {
	Authorization string
	Origin        string
	Referer       string
	// Domain is an explicit domain query parameter, preferred over headers.
	Domain string
}

// DomainSource is the raw value the domain path works from.
func (rc RequestContext) DomainSource() string {
	switch {
	case strings.TrimSpace(rc.Domain) != "":
		return rc.Domain
	case strings.TrimSpace(rc.Origin) != "":
		return rc.Origin
	default:
		return rc.Referer
	}
}

type Resolution struct {
	TenantID string `json:"tenant_id,omitempty"`
	Email    string `json:"email,omitempty"`
	Source   Source `json:"source"`
	// Domain is the binding name matched on the domain path.
	Domain string `json:"domain,omitempty"`
}

func (r Resolution) Resolved() bool {
	return r.TenantID != ""
}

var unresolved = Resolution{Source: SourceNone}

// Resolver maps a request to a tenant: a verified bearer token wins over
// the request domain, and nothing here ever fails the request.
type Resolver struct {
	verifier authentication.TokenVerifierInterface
	domains  DomainStoreInterface
	users    UserStoreInterface

	devPort    string
	ownerEmail string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (r *Resolver) Resolve(ctx context.Context, rc RequestContext) Resolution {
	ctx, span := r.tracer.Start(ctx, "resolver.Resolver.Resolve")
	defer span.End()

	res, ok := r.fromToken(ctx, rc.Authorization)
	if !ok {
		res, ok = r.fromDomain(ctx, rc)
	}

	if !ok {
		r.logger.Debug("no tenant resolved for request")
		res = unresolved
	}

	span.SetAttributes(attribute.String("resolver.source", string(res.Source)))

	return res
}

func (r *Resolver) fromToken(ctx context.Context, header string) (Resolution, bool) {
	token, found := strings.CutPrefix(strings.TrimSpace(header), "Bearer ")
	token = strings.TrimSpace(token)

	if !found || token == "" || r.verifier == nil {
		return Resolution{}, false
	}

	principal, err := r.verifier.VerifyToken(ctx, token)
	if err != nil {
		r.logger.Debugf("ignoring bearer token, verification failed: %v", err)
		return Resolution{}, false
	}

	if principal == nil || principal.TenantID == "" {
		r.logger.Debug("ignoring bearer token without tenant id")
		return Resolution{}, false
	}

	r.logger.Debugf("tenant %s resolved from token", principal.TenantID)

	return Resolution{TenantID: principal.TenantID, Email: principal.Email, Source: SourceToken}, true
}

func (r *Resolver) fromDomain(ctx context.Context, rc RequestContext) (Resolution, bool) {
	for _, variant := range r.Variants(rc) {
		d, err := r.domains.FindEnabledDomain(ctx, variant)

		if errors.Is(err, storage.ErrNotFound) {
			continue
		}

		if err != nil {
			r.logger.Warnf("domain lookup for %q failed: %v", variant, err)
			continue
		}

		// a disabled binding is never a match, the next variant is tried
		if !d.Enabled() {
			r.logger.Debugf("domain %q matched a disabled binding", variant)
			continue
		}

		r.logger.Debugf("tenant %s resolved from domain %q", d.UserID, variant)

		return Resolution{TenantID: d.UserID, Source: SourceDomain, Domain: d.Name}, true
	}

	return Resolution{}, false
}

// Variants returns the domain spellings Resolve looks up for rc.
func (r *Resolver) Variants(rc RequestContext) []string {
	return DomainVariants(ExtractHost(rc.DomainSource()), r.devPort)
}

// ApplyFallback resolves the configured portfolio owner when res is unresolved.
func (r *Resolver) ApplyFallback(ctx context.Context, res Resolution) Resolution {
	if res.Resolved() || r.ownerEmail == "" {
		return res
	}

	ctx, span := r.tracer.Start(ctx, "resolver.Resolver.ApplyFallback")
	defer span.End()

	user, err := r.users.GetUserByEmail(ctx, r.ownerEmail)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			r.logger.Warnf("owner fallback lookup failed: %v", err)
		}
		return res
	}

	r.logger.Debugf("tenant %s resolved from owner fallback", user.ID)

	return Resolution{TenantID: user.ID, Email: user.Email, Source: SourceFallback}
}

func NewResolver(
	verifier authentication.TokenVerifierInterface,
	domains DomainStoreInterface,
	users UserStoreInterface,
	devPort string,
	ownerEmail string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Resolver {
	r := new(Resolver)

	r.verifier = verifier
	r.domains = domains
	r.users = users
	r.devPort = devPort
	r.ownerEmail = ownerEmail

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
