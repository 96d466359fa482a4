// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resolver

import (
	"context"

	"github.com/canonical/portfolio-service/internal/types"
)

type ResolverInterface interface {
	Resolve(ctx context.Context, rc RequestContext) Resolution
	ApplyFallback(ctx context.Context, res Resolution) Resolution
	Variants(rc RequestContext) []string
}

type DomainStoreInterface interface {
	// FindEnabledDomain returns the best enabled binding whose name contains variant.
	FindEnabledDomain(ctx context.Context, variant string) (*types.Domain, error)
}

type UserStoreInterface interface {
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
}
