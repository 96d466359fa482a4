// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package domains

import (
	"context"

	"github.com/canonical/portfolio-service/internal/types"
)

type ConfigCacheInterface interface {
	Get(ctx context.Context, domain string) *types.StorageConfig
}

type ConfigLookupInterface interface {
	FindEnabledDomain(ctx context.Context, variant string) (*types.Domain, error)
}

type StorageInterface interface {
	GetEnabledDomainByName(ctx context.Context, name string) (*types.Domain, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	ListDomainsByOwner(ctx context.Context, userID string) ([]*types.Domain, error)
}
