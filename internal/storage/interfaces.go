// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/portfolio-service/internal/types"
)

type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	UpsertUser(ctx context.Context, u *types.User) (*types.User, error)
	FindEnabledDomain(ctx context.Context, variant string) (*types.Domain, error)
	GetEnabledDomainByName(ctx context.Context, name string) (*types.Domain, error)
	ListDomainsByOwner(ctx context.Context, userID string) ([]*types.Domain, error)
	ListSettings(ctx context.Context, userID string, filters types.Filters) ([]*types.Setting, error)
	UpsertSettings(ctx context.Context, userID string, settings map[string]string) error
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}
