// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"context"

	"github.com/canonical/portfolio-service/internal/types"
)

// StoreInterface is a table whose rows belong to a tenant.
type StoreInterface[T any] interface {
	ListByOwner(ctx context.Context, ownerID string, filters types.Filters) ([]*T, error)
	GetByOwner(ctx context.Context, ownerID, id string) (*T, error)
	Insert(ctx context.Context, ownerID string, values map[string]interface{}) (*T, error)
	UpdateByOwner(ctx context.Context, ownerID, id string, values map[string]interface{}) (*T, error)
	DeleteByOwner(ctx context.Context, ownerID, id string) error
	SetSortOrder(ctx context.Context, ownerID, id string, order int) error
}

// ImageStoreInterface scopes project images by project and owning tenant.
type ImageStoreInterface interface {
	ListByProject(ctx context.Context, ownerID, projectID string) ([]*types.ProjectImage, error)
	Insert(ctx context.Context, ownerID, projectID string, values map[string]interface{}) (*types.ProjectImage, error)
	DeleteByProject(ctx context.Context, ownerID, projectID string) (int64, error)
}

type SettingsStorageInterface interface {
	ListSettings(ctx context.Context, userID string, filters types.Filters) ([]*types.Setting, error)
	UpsertSettings(ctx context.Context, userID string, settings map[string]string) error
}

type StorageConfigInterface interface {
	Get(ctx context.Context, domain string) *types.StorageConfig
}

// Payload is a validated client body turned into column values.
type Payload interface {
	Values() map[string]interface{}
}
