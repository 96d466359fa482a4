// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/canonical/portfolio-service/internal/types"
)

// StorageInterface is the subset of internal/storage used to provision users.
type StorageInterface interface {
	UpsertUser(ctx context.Context, u *types.User) (*types.User, error)
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identity Identity) (*types.User, error)
}
