// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
)

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw JWT string and validates authorization claims
	// Returns the principal (tenant id and email) if the token is valid, otherwise an error
	VerifyToken(ctx context.Context, rawToken string) (*Principal, error)
}
