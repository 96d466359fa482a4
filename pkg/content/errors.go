// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import "errors"

var (
	// ErrAuthenticationRequired is returned by writes without a tenant.
	ErrAuthenticationRequired = errors.New("authentication required")
	// ErrNotFound covers both missing rows and rows owned by another tenant.
	ErrNotFound = errors.New("not found")
	// ErrStorage hides the underlying storage failure from callers.
	ErrStorage  = errors.New("storage failure")
	ErrReadOnly = errors.New("read only")
)
