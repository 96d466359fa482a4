// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

const (
	LocationHeader = "header"
	LocationFooter = "footer"
	LocationMobile = "mobile"
)

// Filters narrows a tenant scoped list.
type Filters struct {
	// Location restricts menus to one placement, implying visible only.
	Location string
	// PublicOnly hides drafts and invisible rows from anonymous readers.
	PublicOnly bool
	Limit      int64
	Page       int64
	// Domain is the raw request domain, used to pick the object store.
	Domain string
}
