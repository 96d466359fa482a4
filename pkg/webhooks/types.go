// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// Identity is the payload the identity provider posts after a sign up.
type Identity struct {
	ID     string `json:"id"`
	Traits Traits `json:"traits"`
}

type Traits struct {
	Email    string  `json:"email"`
	Name     *string `json:"name,omitempty"`
	FullName *string `json:"full_name,omitempty"`
}
