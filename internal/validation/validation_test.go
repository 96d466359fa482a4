// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"errors"
	"testing"
)

type payload struct {
	Title  string  `json:"title" validate:"required,max=10"`
	Status string  `json:"status" validate:"omitempty,oneof=draft published"`
	Email  *string `json:"email" validate:"omitempty,email"`
}

func TestValidator_Struct(t *testing.T) {
	bad := "not-an-email"

	tests := []struct {
		name          string
		input         payload
		expectedField string
		expectedMsg   string
	}{
		{
			name:  "valid",
			input: payload{Title: "ok", Status: "draft"},
		},
		{
			name:          "missing title",
			input:         payload{},
			expectedField: "title",
			expectedMsg:   "title is required",
		},
		{
			name:          "title too long",
			input:         payload{Title: "abcdefghijkl"},
			expectedField: "title",
			expectedMsg:   "title must be at most 10 characters",
		},
		{
			name:          "bad status",
			input:         payload{Title: "ok", Status: "archived"},
			expectedField: "status",
			expectedMsg:   "status must be one of: draft published",
		},
		{
			name:          "bad email",
			input:         payload{Title: "ok", Email: &bad},
			expectedField: "email",
			expectedMsg:   "email must be a valid email address",
		},
	}

	v := NewValidator()

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := v.Struct(test.input)

			if test.expectedField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var verr *Error
			if !errors.As(err, &verr) {
				t.Fatalf("expected *Error, got %v", err)
			}

			if verr.Field != test.expectedField {
				t.Errorf("expected field %q, got %q", test.expectedField, verr.Field)
			}

			if verr.Error() != test.expectedMsg {
				t.Errorf("expected message %q, got %q", test.expectedMsg, verr.Error())
			}
		})
	}
}
