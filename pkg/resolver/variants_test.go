// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resolver

import (
	"reflect"
	"testing"
)

func TestExtractHost(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"http://acme.local:3000", "acme.local:3000"},
		{"https://acme.com/projects/1", "acme.com"},
		{"HTTPS://Acme.com/", "Acme.com"},
		{"acme.com", "acme.com"},
		{"acme.com?x=1", "acme.com"},
		{"  https://acme.com#top ", "acme.com"},
		{"", ""},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			if got := ExtractHost(test.input); got != test.expected {
				t.Errorf("expected %q, got %q", test.expected, got)
			}
		})
	}
}

func TestDomainVariants(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		devPort  string
		expected []string
	}{
		{
			name:    "host with dev port",
			host:    "acme.local:3000",
			devPort: "3000",
			expected: []string{
				"acme.local:3000",
				"http://acme.local:3000",
				"https://acme.local:3000",
				"acme.local",
				"http://acme.local",
			},
		},
		{
			name:     "host without port drops duplicates",
			host:     "acme.com",
			devPort:  "3000",
			expected: []string{"acme.com", "http://acme.com", "https://acme.com"},
		},
		{
			name:     "other ports are kept",
			host:     "acme.com:8080",
			devPort:  "3000",
			expected: []string{"acme.com:8080", "http://acme.com:8080", "https://acme.com:8080"},
		},
		{
			name:     "empty host",
			host:     "",
			devPort:  "3000",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := DomainVariants(test.host, test.devPort); !reflect.DeepEqual(got, test.expected) {
				t.Errorf("expected %v, got %v", test.expected, got)
			}
		})
	}
}
