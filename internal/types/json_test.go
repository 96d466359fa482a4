// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"testing"
)

func TestJSONListScan(t *testing.T) {
	tests := []struct {
		name     string
		src      interface{}
		expected []string
		wantErr  bool
	}{
		{name: "bytes", src: []byte(`["a","b"]`), expected: []string{"a", "b"}},
		{name: "string", src: `["c"]`, expected: []string{"c"}},
		{name: "nil", src: nil, expected: []string{}},
		{name: "json null", src: []byte(`null`), expected: []string{}},
		{name: "invalid json", src: []byte(`{`), wantErr: true},
		{name: "unsupported type", src: 42, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var l JSONList[string]

			err := l.Scan(test.src)

			if test.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(l) != len(test.expected) {
				t.Fatalf("expected %v, got %v", test.expected, l)
			}

			for i := range l {
				if l[i] != test.expected[i] {
					t.Errorf("expected %q at %d, got %q", test.expected[i], i, l[i])
				}
			}
		})
	}
}

func TestJSONListValue(t *testing.T) {
	var empty JSONList[Skill]

	v, err := empty.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v != "[]" {
		t.Errorf("expected [], got %v", v)
	}

	skills := JSONList[Skill]{{Name: "Go", Level: 90}}

	v, err = skills.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v != `[{"name":"Go","level":90}]` {
		t.Errorf("unexpected value %v", v)
	}
}

func TestJSONListMarshalNil(t *testing.T) {
	p := Project{}

	b, err := json.Marshal(p.Features)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(b) != "[]" {
		t.Errorf("expected [], got %s", b)
	}
}

func TestDomainEnabled(t *testing.T) {
	var missing *Domain

	if missing.Enabled() {
		t.Errorf("nil domain must not be enabled")
	}

	if (&Domain{Status: DomainStatusDisabled}).Enabled() {
		t.Errorf("disabled domain reported enabled")
	}

	if (&Domain{Status: 2}).Enabled() {
		t.Errorf("unknown status reported enabled")
	}

	if !(&Domain{Status: DomainStatusEnabled}).Enabled() {
		t.Errorf("enabled domain reported disabled")
	}
}
