// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONList is a list stored in a JSONB column.
type JSONList[T any] []T

func (l *JSONList[T]) Scan(src interface{}) error {
	var raw []byte

	switch v := src.(type) {
	case nil:
		*l = JSONList[T]{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for json list", src)
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("failed to decode json list: %w", err)
	}

	if out == nil {
		out = []T{}
	}

	*l = out

	return nil
}

func (l JSONList[T]) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}

	b, err := json.Marshal([]T(l))
	if err != nil {
		return nil, err
	}

	return string(b), nil
}

// MarshalJSON renders a nil list as [] rather than null.
func (l JSONList[T]) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}

	return json.Marshal([]T(l))
}
