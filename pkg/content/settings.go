// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/internal/types"
	"github.com/canonical/portfolio-service/internal/validation"
)

// SettingsStore exposes settings rows to a Gateway. Writes go through
// Settings.Upsert instead.
type SettingsStore struct {
	storage SettingsStorageInterface
}

func (s *SettingsStore) ListByOwner(ctx context.Context, ownerID string, filters types.Filters) ([]*types.Setting, error) {
	return s.storage.ListSettings(ctx, ownerID, filters)
}

func (s *SettingsStore) GetByOwner(context.Context, string, string) (*types.Setting, error) {
	return nil, ErrReadOnly
}

func (s *SettingsStore) Insert(context.Context, string, map[string]interface{}) (*types.Setting, error) {
	return nil, ErrReadOnly
}

func (s *SettingsStore) UpdateByOwner(context.Context, string, string, map[string]interface{}) (*types.Setting, error) {
	return nil, ErrReadOnly
}

func (s *SettingsStore) DeleteByOwner(context.Context, string, string) error {
	return ErrReadOnly
}

func (s *SettingsStore) SetSortOrder(context.Context, string, string, int) error {
	return ErrReadOnly
}

func NewSettingsStore(storage SettingsStorageInterface) *SettingsStore {
	return &SettingsStore{storage: storage}
}

// FoldSettings turns settings rows into a single object, decoding each
// value as JSON and keeping it as a raw string when it is not.
func FoldSettings(rows []*types.Setting) map[string]interface{} {
	folded := make(map[string]interface{}, len(rows))

	for _, row := range rows {
		var v interface{}
		if err := json.Unmarshal([]byte(row.Value), &v); err != nil {
			folded[row.Key] = row.Value
			continue
		}
		folded[row.Key] = v
	}

	return folded
}

// Settings upserts a tenant's settings.
type Settings struct {
	storage SettingsStorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Settings) Upsert(ctx context.Context, tenantID string, values map[string]json.RawMessage) error {
	ctx, span := s.tracer.Start(ctx, "content.Settings.Upsert")
	defer span.End()

	if tenantID == "" {
		return ErrAuthenticationRequired
	}

	if len(values) == 0 {
		return &validation.Error{Field: "settings", Message: "settings is required"}
	}

	settings := make(map[string]string, len(values))
	for key, raw := range values {
		if strings.TrimSpace(key) == "" {
			return &validation.Error{Field: "key", Message: "key is required"}
		}

		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return &validation.Error{Field: key, Message: fmt.Sprintf("%s must be valid JSON", key)}
		}

		settings[key] = buf.String()
	}

	if err := s.storage.UpsertSettings(ctx, tenantID, settings); err != nil {
		s.logger.Errorf("failed to save settings of %s: %v", tenantID, err)
		return fmt.Errorf("failed to save settings: %w", ErrStorage)
	}

	return nil
}

func NewSettings(storage SettingsStorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Settings {
	s := new(Settings)

	s.storage = storage

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
