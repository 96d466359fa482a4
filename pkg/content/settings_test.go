// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/internal/types"
	"github.com/canonical/portfolio-service/internal/validation"
)

func TestFoldSettings(t *testing.T) {
	folded := FoldSettings([]*types.Setting{
		{Key: "count", Value: `3`},
		{Key: "visible", Value: `false`},
		{Key: "title", Value: `"Hello"`},
		{Key: "raw", Value: `Hello`},
		{Key: "links", Value: `["a","b"]`},
	})

	assert.Equal(t, map[string]interface{}{
		"count":   float64(3),
		"visible": false,
		"title":   "Hello",
		"raw":     "Hello",
		"links":   []interface{}{"a", "b"},
	}, folded)

	assert.Empty(t, FoldSettings(nil))
}

func TestSettingsUpsert(t *testing.T) {
	tests := []struct {
		name        string
		tenantID    string
		values      map[string]json.RawMessage
		setupMocks  func(*MockSettingsStorageInterface)
		expectedErr error
		expectedMsg string
	}{
		{
			name:        "anonymous",
			values:      map[string]json.RawMessage{"a": json.RawMessage(`1`)},
			setupMocks:  func(*MockSettingsStorageInterface) {},
			expectedErr: ErrAuthenticationRequired,
		},
		{
			name:        "empty",
			tenantID:    "tenant-a",
			values:      map[string]json.RawMessage{},
			setupMocks:  func(*MockSettingsStorageInterface) {},
			expectedMsg: "settings is required",
		},
		{
			name:        "blank key",
			tenantID:    "tenant-a",
			values:      map[string]json.RawMessage{" ": json.RawMessage(`1`)},
			setupMocks:  func(*MockSettingsStorageInterface) {},
			expectedMsg: "key is required",
		},
		{
			name:        "invalid value",
			tenantID:    "tenant-a",
			values:      map[string]json.RawMessage{"theme": json.RawMessage(`{dark}`)},
			setupMocks:  func(*MockSettingsStorageInterface) {},
			expectedMsg: "theme must be valid JSON",
		},
		{
			name:     "storage failure",
			tenantID: "tenant-a",
			values:   map[string]json.RawMessage{"theme": json.RawMessage(`"sand"`)},
			setupMocks: func(m *MockSettingsStorageInterface) {
				m.EXPECT().UpsertSettings(gomock.Any(), "tenant-a", gomock.Any()).Return(errors.New("conflict"))
			},
			expectedErr: ErrStorage,
		},
		{
			name:     "values are compacted",
			tenantID: "tenant-a",
			values:   map[string]json.RawMessage{"links": json.RawMessage(`[ "a", "b" ]`)},
			setupMocks: func(m *MockSettingsStorageInterface) {
				m.EXPECT().UpsertSettings(gomock.Any(), "tenant-a", map[string]string{"links": `["a","b"]`}).Return(nil)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			logger := logging.NewNoopLogger()
			mockStorage := NewMockSettingsStorageInterface(ctrl)
			test.setupMocks(mockStorage)

			s := NewSettings(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

			err := s.Upsert(context.Background(), test.tenantID, test.values)

			switch {
			case test.expectedErr != nil:
				assert.ErrorIs(t, err, test.expectedErr)
			case test.expectedMsg != "":
				var verr *validation.Error
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, test.expectedMsg, verr.Message)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
