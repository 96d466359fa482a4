// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package domains

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/storage"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package domains -destination ./mock_domains.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package domains -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package domains -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package domains -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

var defaultConfig = types.StorageConfig{URL: "https://storage.example", Key: "anon", Bucket: "portfolio-images"}

func strPtr(s string) *string {
	return &s
}

func newTestCache(lookup ConfigLookupInterface) *ConfigCache {
	logger := logging.NewNoopLogger()
	return NewConfigCache(lookup, defaultConfig, "3000", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
}

func TestConfigCacheLooksUpOncePerDomain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLookup := NewMockConfigLookupInterface(ctrl)
	mockLookup.EXPECT().FindEnabledDomain(gomock.Any(), "acme.com").Return(&types.Domain{
		Name:       "acme.com",
		Status:     types.DomainStatusEnabled,
		StorageURL: strPtr("https://acme.storage"),
		StorageKey: strPtr("acme-key"),
	}, nil).Times(1)

	cache := newTestCache(mockLookup)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cfg := cache.Get(context.Background(), "https://acme.com")
			assert.True(t, cfg.Custom)
		}()
	}
	wg.Wait()

	cfg := cache.Get(context.Background(), "https://acme.com")
	assert.Equal(t, types.StorageConfig{URL: "https://acme.storage", Key: "acme-key", Bucket: "portfolio-images", Custom: true}, *cfg)

	// the caller's copy is not shared with the cache
	cfg.URL = "mutated"
	assert.Equal(t, "https://acme.storage", cache.Get(context.Background(), "https://acme.com").URL)
}

func TestConfigCacheReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLookup := NewMockConfigLookupInterface(ctrl)
	mockLookup.EXPECT().FindEnabledDomain(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound).Times(6)

	cache := newTestCache(mockLookup)

	assert.Equal(t, defaultConfig, *cache.Get(context.Background(), "acme.com"))
	assert.Equal(t, defaultConfig, *cache.Get(context.Background(), "acme.com"))

	cache.Reset()

	assert.Equal(t, defaultConfig, *cache.Get(context.Background(), "acme.com"))
}

func TestConfigCacheDoesNotCacheErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLookup := NewMockConfigLookupInterface(ctrl)
	gomock.InOrder(
		mockLookup.EXPECT().FindEnabledDomain(gomock.Any(), "acme.com").Return(nil, errors.New("connection refused")),
		mockLookup.EXPECT().FindEnabledDomain(gomock.Any(), "http://acme.com").Return(nil, storage.ErrNotFound),
		mockLookup.EXPECT().FindEnabledDomain(gomock.Any(), "https://acme.com").Return(nil, storage.ErrNotFound),
		mockLookup.EXPECT().FindEnabledDomain(gomock.Any(), "acme.com").Return(&types.Domain{Name: "acme.com", Status: types.DomainStatusEnabled}, nil),
	)

	cache := newTestCache(mockLookup)

	assert.Equal(t, defaultConfig, *cache.Get(context.Background(), "acme.com"))
	assert.Equal(t, defaultConfig, *cache.Get(context.Background(), "acme.com"))
	assert.Equal(t, defaultConfig, *cache.Get(context.Background(), "acme.com"))
}

func TestConfigCacheEmptyDomain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := newTestCache(NewMockConfigLookupInterface(ctrl))

	assert.Equal(t, defaultConfig, *cache.Get(context.Background(), ""))
}

func TestConfigCacheMatchesStoredSpellings(t *testing.T) {
	tests := []struct {
		name     string
		domain   string
		variant  string
		stored   string
		expected types.StorageConfig
	}{
		{
			name:     "binding stored with https scheme",
			domain:   "acme.io",
			variant:  "https://acme.io",
			stored:   "https://acme.io",
			expected: types.StorageConfig{URL: "https://acme.storage", Key: "acme-key", Bucket: "portfolio-images", Custom: true},
		},
		{
			name:     "binding stored with http scheme",
			domain:   "https://acme.io/gallery",
			variant:  "http://acme.io",
			stored:   "http://acme.io",
			expected: types.StorageConfig{URL: "https://acme.storage", Key: "acme-key", Bucket: "portfolio-images", Custom: true},
		},
		{
			name:     "dev port stripped",
			domain:   "localhost:3000",
			variant:  "localhost",
			stored:   "localhost",
			expected: types.StorageConfig{URL: "https://acme.storage", Key: "acme-key", Bucket: "portfolio-images", Custom: true},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLookup := NewMockConfigLookupInterface(ctrl)
			mockLookup.EXPECT().FindEnabledDomain(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, variant string) (*types.Domain, error) {
					if variant != test.variant {
						return nil, storage.ErrNotFound
					}
					return &types.Domain{
						Name:       test.stored,
						Status:     types.DomainStatusEnabled,
						StorageURL: strPtr("https://acme.storage"),
						StorageKey: strPtr("acme-key"),
					}, nil
				},
			).AnyTimes()

			cache := newTestCache(mockLookup)

			assert.Equal(t, test.expected, *cache.Get(context.Background(), test.domain))
		})
	}
}

func TestConfigCacheSkipsDisabledBinding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLookup := NewMockConfigLookupInterface(ctrl)
	mockLookup.EXPECT().FindEnabledDomain(gomock.Any(), "acme.io").Return(&types.Domain{
		Name:       "acme.io",
		Status:     types.DomainStatusDisabled,
		StorageURL: strPtr("https://acme.storage"),
		StorageKey: strPtr("acme-key"),
	}, nil)
	mockLookup.EXPECT().FindEnabledDomain(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound).Times(2)

	cache := newTestCache(mockLookup)

	assert.Equal(t, defaultConfig, *cache.Get(context.Background(), "acme.io"))
}
