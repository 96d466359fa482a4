// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package domains

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/storage"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/internal/types"
	"github.com/canonical/portfolio-service/pkg/resolver"
)

// ConfigCache remembers which object store serves each request domain.
// Entries live for the lifetime of the process.
type ConfigCache struct {
	lookup   ConfigLookupInterface
	fallback types.StorageConfig
	devPort  string

	mu      sync.RWMutex
	entries map[string]types.StorageConfig
	group   singleflight.Group

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Get returns the storage configuration of domain, the default one when
// the domain has no custom store.
func (c *ConfigCache) Get(ctx context.Context, domain string) *types.StorageConfig {
	if domain == "" {
		return c.copyOf(c.fallback)
	}

	c.mu.RLock()
	cfg, ok := c.entries[domain]
	c.mu.RUnlock()

	if ok {
		return c.copyOf(cfg)
	}

	ctx, span := c.tracer.Start(ctx, "domains.ConfigCache.Get")
	defer span.End()

	v, _, _ := c.group.Do(domain, func() (interface{}, error) {
		c.mu.RLock()
		cfg, ok := c.entries[domain]
		c.mu.RUnlock()

		if ok {
			return cfg, nil
		}

		return c.load(ctx, domain), nil
	})

	return c.copyOf(v.(types.StorageConfig))
}

func (c *ConfigCache) load(ctx context.Context, domain string) types.StorageConfig {
	d, err := c.find(ctx, domain)
	if err != nil {
		// not cached, the next request retries
		c.logger.Errorf("failed to look up storage config for %q: %v", domain, err)
		return c.fallback
	}

	cfg := c.fallback
	if d != nil && d.StorageURL != nil && d.StorageKey != nil && *d.StorageURL != "" && *d.StorageKey != "" {
		cfg = types.StorageConfig{URL: *d.StorageURL, Key: *d.StorageKey, Bucket: c.fallback.Bucket, Custom: true}
	}

	c.mu.Lock()
	c.entries[domain] = cfg
	c.mu.Unlock()

	return cfg
}

// find walks the same domain spellings as the resolver so a binding stored
// with a scheme or dev port still yields its custom store.
func (c *ConfigCache) find(ctx context.Context, domain string) (*types.Domain, error) {
	var lastErr error

	for _, variant := range resolver.DomainVariants(resolver.ExtractHost(domain), c.devPort) {
		d, err := c.lookup.FindEnabledDomain(ctx, variant)

		switch {
		case errors.Is(err, storage.ErrNotFound):
			continue
		case err != nil:
			lastErr = err
			continue
		case !d.Enabled():
			continue
		}

		return d, nil
	}

	return nil, lastErr
}

func (c *ConfigCache) copyOf(cfg types.StorageConfig) *types.StorageConfig {
	return &cfg
}

// Reset drops every cached entry.
func (c *ConfigCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]types.StorageConfig)
}

func NewConfigCache(lookup ConfigLookupInterface, fallback types.StorageConfig, devPort string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *ConfigCache {
	c := new(ConfigCache)

	c.lookup = lookup
	c.fallback = fallback
	c.devPort = devPort
	c.entries = make(map[string]types.StorageConfig)

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
