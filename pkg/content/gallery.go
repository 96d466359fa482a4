// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/objectstore"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/internal/types"
)

const galleryListLimit = 1000

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// IsImage reports whether an object name is a visible image file.
func IsImage(name string) bool {
	if name == "" || strings.HasPrefix(name, ".") {
		return false
	}

	_, ok := imageExtensions[strings.ToLower(path.Ext(name))]
	return ok
}

// GalleryStore lists a tenant's uploaded images from the object store
// serving the request domain. It is read only.
type GalleryStore struct {
	configs StorageConfigInterface
	clients *objectstore.Factory

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *GalleryStore) ListByOwner(ctx context.Context, ownerID string, filters types.Filters) ([]*types.GalleryImage, error) {
	ctx, span := s.tracer.Start(ctx, "content.GalleryStore.ListByOwner")
	defer span.End()

	client := s.clients.Client(*s.configs.Get(ctx, filters.Domain))

	limit := galleryListLimit
	if filters.Limit > 0 {
		limit = int(filters.Limit)
	}

	objects, err := client.List(ctx, ownerID+"/", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery of %s: %w", ownerID, err)
	}

	images := make([]*types.GalleryImage, 0, len(objects))
	for _, o := range objects {
		if !IsImage(o.Name) {
			continue
		}

		p := ownerID + "/" + o.Name
		images = append(images, &types.GalleryImage{
			Name:      o.Name,
			URL:       client.PublicURL(p),
			Path:      p,
			Size:      o.Metadata.Size,
			CreatedAt: o.CreatedAt,
		})
	}

	return images, nil
}

func (s *GalleryStore) GetByOwner(context.Context, string, string) (*types.GalleryImage, error) {
	return nil, ErrReadOnly
}

func (s *GalleryStore) Insert(context.Context, string, map[string]interface{}) (*types.GalleryImage, error) {
	return nil, ErrReadOnly
}

func (s *GalleryStore) UpdateByOwner(context.Context, string, string, map[string]interface{}) (*types.GalleryImage, error) {
	return nil, ErrReadOnly
}

func (s *GalleryStore) DeleteByOwner(context.Context, string, string) error {
	return ErrReadOnly
}

func (s *GalleryStore) SetSortOrder(context.Context, string, string, int) error {
	return ErrReadOnly
}

func NewGalleryStore(configs StorageConfigInterface, clients *objectstore.Factory, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *GalleryStore {
	s := new(GalleryStore)

	s.configs = configs
	s.clients = clients

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
