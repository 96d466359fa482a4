// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/portfolio-service/internal/db"
	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/internal/types"
)

var imageOrder = []string{"order_index ASC", "created_at ASC"}

// ProjectImageStore manages the images of a project. Every operation is
// scoped by both the project and the tenant owning it.
type ProjectImageStore struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func (s *ProjectImageStore) ListByProject(ctx context.Context, ownerID, projectID string) ([]*types.ProjectImage, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ProjectImageStore.ListByProject")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(projectImageColumns...).
		From("project_images").
		Where(sq.Eq{"project_id": projectID, "user_id": ownerID}).
		OrderBy(imageOrder...).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list project images: %w", err)
	}
	defer rows.Close()

	images := make([]*types.ProjectImage, 0)
	for rows.Next() {
		img, err := scanProjectImage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project image: %w", err)
		}
		images = append(images, img)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return images, nil
}

// Insert adds an image to a project of ownerID. A project that does not
// exist or belongs to another tenant yields ErrNotFound.
func (s *ProjectImageStore) Insert(ctx context.Context, ownerID, projectID string, values map[string]interface{}) (*types.ProjectImage, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ProjectImageStore.Insert")
	defer span.End()

	if err := s.projectOwned(ctx, ownerID, projectID); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate project image ID: %w", err)
	}

	row := writable(values)
	row["id"] = id.String()
	row["project_id"] = projectID
	row["user_id"] = ownerID

	img, err := scanProjectImage(
		s.db.Statement(ctx).
			Insert("project_images").
			SetMap(row).
			Suffix("RETURNING " + strings.Join(projectImageColumns, ", ")).
			QueryRowContext(ctx),
	)

	if err != nil {
		if cErr := constraintError(err, "project_images"); cErr != nil {
			return nil, cErr
		}
		return nil, fmt.Errorf("failed to insert project image: %w", err)
	}

	return img, nil
}

// DeleteByProject removes every image of a project of ownerID and reports
// how many were removed.
func (s *ProjectImageStore) DeleteByProject(ctx context.Context, ownerID, projectID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ProjectImageStore.DeleteByProject")
	defer span.End()

	if err := s.projectOwned(ctx, ownerID, projectID); err != nil {
		return 0, err
	}

	res, err := s.db.Statement(ctx).
		Delete("project_images").
		Where(sq.Eq{"project_id": projectID, "user_id": ownerID}).
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete project images: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return n, nil
}

func (s *ProjectImageStore) projectOwned(ctx context.Context, ownerID, projectID string) error {
	var id string

	err := s.db.Statement(ctx).
		Select("id").
		From("projects").
		Where(sq.Eq{"id": projectID, "user_id": ownerID}).
		QueryRowContext(ctx).
		Scan(&id)

	if err != nil {
		if isNoRows(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to check project owner: %w", err)
	}

	return nil
}

func scanProjectImage(row rowScanner) (*types.ProjectImage, error) {
	var img types.ProjectImage

	err := row.Scan(
		&img.ID, &img.ProjectID, &img.UserID, &img.URL, &img.Path, &img.Name, &img.OriginalName,
		&img.Size, &img.Type, &img.Bucket, &img.OrderIndex, &img.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &img, nil
}

func NewProjectImageStore(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *ProjectImageStore {
	s := new(ProjectImageStore)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}
