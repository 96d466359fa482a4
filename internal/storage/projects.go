// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/portfolio-service/internal/db"
	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/internal/types"
)

var projectColumns = []string{
	"id", "user_id", "title", "description", "category", "overview", "technologies", "features",
	"live_url", "github_url", "status", "is_prompt", "views", "created_at", "updated_at",
}

var projectOrder = []string{"created_at DESC", "id"}

var projectImageColumns = []string{
	"id", "project_id", "user_id", "url", "path", "name", "original_name",
	"size", "type", "bucket", "order_index", "created_at",
}

var imageColumns = prefixed("i.", projectImageColumns)

func prefixed(prefix string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = prefix + c
	}
	return out
}

var ProjectSpec = TableSpec[types.Project]{
	Name:    "projects",
	Columns: projectColumns,
	OrderBy: newestFirst,
	Scan: func(row rowScanner) (*types.Project, error) {
		var p types.Project
		if err := row.Scan(projectDest(&p)...); err != nil {
			return nil, err
		}
		p.Images = []*types.ProjectImage{}
		return &p, nil
	},
}

func projectDest(p *types.Project) []interface{} {
	return []interface{}{
		&p.ID, &p.UserID, &p.Title, &p.Description, &p.Category, &p.Overview, &p.Technologies, &p.Features,
		&p.LiveURL, &p.GithubURL, &p.Status, &p.IsPrompt, &p.Views, &p.CreatedAt, &p.UpdatedAt,
	}
}

// ProjectStore reads projects together with their images; writes go
// through the embedded owned table.
type ProjectStore struct {
	*OwnedTable[types.Project]
}

func (s *ProjectStore) ListByOwner(ctx context.Context, ownerID string, filters types.Filters) ([]*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ProjectStore.ListByOwner")
	defer span.End()

	where := sq.Eq{"user_id": ownerID}
	if filters.PublicOnly {
		where["status"] = types.ProjectStatusPublished
	}

	page := sq.Select(projectColumns...).
		From("projects").
		Where(where).
		OrderBy(projectOrder...)

	if filters.Limit > 0 {
		pageSize := db.PageSize(filters.Limit)
		page = page.Limit(pageSize).Offset(db.Offset(filters.Page, pageSize))
	}

	return s.listWithImages(ctx, page)
}

func (s *ProjectStore) GetByOwner(ctx context.Context, ownerID, id string) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ProjectStore.GetByOwner")
	defer span.End()

	projects, err := s.listWithImages(ctx, sq.Select(projectColumns...).
		From("projects").
		Where(sq.Eq{"user_id": ownerID, "id": id}),
	)
	if err != nil {
		return nil, err
	}

	if len(projects) == 0 {
		return nil, ErrNotFound
	}

	return projects[0], nil
}

// UpdateByOwner returns the updated project with its images, the shape
// list reads have.
func (s *ProjectStore) UpdateByOwner(ctx context.Context, ownerID, id string, values map[string]interface{}) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ProjectStore.UpdateByOwner")
	defer span.End()

	if _, err := s.OwnedTable.UpdateByOwner(ctx, ownerID, id, values); err != nil {
		return nil, err
	}

	return s.GetByOwner(ctx, ownerID, id)
}

// listWithImages joins images onto the projects selected by page, which
// already carries the tenant scope and any pagination.
func (s *ProjectStore) listWithImages(ctx context.Context, page sq.SelectBuilder) ([]*types.Project, error) {
	columns := append(prefixed("p.", projectColumns), imageColumns...)

	rows, err := s.db.Statement(ctx).
		Select(columns...).
		FromSelect(page, "p").
		LeftJoin("project_images i ON i.project_id = p.id").
		OrderBy("p.created_at DESC", "p.id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]*types.Project, 0)
	byID := make(map[string]*types.Project)

	for rows.Next() {
		var p types.Project
		var img nullableImage

		dest := append(projectDest(&p), img.dest()...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}

		project, ok := byID[p.ID]
		if !ok {
			project = &p
			project.Images = []*types.ProjectImage{}
			byID[p.ID] = project
			projects = append(projects, project)
		}

		if image := img.image(); image != nil {
			project.Images = append(project.Images, image)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	for _, p := range projects {
		SortImages(p.Images)
	}

	return projects, nil
}

// SortImages orders images by order_index, then by creation time.
func SortImages(images []*types.ProjectImage) {
	sort.SliceStable(images, func(i, j int) bool {
		if images[i].OrderIndex != images[j].OrderIndex {
			return images[i].OrderIndex < images[j].OrderIndex
		}
		return images[i].CreatedAt.Before(images[j].CreatedAt)
	})
}

// nullableImage receives the image side of the left join, which is all
// NULL for projects without images.
type nullableImage struct {
	ID           sql.NullString
	ProjectID    sql.NullString
	UserID       sql.NullString
	URL          sql.NullString
	Path         sql.NullString
	Name         sql.NullString
	OriginalName sql.NullString
	Size         sql.NullInt64
	Type         sql.NullString
	Bucket       sql.NullString
	OrderIndex   sql.NullInt64
	CreatedAt    sql.NullTime
}

func (n *nullableImage) dest() []interface{} {
	return []interface{}{
		&n.ID, &n.ProjectID, &n.UserID, &n.URL, &n.Path, &n.Name, &n.OriginalName,
		&n.Size, &n.Type, &n.Bucket, &n.OrderIndex, &n.CreatedAt,
	}
}

func (n *nullableImage) image() *types.ProjectImage {
	if !n.ID.Valid {
		return nil
	}

	img := &types.ProjectImage{
		ID:           n.ID.String,
		ProjectID:    n.ProjectID.String,
		UserID:       n.UserID.String,
		URL:          n.URL.String,
		Path:         nullString(n.Path),
		Name:         nullString(n.Name),
		OriginalName: nullString(n.OriginalName),
		Type:         nullString(n.Type),
		Bucket:       nullString(n.Bucket),
		OrderIndex:   int(n.OrderIndex.Int64),
	}

	if n.Size.Valid {
		size := n.Size.Int64
		img.Size = &size
	}

	if n.CreatedAt.Valid {
		img.CreatedAt = n.CreatedAt.Time
	}

	return img
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func NewProjectStore(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *ProjectStore {
	return &ProjectStore{
		OwnedTable: NewOwnedTable(ProjectSpec, c, tracer, monitor, logger),
	}
}
