// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/portfolio-service/internal/types"
)

func projectJoinColumns() []string {
	return append(append([]string{}, projectColumns...), prefixed("img_", projectImageColumns)...)
}

func TestProjectStore_ListByOwnerGroupsAndSortsImages(t *testing.T) {
	mock, tables, done := newTestTables(t)
	defer done()

	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tech := []byte(`["Go"]`)
	features := []byte(`[]`)

	rows := sqlmock.NewRows(projectJoinColumns()).
		// project with images returned out of order by the join
		AddRow("p-1", "user-1", "Shop", nil, nil, nil, tech, features, nil, nil, "published", false, 10, t0, t0,
			"img-b", "p-1", "user-1", "/b.png", nil, nil, nil, nil, nil, nil, 2, t0).
		AddRow("p-1", "user-1", "Shop", nil, nil, nil, tech, features, nil, nil, "published", false, 10, t0, t0,
			"img-c", "p-1", "user-1", "/c.png", nil, nil, nil, nil, nil, nil, 1, t0.Add(time.Minute)).
		AddRow("p-1", "user-1", "Shop", nil, nil, nil, tech, features, nil, nil, "published", false, 10, t0, t0,
			"img-a", "p-1", "user-1", "/a.png", nil, nil, nil, int64(2048), nil, nil, 1, t0).
		// project without images
		AddRow("p-2", "user-1", "Bot", nil, nil, nil, tech, features, nil, nil, "published", false, 0, t0, t0,
			nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil)

	mock.ExpectQuery(`SELECT p.id, .* FROM \(SELECT id, .* FROM projects WHERE status = \$1 AND user_id = \$2 ORDER BY created_at DESC, id\) AS p LEFT JOIN project_images i ON i.project_id = p.id ORDER BY p.created_at DESC, p.id`).
		WithArgs(types.ProjectStatusPublished, "user-1").
		WillReturnRows(rows)

	projects, err := tables.Projects.ListByOwner(context.Background(), "user-1", types.Filters{PublicOnly: true})

	require.NoError(t, err)
	require.Len(t, projects, 2)

	images := projects[0].Images
	require.Len(t, images, 3)
	assert.Equal(t, "img-a", images[0].ID)
	assert.Equal(t, "img-c", images[1].ID)
	assert.Equal(t, "img-b", images[2].ID)
	require.NotNil(t, images[0].Size)
	assert.Equal(t, int64(2048), *images[0].Size)

	assert.Equal(t, "p-2", projects[1].ID)
	assert.NotNil(t, projects[1].Images)
	assert.Len(t, projects[1].Images, 0)
	assert.Equal(t, []string{"Go"}, []string(projects[0].Technologies))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectStore_ListByOwnerDashboardIncludesDrafts(t *testing.T) {
	mock, tables, done := newTestTables(t)
	defer done()

	mock.ExpectQuery(`FROM \(SELECT .* FROM projects WHERE user_id = \$1 ORDER BY created_at DESC, id\) AS p LEFT JOIN project_images i ON i.project_id = p.id ORDER BY`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(projectJoinColumns()))

	projects, err := tables.Projects.ListByOwner(context.Background(), "user-1", types.Filters{})

	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectStore_GetByOwnerNotFound(t *testing.T) {
	mock, tables, done := newTestTables(t)
	defer done()

	mock.ExpectQuery(`FROM \(SELECT .* FROM projects WHERE id = \$1 AND user_id = \$2\) AS p`).
		WithArgs("p-1", "user-2").
		WillReturnRows(sqlmock.NewRows(projectJoinColumns()))

	p, err := tables.Projects.GetByOwner(context.Background(), "user-2", "p-1")

	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectStore_ListByOwnerPagesInQuery(t *testing.T) {
	mock, tables, done := newTestTables(t)
	defer done()

	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// the page is cut inside the subquery so the join only sees its projects
	mock.ExpectQuery(`FROM \(SELECT .* FROM projects WHERE user_id = \$1 ORDER BY created_at DESC, id LIMIT 2 OFFSET 2\) AS p LEFT JOIN project_images i`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(projectJoinColumns()).
			AddRow("p-3", "user-1", "Three", nil, nil, nil, []byte(`[]`), []byte(`[]`), nil, nil, "draft", false, 0, t0, t0,
				nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil))

	projects, err := tables.Projects.ListByOwner(context.Background(), "user-1", types.Filters{Limit: 2, Page: 2})

	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "p-3", projects[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectStore_UpdateByOwnerReturnsImages(t *testing.T) {
	mock, tables, done := newTestTables(t)
	defer done()

	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tech := []byte(`[]`)

	mock.ExpectQuery(`UPDATE projects SET title = \$1, updated_at = NOW\(\) WHERE id = \$2 AND user_id = \$3 RETURNING`).
		WithArgs("Shop v2", "p-1", "user-1").
		WillReturnRows(sqlmock.NewRows(projectColumns).
			AddRow("p-1", "user-1", "Shop v2", nil, nil, nil, tech, tech, nil, nil, "published", false, 10, t0, t0))
	mock.ExpectQuery(`FROM \(SELECT .* FROM projects WHERE id = \$1 AND user_id = \$2\) AS p LEFT JOIN project_images i`).
		WithArgs("p-1", "user-1").
		WillReturnRows(sqlmock.NewRows(projectJoinColumns()).
			AddRow("p-1", "user-1", "Shop v2", nil, nil, nil, tech, tech, nil, nil, "published", false, 10, t0, t0,
				"img-a", "p-1", "user-1", "/a.png", nil, nil, nil, nil, nil, nil, 1, t0))

	p, err := tables.Projects.UpdateByOwner(context.Background(), "user-1", "p-1", map[string]interface{}{"title": "Shop v2"})

	require.NoError(t, err)
	assert.Equal(t, "Shop v2", p.Title)
	require.Len(t, p.Images, 1)
	assert.Equal(t, "img-a", p.Images[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectStore_UpdateByOwnerNotFound(t *testing.T) {
	mock, tables, done := newTestTables(t)
	defer done()

	mock.ExpectQuery(`UPDATE projects SET`).
		WillReturnRows(sqlmock.NewRows(projectColumns))

	p, err := tables.Projects.UpdateByOwner(context.Background(), "user-1", "p-9", map[string]interface{}{"title": "x"})

	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSortImages(t *testing.T) {
	t0 := time.Now()

	images := []*types.ProjectImage{
		{ID: "late", OrderIndex: 0, CreatedAt: t0.Add(time.Hour)},
		{ID: "second", OrderIndex: 1, CreatedAt: t0},
		{ID: "early", OrderIndex: 0, CreatedAt: t0},
	}

	SortImages(images)

	assert.Equal(t, "early", images[0].ID)
	assert.Equal(t, "late", images[1].ID)
	assert.Equal(t, "second", images[2].ID)
}
