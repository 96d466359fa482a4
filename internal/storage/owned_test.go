// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/internal/types"
)

func newTestTables(t *testing.T) (sqlmock.Sqlmock, *Tables, func()) {
	sqlDB, mock, client := setupMockDB(t)
	logger := logging.NewNoopLogger()

	tables := NewTables(client, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	return mock, tables, func() { sqlDB.Close() }
}

func TestOwnedTable_ListByOwner(t *testing.T) {
	mock, tables, done := newTestTables(t)
	defer done()

	now := time.Now()
	rows := sqlmock.NewRows(CategorySpec.Columns).
		AddRow("cat-1", "user-1", "Web", "Full-stack", "#8B4513", now, now).
		AddRow("cat-2", "user-1", "AI", nil, nil, now, now)

	mock.ExpectQuery(`SELECT id, user_id, name, description, color, created_at, updated_at FROM categories WHERE user_id = \$1 ORDER BY created_at DESC`).
		WithArgs("user-1").
		WillReturnRows(rows)

	categories, err := tables.Categories.ListByOwner(context.Background(), "user-1", types.Filters{})

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Web", categories[0].Name)
	assert.Nil(t, categories[1].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOwnedTable_ListByOwnerEmpty(t *testing.T) {
	mock, tables, done := newTestTables(t)
	defer done()

	mock.ExpectQuery(`FROM categories WHERE user_id = \$1`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(CategorySpec.Columns))

	categories, err := tables.Categories.ListByOwner(context.Background(), "user-1", types.Filters{})

	require.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Len(t, categories, 0)
}

func TestOwnedTable_ListByOwnerPaginated(t *testing.T) {
	mock, tables, done := newTestTables(t)
	defer done()

	mock.ExpectQuery(`FROM categories WHERE user_id = \$1 ORDER BY created_at DESC LIMIT 10 OFFSET 10`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(CategorySpec.Columns))

	_, err := tables.Categories.ListByOwner(context.Background(), "user-1", types.Filters{Limit: 10, Page: 2})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMenus_LocationFilter(t *testing.T) {
	tests := []struct {
		name    string
		filters types.Filters
		query   string
		args    []driver.Value
	}{
		{
			name:    "header",
			filters: types.Filters{Location: types.LocationHeader},
			query:   `FROM menus WHERE user_id = \$1 AND is_visible = \$2 AND show_in_header = \$3 ORDER BY sort_order ASC, created_at ASC`,
			args:    []driver.Value{"user-1", true, true},
		},
		{
			name:    "footer",
			filters: types.Filters{Location: types.LocationFooter},
			query:   `FROM menus WHERE user_id = \$1 AND is_visible = \$2 AND show_in_footer = \$3`,
			args:    []driver.Value{"user-1", true, true},
		},
		{
			name:    "public without location",
			filters: types.Filters{PublicOnly: true},
			query:   `FROM menus WHERE user_id = \$1 AND is_visible = \$2 ORDER BY`,
			args:    []driver.Value{"user-1", true},
		},
		{
			name:    "dashboard",
			filters: types.Filters{},
			query:   `FROM menus WHERE user_id = \$1 ORDER BY sort_order ASC, created_at ASC`,
			args:    []driver.Value{"user-1"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mock, tables, done := newTestTables(t)
			defer done()

			mock.ExpectQuery(test.query).
				WithArgs(test.args...).
				WillReturnRows(sqlmock.NewRows(MenuSpec.Columns))

			_, err := tables.Menus.ListByOwner(context.Background(), "user-1", test.filters)

			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOwnedTable_Insert(t *testing.T) {
	mock, tables, done := newTestTables(t)
	defer done()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO categories \(color,description,id,name,user_id\) VALUES \(\$1,\$2,\$3,\$4,\$5\) RETURNING id, user_id, name, description, color, created_at, updated_at`).
		WithArgs("#fff", "desc", sqlmock.AnyArg(), "Web", "user-1").
		WillReturnRows(sqlmock.NewRows(CategorySpec.Columns).AddRow("cat-1", "user-1", "Web", "desc", "#fff", now, now))

	c, err := tables.Categories.Insert(context.Background(), "user-1", map[string]interface{}{
		"name":        "Web",
		"description": "desc",
		"color":       "#fff",
		// never honored
		"id":      "forged-id",
		"user_id": "someone-else",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", c.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOwnedTable_InsertDuplicate(t *testing.T) {
	mock, tables, done := newTestTables(t)
	defer done()

	mock.ExpectQuery(`INSERT INTO categories`).
		WillReturnError(&pgconn.PgError{Code: pgErrCodeUniqueViolation})

	_, err := tables.Categories.Insert(context.Background(), "user-1", map[string]interface{}{"name": "Web"})

	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestOwnedTable_GetByOwner(t *testing.T) {
	mock, tables, done := newTestTables(t)
	defer done()

	mock.ExpectQuery(`FROM niches WHERE id = \$1 AND user_id = \$2`).
		WithArgs("niche-1", "user-2").
		WillReturnRows(sqlmock.NewRows(NicheSpec.Columns))

	n, err := tables.Niches.GetByOwner(context.Background(), "user-2", "niche-1")

	assert.Nil(t, n)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOwnedTable_UpdateByOwner(t *testing.T) {
	mock, tables, done := newTestTables(t)
	defer done()

	now := time.Now()
	mock.ExpectQuery(`UPDATE technologies SET skills = \$1, title = \$2, updated_at = NOW\(\) WHERE id = \$3 AND user_id = \$4 RETURNING`).
		WithArgs(`[{"name":"Go","level":90}]`, "Backend", "tech-1", "user-1").
		WillReturnRows(sqlmock.NewRows(TechnologySpec.Columns).
			AddRow("tech-1", "user-1", "Backend", "domain", nil, []byte(`[{"name":"Go","level":90}]`), 1, now, now))

	tech, err := tables.Technologies.UpdateByOwner(context.Background(), "user-1", "tech-1", map[string]interface{}{
		"title":  "Backend",
		"skills": types.JSONList[types.Skill]{{Name: "Go", Level: 90}},
	})

	require.NoError(t, err)
	require.Len(t, tech.Skills, 1)
	assert.Equal(t, "Go", tech.Skills[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOwnedTable_UpdateByOwnerNotFound(t *testing.T) {
	mock, tables, done := newTestTables(t)
	defer done()

	mock.ExpectQuery(`UPDATE categories SET`).
		WillReturnRows(sqlmock.NewRows(CategorySpec.Columns))

	_, err := tables.Categories.UpdateByOwner(context.Background(), "user-1", "cat-9", map[string]interface{}{"name": "x"})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOwnedTable_DeleteByOwner(t *testing.T) {
	tests := []struct {
		name        string
		affected    int64
		expectedErr error
	}{
		{name: "deleted", affected: 1},
		{name: "not owned", affected: 0, expectedErr: ErrNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mock, tables, done := newTestTables(t)
			defer done()

			mock.ExpectExec(`DELETE FROM categories WHERE id = \$1 AND user_id = \$2`).
				WithArgs("cat-1", "user-1").
				WillReturnResult(sqlmock.NewResult(0, test.affected))

			err := tables.Categories.DeleteByOwner(context.Background(), "user-1", "cat-1")

			if test.expectedErr != nil {
				assert.ErrorIs(t, err, test.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDynamicSections_DeleteClearsPositionAfter(t *testing.T) {
	mock, tables, done := newTestTables(t)
	defer done()

	mock.ExpectExec(`UPDATE dynamic_sections SET position_after = \$1 WHERE position_after = \$2 AND user_id = \$3`).
		WithArgs(sqlmock.AnyArg(), "sec-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM dynamic_sections WHERE id = \$1 AND user_id = \$2`).
		WithArgs("sec-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := tables.Sections.DeleteByOwner(context.Background(), "user-1", "sec-1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOwnedTable_SetSortOrder(t *testing.T) {
	mock, tables, done := newTestTables(t)
	defer done()

	mock.ExpectExec(`UPDATE menus SET sort_order = \$1, updated_at = NOW\(\) WHERE id = \$2 AND user_id = \$3`).
		WithArgs(2, "menu-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, tables.Menus.SetSortOrder(context.Background(), "user-1", "menu-1", 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOwnedTable_SetSortOrderNotSortable(t *testing.T) {
	mock, tables, done := newTestTables(t)
	defer done()

	err := tables.Categories.SetSortOrder(context.Background(), "user-1", "cat-1", 1)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
