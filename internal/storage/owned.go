// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/canonical/portfolio-service/internal/db"
	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/internal/types"
)

// TableSpec describes a table whose rows belong to a single tenant through
// its user_id column.
type TableSpec[T any] struct {
	Name string
	// Columns in the order Scan reads them.
	Columns []string
	OrderBy []string
	Scan    func(rowScanner) (*T, error)
	// Filter narrows list queries, may be nil.
	Filter func(sq.SelectBuilder, types.Filters) sq.SelectBuilder
	// Sortable tables carry a sort_order column.
	Sortable bool
	// BeforeDelete runs inside the delete, after ownership was established.
	BeforeDelete func(ctx context.Context, sb sq.StatementBuilderType, ownerID, id string) error
}

// columns a caller can never set directly
var protectedColumns = []string{"id", "user_id", "created_at", "updated_at"}

type OwnedTable[T any] struct {
	spec TableSpec[T]

	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func (t *OwnedTable[T]) Name() string {
	return t.spec.Name
}

func (t *OwnedTable[T]) ListByOwner(ctx context.Context, ownerID string, filters types.Filters) ([]*T, error) {
	ctx, span := t.tracer.Start(ctx, "storage.OwnedTable.ListByOwner")
	defer span.End()
	span.SetAttributes(attribute.String("db.table", t.spec.Name))

	query := t.db.Statement(ctx).
		Select(t.spec.Columns...).
		From(t.spec.Name).
		Where(sq.Eq{"user_id": ownerID})

	if t.spec.Filter != nil {
		query = t.spec.Filter(query, filters)
	}

	query = query.OrderBy(t.spec.OrderBy...)

	if filters.Limit > 0 {
		pageSize := db.PageSize(filters.Limit)
		query = query.Limit(pageSize).Offset(db.Offset(filters.Page, pageSize))
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", t.spec.Name, err)
	}
	defer rows.Close()

	items := make([]*T, 0)
	for rows.Next() {
		item, err := t.spec.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", t.spec.Name, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return items, nil
}

// GetByOwner returns ErrNotFound both when the row does not exist and when
// it belongs to another tenant.
func (t *OwnedTable[T]) GetByOwner(ctx context.Context, ownerID, id string) (*T, error) {
	ctx, span := t.tracer.Start(ctx, "storage.OwnedTable.GetByOwner")
	defer span.End()
	span.SetAttributes(attribute.String("db.table", t.spec.Name))

	item, err := t.spec.Scan(
		t.db.Statement(ctx).
			Select(t.spec.Columns...).
			From(t.spec.Name).
			Where(sq.Eq{"id": id, "user_id": ownerID}).
			QueryRowContext(ctx),
	)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", t.spec.Name, err)
	}

	return item, nil
}

func (t *OwnedTable[T]) Insert(ctx context.Context, ownerID string, values map[string]interface{}) (*T, error) {
	ctx, span := t.tracer.Start(ctx, "storage.OwnedTable.Insert")
	defer span.End()
	span.SetAttributes(attribute.String("db.table", t.spec.Name))

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s ID: %w", t.spec.Name, err)
	}

	row := writable(values)
	row["id"] = id.String()
	row["user_id"] = ownerID

	item, err := t.spec.Scan(
		t.db.Statement(ctx).
			Insert(t.spec.Name).
			SetMap(row).
			Suffix("RETURNING " + strings.Join(t.spec.Columns, ", ")).
			QueryRowContext(ctx),
	)

	if err != nil {
		if cErr := constraintError(err, t.spec.Name); cErr != nil {
			return nil, cErr
		}
		return nil, fmt.Errorf("failed to insert %s: %w", t.spec.Name, err)
	}

	return item, nil
}

func (t *OwnedTable[T]) UpdateByOwner(ctx context.Context, ownerID, id string, values map[string]interface{}) (*T, error) {
	ctx, span := t.tracer.Start(ctx, "storage.OwnedTable.UpdateByOwner")
	defer span.End()
	span.SetAttributes(attribute.String("db.table", t.spec.Name))

	item, err := t.spec.Scan(
		t.db.Statement(ctx).
			Update(t.spec.Name).
			SetMap(writable(values)).
			Set("updated_at", sq.Expr("NOW()")).
			Where(sq.Eq{"id": id, "user_id": ownerID}).
			Suffix("RETURNING " + strings.Join(t.spec.Columns, ", ")).
			QueryRowContext(ctx),
	)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update %s: %w", t.spec.Name, err)
	}

	return item, nil
}

func (t *OwnedTable[T]) DeleteByOwner(ctx context.Context, ownerID, id string) error {
	ctx, span := t.tracer.Start(ctx, "storage.OwnedTable.DeleteByOwner")
	defer span.End()
	span.SetAttributes(attribute.String("db.table", t.spec.Name))

	if t.spec.BeforeDelete != nil {
		if err := t.spec.BeforeDelete(ctx, t.db.Statement(ctx), ownerID, id); err != nil {
			return fmt.Errorf("failed to prepare %s delete: %w", t.spec.Name, err)
		}
	}

	res, err := t.db.Statement(ctx).
		Delete(t.spec.Name).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", t.spec.Name, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (t *OwnedTable[T]) SetSortOrder(ctx context.Context, ownerID, id string, order int) error {
	ctx, span := t.tracer.Start(ctx, "storage.OwnedTable.SetSortOrder")
	defer span.End()
	span.SetAttributes(attribute.String("db.table", t.spec.Name))

	if !t.spec.Sortable {
		return fmt.Errorf("%s has no sort order", t.spec.Name)
	}

	res, err := t.db.Statement(ctx).
		Update(t.spec.Name).
		Set("sort_order", order).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to reorder %s: %w", t.spec.Name, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func writable(values map[string]interface{}) map[string]interface{} {
	row := make(map[string]interface{}, len(values)+2)
	for k, v := range values {
		row[k] = v
	}

	for _, c := range protectedColumns {
		delete(row, c)
	}

	return row
}

func NewOwnedTable[T any](spec TableSpec[T], c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *OwnedTable[T] {
	t := new(OwnedTable[T])

	t.spec = spec
	t.db = c

	t.logger = logger
	t.tracer = tracer
	t.monitor = monitor

	return t
}
