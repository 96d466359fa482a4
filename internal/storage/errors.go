// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrCheckViolation      = errors.New("check constraint violation")
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeCheckViolation      = "23514"
)

var constraintErrors = map[string]error{
	pgErrCodeUniqueViolation:     ErrDuplicateKey,
	pgErrCodeForeignKeyViolation: ErrForeignKeyViolation,
	pgErrCodeCheckViolation:      ErrCheckViolation,
}

// constraintError maps a Postgres constraint violation on table to one of the
// sentinel errors. It returns nil for any other error.
func constraintError(err error, table string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	sentinel, ok := constraintErrors[pgErr.Code]
	if !ok {
		return nil
	}

	if pgErr.ConstraintName != "" {
		return fmt.Errorf("%s (%s): %w", table, pgErr.ConstraintName, sentinel)
	}

	return fmt.Errorf("%s: %w", table, sentinel)
}

// isNoRows matches sql.ErrNoRows, which pgx.ErrNoRows also wraps.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
