// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/tracing"
)

func newMockClient(t *testing.T) (*DBClient, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	logger := logging.NewNoopLogger()

	return NewDBClientFromDB(sqlDB, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger), mock
}

func TestOffset(t *testing.T) {
	tests := []struct {
		page     int64
		size     uint64
		expected uint64
	}{
		{page: 0, size: 10, expected: 0},
		{page: -3, size: 10, expected: 0},
		{page: 1, size: 10, expected: 0},
		{page: 3, size: 25, expected: 50},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, Offset(test.page, test.size))
	}
}

func TestPageSize(t *testing.T) {
	assert.Equal(t, defaultPageSize, PageSize(0))
	assert.Equal(t, defaultPageSize, PageSize(-1))
	assert.Equal(t, uint64(20), PageSize(20))
	assert.Equal(t, maxPageSize, PageSize(5000))
}

func TestPing(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	logger := logging.NewNoopLogger()
	client := NewDBClientFromDB(sqlDB, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	mock.ExpectPing()
	assert.NoError(t, client.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.ErrorContains(t, client.Ping(context.Background()), "database unreachable")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_NoStatementsNoTransaction(t *testing.T) {
	client, mock := newMockClient(t)

	err := client.WithTx(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_ConcurrentStatementsShareOneTransaction(t *testing.T) {
	client, mock := newMockClient(t)

	mock.MatchExpectationsInOrder(false)
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE menus SET sort_order`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE menus SET sort_order`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE menus SET sort_order`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := client.WithTx(context.Background(), func(ctx context.Context) error {
		var wg sync.WaitGroup
		errs := make(chan error, 3)

		for i := 0; i < 3; i++ {
			wg.Add(1)
			go func(order int) {
				defer wg.Done()
				_, err := client.Statement(ctx).
					Update("menus").
					Set("sort_order", order).
					ExecContext(ctx)
				errs <- err
			}(i)
		}

		wg.Wait()
		close(errs)

		for err := range errs {
			if err != nil {
				return err
			}
		}

		return nil
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		status     int
		expectTx   bool
		expectDone func(sqlmock.Sqlmock)
	}{
		{
			name:     "get skips transaction",
			method:   http.MethodGet,
			status:   http.StatusOK,
			expectTx: false,
		},
		{
			name:     "successful write commits",
			method:   http.MethodPost,
			status:   http.StatusCreated,
			expectTx: true,
			expectDone: func(mock sqlmock.Sqlmock) {
				mock.ExpectCommit()
			},
		},
		{
			name:     "options skips transaction",
			method:   http.MethodOptions,
			status:   http.StatusNoContent,
			expectTx: false,
		},
		{
			name:     "failed write rolls back",
			method:   http.MethodPut,
			status:   http.StatusBadRequest,
			expectTx: true,
			expectDone: func(mock sqlmock.Sqlmock) {
				mock.ExpectRollback()
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			client, mock := newMockClient(t)

			if test.expectTx {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM categories`).WillReturnResult(sqlmock.NewResult(0, 1))
				test.expectDone(mock)
			} else {
				mock.ExpectExec(`DELETE FROM categories`).WillReturnResult(sqlmock.NewResult(0, 1))
			}

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, err := client.Statement(r.Context()).Delete("categories").ExecContext(r.Context())
				require.NoError(t, err)
				w.WriteHeader(test.status)
			})

			req := httptest.NewRequest(test.method, "/api/categories", nil)
			rr := httptest.NewRecorder()

			TransactionMiddleware(client, logging.NewNoopLogger())(handler).ServeHTTP(rr, req)

			assert.Equal(t, test.status, rr.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
