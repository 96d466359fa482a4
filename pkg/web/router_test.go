// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/portfolio-service/internal/db"
	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/objectstore"
	"github.com/canonical/portfolio-service/internal/storage"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/internal/types"
	"github.com/canonical/portfolio-service/pkg/authentication"
	"github.com/canonical/portfolio-service/pkg/content"
	"github.com/canonical/portfolio-service/pkg/domains"
	"github.com/canonical/portfolio-service/pkg/resolver"
)

const testSecret = "router-test-secret"

func newTestRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	dbClient := db.NewDBClientFromDB(sqlDB, tracer, monitor, logger)
	s := storage.NewStorage(dbClient, tracer, monitor, logger)
	verifier := authentication.NewHMACVerifier(testSecret, tracer, monitor, logger)

	configs := domains.NewConfigCache(s, types.StorageConfig{URL: "https://store.example", Key: "k", Bucket: "portfolio-images"}, "3000", tracer, monitor, logger)
	gallery := content.NewGalleryStore(configs, objectstore.NewFactory(tracer, monitor, logger), tracer, monitor, logger)
	gateways := content.NewGateways(storage.NewTables(dbClient, tracer, monitor, logger), s, gallery, tracer, monitor, logger)
	res := resolver.NewResolver(verifier, s, s, "3000", "", tracer, monitor, logger)

	router := NewRouter(
		Config{AllowedOrigins: []string{"*"}},
		verifier, res, s, gateways, configs, dbClient,
		tracer, monitor, logger,
	)

	return router, mock
}

func TestRouterAnonymousReads(t *testing.T) {
	router, mock := newTestRouter(t)

	tests := []struct {
		path     string
		demo     bool
		demoSize int
	}{
		{path: "/api/projects", demo: true, demoSize: 3},
		{path: "/api/categories", demo: true, demoSize: 6},
		{path: "/api/niches", demo: true, demoSize: 4},
		{path: "/api/technologies", demo: true, demoSize: 4},
		{path: "/api/menus", demo: true, demoSize: 0},
		{path: "/api/dynamic-sections", demo: true, demoSize: 0},
		{path: "/api/menus/sections", demo: false, demoSize: 0},
		{path: "/api/projects/p-1/images", demo: true, demoSize: 0},
		{path: "/api/gallery", demo: true, demoSize: 0},
	}

	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, test.path, nil))

			require.Equal(t, http.StatusOK, rr.Code)

			var body struct {
				Success bool              `json:"success"`
				Data    []json.RawMessage `json:"data"`
				Demo    bool              `json:"demo"`
			}
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))

			assert.True(t, body.Success)
			assert.Equal(t, test.demo, body.Demo)
			assert.Len(t, body.Data, test.demoSize)
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouterDashboardRead(t *testing.T) {
	router, mock := newTestRouter(t)

	token, err := authentication.SignToken(testSecret, authentication.Principal{TenantID: "tenant-a"}, time.Hour)
	require.NoError(t, err)

	now := time.Now()
	mock.ExpectQuery(`SELECT id, user_id, name, description, color, created_at, updated_at FROM categories WHERE user_id = \$1 ORDER BY created_at DESC`).
		WithArgs("tenant-a").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "description", "color", "created_at", "updated_at"}).
			AddRow("c1", "tenant-a", "Go", nil, nil, now, now))

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/categories", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.JSONEq(t, `"c1"`, string(mustField(t, rr.Body.Bytes(), "data", 0, "id")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouterRejectsAnonymousWrites(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{
		"/api/projects", "/api/categories", "/api/menus/reorder", "/api/contact-queries",
		"/api/dynamic-sections", "/api/dynamic-sections/reorder", "/api/projects/p-1/images",
	} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, path, nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code, path)
	}

	for _, path := range []string{"/api/auth/me", "/api/projects/p-1"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code, path)
	}
}

func TestRouterOperationalEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	for path, expected := range map[string]int{
		"/api/v0/status":       http.StatusOK,
		"/api/v0/ready":        http.StatusOK,
		"/api/v0/version":      http.StatusOK,
		"/api/v0/metrics":      http.StatusOK,
		"/api/domains/resolve": http.StatusNotFound,
	} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, expected, rr.Code, path)
	}
}

func TestRouterRegistrationWebhook(t *testing.T) {
	router, mock := newTestRouter(t)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("identity-1", "jo@example.com", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "full_name", "avatar_url", "email_verified", "is_admin", "created_at", "updated_at"}).
			AddRow("identity-1", "jo@example.com", nil, nil, nil, false, false, now, now))

	req := httptest.NewRequest(http.MethodPost, "/api/v0/webhooks/registration", strings.NewReader(`{"id":"identity-1","traits":{"email":"jo@example.com"}}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `"identity-1"`, string(mustField(t, rr.Body.Bytes(), "data", "id")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouterCORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
	req.Header.Set("Origin", "https://acme.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

// mustField walks a decoded JSON document by object keys and array indexes.
func mustField(t *testing.T, raw []byte, path ...interface{}) json.RawMessage {
	t.Helper()

	current := json.RawMessage(raw)
	for _, p := range path {
		switch key := p.(type) {
		case string:
			var obj map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(current, &obj))
			current = obj[key]
		case int:
			var arr []json.RawMessage
			require.NoError(t, json.Unmarshal(current, &arr))
			require.Greater(t, len(arr), key)
			current = arr[key]
		}
	}

	return current
}
