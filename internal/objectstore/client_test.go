// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package objectstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/internal/types"
)

func newTestClient(url string) *Client {
	logger := logging.NewNoopLogger()

	return NewClient(
		types.StorageConfig{URL: url, Key: "secret", Bucket: "portfolio-images"},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test", logger),
		logger,
	)
}

func TestClient_List(t *testing.T) {
	var received listRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/storage/v1/object/list/portfolio-images", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"1","name":"a.png","metadata":{"size":10,"mimetype":"image/png"}},{"id":"2","name":".emptyFolderPlaceholder"}]`))
	}))
	defer srv.Close()

	objects, err := newTestClient(srv.URL).List(context.Background(), "user-1/", 100)

	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, "a.png", objects[0].Name)
	assert.Equal(t, int64(10), objects[0].Metadata.Size)
	assert.Equal(t, "user-1/", received.Prefix)
	assert.Equal(t, 100, received.Limit)
}

func TestClient_ListError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Bucket not found","message":"Bucket not found"}`))
	}))
	defer srv.Close()

	objects, err := newTestClient(srv.URL).List(context.Background(), "user-1/", 100)

	assert.Nil(t, objects)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bucket not found")
}

func TestClient_PublicURL(t *testing.T) {
	c := newTestClient("https://store.example/")

	assert.Equal(t,
		"https://store.example/storage/v1/object/public/portfolio-images/user-1/my%20image.png",
		c.PublicURL("user-1/my image.png"),
	)
}

func TestFactory_ReusesClients(t *testing.T) {
	logger := logging.NewNoopLogger()
	f := NewFactory(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	cfg := types.StorageConfig{URL: "https://a.example", Key: "k", Bucket: "b"}

	assert.Same(t, f.Client(cfg), f.Client(cfg))
	assert.NotSame(t, f.Client(cfg), f.Client(types.StorageConfig{URL: "https://b.example", Key: "k", Bucket: "b"}))
}
