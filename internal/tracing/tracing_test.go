// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
)

func TestConfigExporter(t *testing.T) {
	logger := logging.NewNoopLogger()

	tests := []struct {
		grpc, http string
		expected   string
	}{
		{expected: ExporterStdout},
		{http: "collector:4318", expected: ExporterHTTP},
		{grpc: "collector:4317", expected: ExporterGRPC},
		{grpc: "collector:4317", http: "collector:4318", expected: ExporterGRPC},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			assert.Equal(t, test.expected, NewConfig(true, test.grpc, test.http, logger).Exporter())
		})
	}
}

func TestTraceable(t *testing.T) {
	for path, expected := range map[string]bool{
		"/api/projects":                 true,
		"/api/dashboard/menus":          true,
		"/api/v0/webhooks/registration": true,
		"/api/v0/status":                false,
		"/api/v0/metrics":               false,
		"/api/v0/ready":                 false,
	} {
		assert.Equal(t, expected, traceable(httptest.NewRequest(http.MethodGet, path, nil)), path)
	}
}

func TestOpenTelemetryPassesThrough(t *testing.T) {
	logger := logging.NewNoopLogger()

	handler := NewMiddleware(monitoring.NewNoopMonitor("test", logger), logger).OpenTelemetry(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		}),
	)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestDisabledTracer(t *testing.T) {
	tracer := NewTracer(NewConfig(false, "", "", logging.NewNoopLogger()))

	_, span := tracer.Start(context.Background(), "tracing.test")
	span.End()

	assert.NoError(t, tracer.Shutdown(context.Background()))
}
