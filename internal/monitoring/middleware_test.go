// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/portfolio-service/internal/logging"
)

type recordingMonitor struct {
	tags []map[string]string
	err  error
}

func (m *recordingMonitor) GetService() string { return "test" }

func (m *recordingMonitor) SetResponseTimeMetric(tags map[string]string, _ float64) error {
	m.tags = append(m.tags, tags)
	return m.err
}

func (m *recordingMonitor) SetDependencyAvailability(map[string]string, float64) error {
	return nil
}

func TestResponseTimeLabels(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		expected map[string]string
	}{
		{
			name:     "route pattern",
			target:   "/api/projects/abc",
			expected: map[string]string{"route": "GET /api/projects/{id}", "status": "418"},
		},
		{
			name:     "unmatched path",
			target:   "/missing",
			expected: map[string]string{"route": "GET /missing", "status": "404"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monitor := new(recordingMonitor)

			mux := chi.NewMux()
			mux.Use(NewMiddleware(monitor, logging.NewNoopLogger()).ResponseTime())
			mux.Get("/api/projects/{id}", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			})

			mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.target, nil))

			require.Len(t, monitor.tags, 1)
			assert.Equal(t, tt.expected, monitor.tags[0])
		})
	}
}

func TestResponseTimeIgnoresMetricErrors(t *testing.T) {
	monitor := &recordingMonitor{err: errors.New("metric not instantiated")}

	handler := NewMiddleware(monitor, logging.NewNoopLogger()).ResponseTime()(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}),
	)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "/", monitor.tags[0]["route"])
}
