// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httpTypes "github.com/canonical/portfolio-service/internal/http/types"
	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/storage"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/internal/types"
	"github.com/canonical/portfolio-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package account -destination ./mock_account.go -source=./interfaces.go

func withPrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := authentication.BearerToken(r.Header)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(authentication.WithPrincipal(r.Context(), &authentication.Principal{TenantID: token})))
	})
}

func TestMe(t *testing.T) {
	tests := []struct {
		name           string
		token          string
		setupMocks     func(*MockStorageInterface)
		expectedStatus int
		expectedEmail  string
		expectedError  string
	}{
		{
			name:           "no token",
			setupMocks:     func(*MockStorageInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:  "known user",
			token: "user-1",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&types.User{ID: "user-1", Email: "jo@example.com"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedEmail:  "jo@example.com",
		},
		{
			name:  "token without user row",
			token: "ghost",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetUserByID(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "User not found",
		},
		{
			name:  "storage failure",
			token: "user-1",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(nil, errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal server error",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			logger := logging.NewNoopLogger()
			mockStorage := NewMockStorageInterface(ctrl)
			test.setupMocks(mockStorage)

			mux := chi.NewMux()
			NewAPI(mockStorage, withPrincipal, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if test.token != "" {
				req.Header.Set("Authorization", "Bearer "+test.token)
			}

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d", test.expectedStatus, rr.Code)
			}

			if test.expectedEmail == "" && test.expectedError == "" {
				return
			}

			var body struct {
				httpTypes.Response
				Data types.User `json:"data"`
			}
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if body.Data.Email != test.expectedEmail {
				t.Errorf("expected email %q, got %q", test.expectedEmail, body.Data.Email)
			}

			if body.Error != test.expectedError {
				t.Errorf("expected error %q, got %q", test.expectedError, body.Error)
			}
		})
	}
}
