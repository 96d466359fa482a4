// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	httpTypes "github.com/canonical/portfolio-service/internal/http/types"
	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/internal/types"
)

func TestAPI_Registration(t *testing.T) {
	tests := []struct {
		name            string
		apiKey          string
		authorization   string
		body            string
		setupMocks      func(*MockServiceInterface)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:           "provisioned",
			body:           `{"id":"identity-1","traits":{"email":"jo@example.com"}}`,
			expectedStatus: http.StatusOK,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().HandleRegistration(gomock.Any(), Identity{ID: "identity-1", Traits: Traits{Email: "jo@example.com"}}).
					Return(&types.User{ID: "identity-1", Email: "jo@example.com"}, nil)
			},
			expectedMessage: "user provisioned",
		},
		{
			name:           "valid api key",
			apiKey:         "s3cret",
			authorization:  "Bearer s3cret",
			body:           `{"id":"identity-1","traits":{"email":"jo@example.com"}}`,
			expectedStatus: http.StatusOK,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().HandleRegistration(gomock.Any(), gomock.Any()).Return(&types.User{ID: "identity-1"}, nil)
			},
			expectedMessage: "user provisioned",
		},
		{
			name:            "wrong api key",
			apiKey:          "s3cret",
			authorization:   "Bearer nope",
			body:            `{}`,
			setupMocks:      func(*MockServiceInterface) {},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Authentication required",
		},
		{
			name:            "missing api key",
			apiKey:          "s3cret",
			body:            `{}`,
			setupMocks:      func(*MockServiceInterface) {},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Authentication required",
		},
		{
			name:            "malformed body",
			body:            `{`,
			setupMocks:      func(*MockServiceInterface) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "invalid request body",
		},
		{
			name: "invalid identity",
			body: `{"id":""}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().HandleRegistration(gomock.Any(), gomock.Any()).Return(nil, ErrInvalidIdentity)
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: ErrInvalidIdentity.Error(),
		},
		{
			name: "email taken",
			body: `{"id":"identity-2","traits":{"email":"jo@example.com"}}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().HandleRegistration(gomock.Any(), gomock.Any()).Return(nil, ErrEmailTaken)
			},
			expectedStatus:  http.StatusConflict,
			expectedMessage: ErrEmailTaken.Error(),
		},
		{
			name: "service failure",
			body: `{"id":"identity-1","traits":{"email":"jo@example.com"}}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().HandleRegistration(gomock.Any(), gomock.Any()).Return(nil, errConnection)
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockSvc)

			mux := chi.NewMux()
			NewAPI(mockSvc, tt.apiKey, tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/webhooks/registration", strings.NewReader(tt.body))
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp httpTypes.Response
			assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			if tt.expectedStatus == http.StatusOK {
				assert.True(t, resp.Success)
				assert.Equal(t, tt.expectedMessage, resp.Message)
				return
			}

			assert.False(t, resp.Success)
			assert.Equal(t, tt.expectedMessage, resp.Error)
		})
	}
}
