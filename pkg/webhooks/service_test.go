// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/portfolio-service/internal/storage"
	"github.com/canonical/portfolio-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_webhooks.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

var errConnection = errors.New("connection refused")

func TestService_HandleRegistration(t *testing.T) {
	name := "Jo"

	testCases := []struct {
		name        string
		identity    Identity
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name:     "success",
			identity: Identity{ID: " identity-1 ", Traits: Traits{Email: "Jo@Example.com", Name: &name}},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				mockStorage.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *types.User) (*types.User, error) {
						if u.ID != "identity-1" || u.Email != "jo@example.com" {
							return nil, fmt.Errorf("unexpected user %s %s", u.ID, u.Email)
						}
						if u.Name == nil || *u.Name != "Jo" {
							return nil, errors.New("name not forwarded")
						}
						return u, nil
					})
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
		},
		{
			name:     "empty identity id",
			identity: Identity{Traits: Traits{Email: "jo@example.com"}},
			setupMocks: func(_ *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
			},
			expectedErr: ErrInvalidIdentity,
		},
		{
			name:     "empty email",
			identity: Identity{ID: "identity-1", Traits: Traits{Email: "  "}},
			setupMocks: func(_ *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
			},
			expectedErr: ErrInvalidIdentity,
		},
		{
			name:     "email owned by another identity",
			identity: Identity{ID: "identity-2", Traits: Traits{Email: "jo@example.com"}},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				mockStorage.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("users: %w", storage.ErrDuplicateKey))
			},
			expectedErr: ErrEmailTaken,
		},
		{
			name:     "storage failure",
			identity: Identity{ID: "identity-1", Traits: Traits{Email: "jo@example.com"}},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				mockStorage.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).Return(nil, errConnection)
			},
			expectedErr: errConnection,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "webhooks.Service.HandleRegistration").
				DoAndReturn(func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				})
			tc.setupMocks(mockStorage, mockLogger)

			svc := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)
			user, err := svc.HandleRegistration(context.Background(), tc.identity)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, user)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "identity-1", user.ID)
		})
	}
}
