// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	httpTypes "github.com/canonical/portfolio-service/internal/http/types"
	"github.com/canonical/portfolio-service/internal/storage"
	"github.com/canonical/portfolio-service/internal/types"
	"github.com/canonical/portfolio-service/pkg/resolver"
)

func TestProjectImagePayloadDefaults(t *testing.T) {
	p := &ProjectImagePayload{URL: "/a.png", Path: "p-1/a.png", Name: "a.png"}

	values := p.Values()

	assert.Equal(t, "a.png", values["original_name"])
	assert.Equal(t, "images", values["bucket"])
	assert.Equal(t, 1, values["order_index"])

	p.OrderIndex = 3
	p.Bucket = "portfolio-images"
	values = p.Values()

	assert.Equal(t, 3, values["order_index"])
	assert.Equal(t, "portfolio-images", values["bucket"])
}

func TestProjectImagesAPIList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	k := newTestKit(ctrl)

	t.Run("unresolved visitors get an empty list", func(t *testing.T) {
		k.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(unresolved)

		rr := k.do(http.MethodGet, "/api/projects/p-1/images", "", "")

		require.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody[listBody[[]types.ProjectImage]](t, rr)
		assert.True(t, body.Demo)
		assert.Len(t, body.Data, 0)
	})

	t.Run("resolved tenant reads its project images", func(t *testing.T) {
		k.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).
			Return(resolver.Resolution{TenantID: "tenant-a", Source: resolver.SourceDomain})
		k.images.EXPECT().ListByProject(gomock.Any(), "tenant-a", "p-1").
			Return([]*types.ProjectImage{{ID: "img-a", ProjectID: "p-1", UserID: "tenant-a", OrderIndex: 1}}, nil)

		rr := k.do(http.MethodGet, "/api/projects/p-1/images", "", "")

		require.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody[listBody[[]types.ProjectImage]](t, rr)
		assert.False(t, body.Demo)
		require.Len(t, body.Data, 1)
		assert.Equal(t, "img-a", body.Data[0].ID)
	})

	t.Run("storage failure gives an empty list", func(t *testing.T) {
		k.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).
			Return(resolver.Resolution{TenantID: "tenant-a", Source: resolver.SourceToken})
		k.images.EXPECT().ListByProject(gomock.Any(), "tenant-a", "p-1").Return(nil, errors.New("timeout"))

		rr := k.do(http.MethodGet, "/api/projects/p-1/images", "", "")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decodeBody[listBody[[]types.ProjectImage]](t, rr).Data, 0)
	})
}

func TestProjectImagesAPIWrites(t *testing.T) {
	tests := []struct {
		name            string
		method          string
		token           string
		body            string
		setupMocks      func(*testKit)
		expectedStatus  int
		expectedError   string
		expectedMessage string
	}{
		{
			name:           "add without token",
			method:         http.MethodPost,
			body:           `{"url":"/a.png","path":"p-1/a.png","name":"a.png"}`,
			setupMocks:     func(*testKit) {},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Authentication required",
		},
		{
			name:           "add with malformed body",
			method:         http.MethodPost,
			token:          "tenant-a",
			body:           `{"url":`,
			setupMocks:     func(*testKit) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request body",
		},
		{
			name:           "add without path",
			method:         http.MethodPost,
			token:          "tenant-a",
			body:           `{"url":"/a.png","name":"a.png"}`,
			setupMocks:     func(*testKit) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "path is required",
		},
		{
			name:   "add",
			method: http.MethodPost,
			token:  "tenant-a",
			body:   `{"url":"/a.png","path":"p-1/a.png","name":"a.png","order_index":2}`,
			setupMocks: func(k *testKit) {
				k.images.EXPECT().Insert(gomock.Any(), "tenant-a", "p-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ string, values map[string]interface{}) (*types.ProjectImage, error) {
						assert.Equal(t, 2, values["order_index"])
						assert.Equal(t, "a.png", values["original_name"])
						return &types.ProjectImage{ID: "img-a", ProjectID: "p-1", UserID: "tenant-a", OrderIndex: 2}, nil
					})
			},
			expectedStatus:  http.StatusCreated,
			expectedMessage: "project image added",
		},
		{
			name:   "add to another tenant's project",
			method: http.MethodPost,
			token:  "tenant-b",
			body:   `{"url":"/a.png","path":"p-1/a.png","name":"a.png"}`,
			setupMocks: func(k *testKit) {
				k.images.EXPECT().Insert(gomock.Any(), "tenant-b", "p-1", gomock.Any()).Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "project not found",
		},
		{
			name:   "clear",
			method: http.MethodDelete,
			token:  "tenant-a",
			setupMocks: func(k *testKit) {
				k.images.EXPECT().DeleteByProject(gomock.Any(), "tenant-a", "p-1").Return(int64(2), nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "project images deleted",
		},
		{
			name:   "clear another tenant's project",
			method: http.MethodDelete,
			token:  "tenant-b",
			setupMocks: func(k *testKit) {
				k.images.EXPECT().DeleteByProject(gomock.Any(), "tenant-b", "p-1").Return(int64(0), storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "project not found",
		},
		{
			name:   "clear with storage failure",
			method: http.MethodDelete,
			token:  "tenant-a",
			setupMocks: func(k *testKit) {
				k.images.EXPECT().DeleteByProject(gomock.Any(), "tenant-a", "p-1").Return(int64(0), errors.New("timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal server error",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			k := newTestKit(ctrl)
			test.setupMocks(k)

			rr := k.do(test.method, "/api/projects/p-1/images", test.token, test.body)

			require.Equal(t, test.expectedStatus, rr.Code)

			resp := decodeBody[httpTypes.Response](t, rr)
			assert.Equal(t, test.expectedError, resp.Error)
			assert.Equal(t, test.expectedMessage, resp.Message)
		})
	}
}
