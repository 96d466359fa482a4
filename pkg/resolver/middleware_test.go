// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resolver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"
)

func TestMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResolver := NewMockResolverInterface(ctrl)

	expected := Resolution{TenantID: "tenant-a", Source: SourceDomain, Domain: "acme.com"}
	mockResolver.EXPECT().
		Resolve(gomock.Any(), RequestContext{Authorization: "Bearer x", Origin: "https://acme.com", Referer: "https://acme.com/a", Domain: "acme.com"}).
		Return(expected)

	var got Resolution
	handler := Middleware(mockResolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/projects?domain=acme.com", nil)
	req.Header.Set("Authorization", "Bearer x")
	req.Header.Set("Origin", "https://acme.com")
	req.Header.Set("Referer", "https://acme.com/a")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	if got != expected {
		t.Errorf("expected %+v, got %+v", expected, got)
	}
}

func TestFromContextWithoutResolution(t *testing.T) {
	res := FromContext(context.Background())

	if res.Resolved() || res.Source != SourceNone {
		t.Errorf("expected an unresolved resolution, got %+v", res)
	}
}
