// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resolver

import (
	"context"
	"net/http"
)

type contextKey struct{}

var resolutionContextKey = contextKey{}

func WithResolution(ctx context.Context, res Resolution) context.Context {
	return context.WithValue(ctx, resolutionContextKey, res)
}

// FromContext returns the resolution stored by Middleware, unresolved if none.
func FromContext(ctx context.Context) Resolution {
	res, ok := ctx.Value(resolutionContextKey).(Resolution)
	if !ok {
		return unresolved
	}
	return res
}

// NewRequestContext collects the resolver inputs of r.
func NewRequestContext(r *http.Request) RequestContext {
	return RequestContext{
		Authorization: r.Header.Get("Authorization"),
		Origin:        r.Header.Get("Origin"),
		Referer:       r.Header.Get("Referer"),
		Domain:        r.URL.Query().Get("domain"),
	}
}

// Middleware resolves the tenant once per request and stores it in the
// request context.
func Middleware(r ResolverInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			res := r.Resolve(req.Context(), NewRequestContext(req))
			next.ServeHTTP(w, req.WithContext(WithResolution(req.Context(), res)))
		})
	}
}
