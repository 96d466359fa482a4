// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package content

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/storage"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/internal/types"
	"github.com/canonical/portfolio-service/internal/validation"
)

const reorderConcurrency = 8

// Options describe one kind of content served by a Gateway.
type Options[T any] struct {
	// Kind names the content in routes and messages, e.g. "projects".
	Kind string
	// Demo returns a fresh copy of the content served when no tenant resolves.
	Demo func() []*T
	// Sortable kinds can be reordered through their sort_order column.
	Sortable bool
	ReadOnly bool
	// Fallback kinds fall back to the portfolio owner on public reads.
	Fallback bool
}

type ListResult[T any] struct {
	Data []*T `json:"data"`
	Demo bool `json:"demo"`
}

type ReorderItem struct {
	ID        string `json:"id" validate:"required"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
}

type ReorderPayload struct {
	Items []ReorderItem `json:"items" validate:"required,min=1,dive"`
}

// Gateway scopes every read and write of one content kind to a tenant,
// substituting demo content on public reads that cannot be scoped.
type Gateway[T any] struct {
	store     StoreInterface[T]
	opts      Options[T]
	validator *validation.Validator

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (g *Gateway[T]) Kind() string {
	return g.opts.Kind
}

func (g *Gateway[T]) Sortable() bool {
	return g.opts.Sortable
}

func (g *Gateway[T]) ReadOnly() bool {
	return g.opts.ReadOnly
}

func (g *Gateway[T]) Fallback() bool {
	return g.opts.Fallback
}

func (g *Gateway[T]) demo() ListResult[T] {
	data := []*T{}
	if g.opts.Demo != nil {
		data = g.opts.Demo()
	}

	return ListResult[T]{Data: data, Demo: true}
}

// ListPublic never fails: without a tenant, or when storage fails, the
// demo content is returned instead.
func (g *Gateway[T]) ListPublic(ctx context.Context, tenantID string, filters types.Filters) ListResult[T] {
	ctx, span := g.tracer.Start(ctx, "content.Gateway.ListPublic")
	defer span.End()
	span.SetAttributes(attribute.String("content.kind", g.opts.Kind))

	if tenantID == "" {
		g.logger.Debugf("no tenant for %s, serving demo content", g.opts.Kind)
		return g.demo()
	}

	rows, err := g.store.ListByOwner(ctx, tenantID, filters)
	if err != nil {
		g.logger.Errorf("failed to list %s of tenant %s, serving demo content: %v", g.opts.Kind, tenantID, err)
		return g.demo()
	}

	if rows == nil {
		rows = []*T{}
	}

	return ListResult[T]{Data: rows, Demo: false}
}

// ListOwned is the dashboard read, storage failures are reported.
func (g *Gateway[T]) ListOwned(ctx context.Context, tenantID string, filters types.Filters) ([]*T, error) {
	ctx, span := g.tracer.Start(ctx, "content.Gateway.ListOwned")
	defer span.End()
	span.SetAttributes(attribute.String("content.kind", g.opts.Kind))

	if tenantID == "" {
		return nil, ErrAuthenticationRequired
	}

	rows, err := g.store.ListByOwner(ctx, tenantID, filters)
	if err != nil {
		return nil, g.storageError("list", err)
	}

	if rows == nil {
		rows = []*T{}
	}

	return rows, nil
}

// Get is the authenticated single row read.
func (g *Gateway[T]) Get(ctx context.Context, tenantID, id string) (*T, error) {
	ctx, span := g.tracer.Start(ctx, "content.Gateway.Get")
	defer span.End()
	span.SetAttributes(attribute.String("content.kind", g.opts.Kind))

	if tenantID == "" {
		return nil, ErrAuthenticationRequired
	}

	if id == "" {
		return nil, ErrNotFound
	}

	row, err := g.store.GetByOwner(ctx, tenantID, id)
	if err != nil {
		return nil, g.storageError("get", err)
	}

	return row, nil
}

func (g *Gateway[T]) Create(ctx context.Context, tenantID string, payload Payload) (*T, error) {
	ctx, span := g.tracer.Start(ctx, "content.Gateway.Create")
	defer span.End()
	span.SetAttributes(attribute.String("content.kind", g.opts.Kind))

	if err := g.writable(tenantID); err != nil {
		return nil, err
	}

	if err := g.validator.Struct(payload); err != nil {
		return nil, err
	}

	row, err := g.store.Insert(ctx, tenantID, payload.Values())
	if err != nil {
		return nil, g.storageError("create", err)
	}

	return row, nil
}

func (g *Gateway[T]) Update(ctx context.Context, tenantID, id string, payload Payload) (*T, error) {
	ctx, span := g.tracer.Start(ctx, "content.Gateway.Update")
	defer span.End()
	span.SetAttributes(attribute.String("content.kind", g.opts.Kind))

	if err := g.writable(tenantID); err != nil {
		return nil, err
	}

	if err := g.validator.Struct(payload); err != nil {
		return nil, err
	}

	if err := g.owned(ctx, tenantID, id); err != nil {
		return nil, err
	}

	row, err := g.store.UpdateByOwner(ctx, tenantID, id, payload.Values())
	if err != nil {
		return nil, g.storageError("update", err)
	}

	return row, nil
}

func (g *Gateway[T]) Delete(ctx context.Context, tenantID, id string) error {
	ctx, span := g.tracer.Start(ctx, "content.Gateway.Delete")
	defer span.End()
	span.SetAttributes(attribute.String("content.kind", g.opts.Kind))

	if err := g.writable(tenantID); err != nil {
		return err
	}

	if err := g.owned(ctx, tenantID, id); err != nil {
		return err
	}

	if err := g.store.DeleteByOwner(ctx, tenantID, id); err != nil {
		return g.storageError("delete", err)
	}

	return nil
}

// Reorder applies every sort order of payload, one update per row. It
// succeeds only when every update does.
func (g *Gateway[T]) Reorder(ctx context.Context, tenantID string, payload *ReorderPayload) error {
	ctx, span := g.tracer.Start(ctx, "content.Gateway.Reorder")
	defer span.End()
	span.SetAttributes(attribute.String("content.kind", g.opts.Kind))

	if err := g.writable(tenantID); err != nil {
		return err
	}

	if !g.opts.Sortable {
		return ErrReadOnly
	}

	if err := g.validator.Struct(payload); err != nil {
		return err
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(reorderConcurrency)

	for _, item := range payload.Items {
		eg.Go(func() error {
			return g.store.SetSortOrder(egCtx, tenantID, item.ID, item.SortOrder)
		})
	}

	if err := eg.Wait(); err != nil {
		return g.storageError("reorder", err)
	}

	return nil
}

func (g *Gateway[T]) writable(tenantID string) error {
	if tenantID == "" {
		return ErrAuthenticationRequired
	}

	if g.opts.ReadOnly {
		return ErrReadOnly
	}

	return nil
}

// owned reports ErrNotFound alike for missing rows and other tenants' rows.
func (g *Gateway[T]) owned(ctx context.Context, tenantID, id string) error {
	if id == "" {
		return ErrNotFound
	}

	if _, err := g.store.GetByOwner(ctx, tenantID, id); err != nil {
		return g.storageError("find", err)
	}

	return nil
}

func (g *Gateway[T]) storageError(op string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}

	g.logger.Errorf("failed to %s %s: %v", op, g.opts.Kind, err)

	return fmt.Errorf("failed to %s %s: %w", op, g.opts.Kind, ErrStorage)
}

func NewGateway[T any](
	store StoreInterface[T],
	opts Options[T],
	v *validation.Validator,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Gateway[T] {
	g := new(Gateway[T])

	g.store = store
	g.opts = opts
	g.validator = v

	g.tracer = tracer
	g.monitor = monitor
	g.logger = logger

	return g
}
