// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package objectstore

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/internal/types"
)

const defaultTimeout = 10 * time.Second

// Object is an entry of a storage bucket listing.
type Object struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Metadata  struct {
		Size     int64  `json:"size"`
		Mimetype string `json:"mimetype"`
	} `json:"metadata"`
}

type listRequest struct {
	Prefix string     `json:"prefix"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
	SortBy listSortBy `json:"sortBy"`
}

type listSortBy struct {
	Column string `json:"column"`
	Order  string `json:"order"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Client talks to a Supabase compatible storage REST API.
type Client struct {
	baseURL string
	bucket  string

	http *resty.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// List returns the objects stored directly under prefix.
func (c *Client) List(ctx context.Context, prefix string, limit int) ([]Object, error) {
	ctx, span := c.tracer.Start(ctx, "objectstore.Client.List")
	defer span.End()

	var objects []Object
	var apiErr errorResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(listRequest{
			Prefix: prefix,
			Limit:  limit,
			SortBy: listSortBy{Column: "created_at", Order: "desc"},
		}).
		SetResult(&objects).
		SetError(&apiErr).
		SetPathParam("bucket", c.bucket).
		Post("/storage/v1/object/list/{bucket}")

	if err != nil {
		c.setAvailability(0)
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}

	c.setAvailability(1)

	if resp.IsError() {
		msg := apiErr.Message
		if msg == "" {
			msg = apiErr.Error
		}
		return nil, fmt.Errorf("object store returned %d: %s", resp.StatusCode(), msg)
	}

	if objects == nil {
		objects = []Object{}
	}

	return objects, nil
}

// PublicURL builds the public address of an object path.
func (c *Client) PublicURL(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, url.PathEscape(c.bucket), strings.Join(segments, "/"))
}

func (c *Client) setAvailability(v float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "objectstore"}, v); err != nil {
		c.logger.Debugf("error setting object store availability metric: %v", err)
	}
}

func NewClient(cfg types.StorageConfig, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	c := new(Client)

	c.baseURL = strings.TrimRight(cfg.URL, "/")
	c.bucket = cfg.Bucket

	c.http = resty.New().
		SetTransport(otelhttp.NewTransport(http.DefaultTransport)).
		SetBaseURL(c.baseURL).
		SetTimeout(defaultTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("apikey", cfg.Key).
		SetAuthToken(cfg.Key)

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}

// Factory hands out one client per storage configuration.
type Factory struct {
	clients sync.Map

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (f *Factory) Client(cfg types.StorageConfig) *Client {
	key := cfg.URL + "|" + cfg.Bucket + "|" + cfg.Key

	if c, ok := f.clients.Load(key); ok {
		return c.(*Client)
	}

	c, _ := f.clients.LoadOrStore(key, NewClient(cfg, f.tracer, f.monitor, f.logger))

	return c.(*Client)
}

func NewFactory(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Factory {
	f := new(Factory)

	f.tracer = tracer
	f.monitor = monitor
	f.logger = logger

	return f
}
