// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"github.com/canonical/portfolio-service/internal/logging"
)

const (
	ExporterGRPC   = "otlp-grpc"
	ExporterHTTP   = "otlp-http"
	ExporterStdout = "stdout"
)

type Config struct {
	OtelHTTPEndpoint string
	OtelGRPCEndpoint string
	Logger           logging.LoggerInterface

	Enabled bool
}

// Exporter names the span exporter for the configured endpoints: gRPC wins
// over HTTP, and stdout is used when neither is set.
func (c *Config) Exporter() string {
	switch {
	case c.OtelGRPCEndpoint != "":
		return ExporterGRPC
	case c.OtelHTTPEndpoint != "":
		return ExporterHTTP
	default:
		return ExporterStdout
	}
}

func NewConfig(enabled bool, otelGRPCEndpoint, otelHTTPEndpoint string, logger logging.LoggerInterface) *Config {
	c := new(Config)

	c.OtelGRPCEndpoint = otelGRPCEndpoint
	c.OtelHTTPEndpoint = otelHTTPEndpoint
	c.Logger = logger
	c.Enabled = enabled

	return c
}
