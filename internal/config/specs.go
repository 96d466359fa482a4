// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// AuthMode selects the token verifier: hmac, oidc or noop.
	AuthMode          string `envconfig:"auth_mode" default:"hmac"`
	AuthJWTSecret     string `envconfig:"auth_jwt_secret"`
	AuthIssuer        string `envconfig:"auth_issuer"`
	AuthJWKSURL       string `envconfig:"auth_jwks_url"`
	AuthRequiredScope string `envconfig:"auth_required_scope"`

	DomainDevPort       string `envconfig:"domain_dev_port" default:"3000"`
	PortfolioOwnerEmail string `envconfig:"portfolio_owner_email"`

	StorageURL    string `envconfig:"storage_url"`
	StorageKey    string `envconfig:"storage_key"`
	StorageBucket string `envconfig:"storage_bucket" default:"portfolio-images"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	WebhookAPIKey string `envconfig:"webhook_api_key"`
}
