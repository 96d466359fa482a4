// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/portfolio-service/internal/config"
	"github.com/canonical/portfolio-service/internal/db"
	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring/prometheus"
	"github.com/canonical/portfolio-service/internal/objectstore"
	"github.com/canonical/portfolio-service/internal/storage"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/internal/types"
	"github.com/canonical/portfolio-service/pkg/authentication"
	"github.com/canonical/portfolio-service/pkg/content"
	"github.com/canonical/portfolio-service/pkg/domains"
	"github.com/canonical/portfolio-service/pkg/resolver"
	"github.com/canonical/portfolio-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio API server",
	Long:  `Launch the portfolio API server. It is configured through environment variables, see internal/config.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("portfolio-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	verifier, err := authentication.NewAuthenticator(
		context.Background(),
		authentication.Config{
			Mode:          specs.AuthMode,
			JWTSecret:     specs.AuthJWTSecret,
			Issuer:        specs.AuthIssuer,
			JWKSURL:       specs.AuthJWKSURL,
			RequiredScope: specs.AuthRequiredScope,
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create authenticator: %v", err)
	}

	if specs.PortfolioOwnerEmail == "" {
		logger.Info("PORTFOLIO_OWNER_EMAIL is not set, contact queries have no fallback tenant")
	}

	res := resolver.NewResolver(verifier, s, s, specs.DomainDevPort, specs.PortfolioOwnerEmail, tracer, monitor, logger)

	configs := domains.NewConfigCache(
		s,
		types.StorageConfig{URL: specs.StorageURL, Key: specs.StorageKey, Bucket: specs.StorageBucket},
		specs.DomainDevPort,
		tracer,
		monitor,
		logger,
	)

	gallery := content.NewGalleryStore(configs, objectstore.NewFactory(tracer, monitor, logger), tracer, monitor, logger)
	gateways := content.NewGateways(storage.NewTables(dbClient, tracer, monitor, logger), s, gallery, tracer, monitor, logger)

	router := web.NewRouter(
		web.Config{AllowedOrigins: specs.CORSAllowedOrigins, Debug: specs.Debug, WebhookAPIKey: specs.WebhookAPIKey},
		verifier,
		res,
		s,
		gateways,
		configs,
		dbClient,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	if err := tracer.Shutdown(ctx); err != nil {
		logger.Errorf("failed to flush traces: %v", err)
	}

	return serverError
}
