// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canonical/portfolio-service/internal/db"
	"github.com/canonical/portfolio-service/internal/logging"
	"github.com/canonical/portfolio-service/internal/monitoring"
	"github.com/canonical/portfolio-service/internal/storage"
	"github.com/canonical/portfolio-service/internal/tracing"
	"github.com/canonical/portfolio-service/pkg/resolver"
)

var domainCmd = &cobra.Command{
	Use:   "domain",
	Short: "Inspect how request domains map to tenants",
}

var domainVariantsCmd = &cobra.Command{
	Use:   "variants <origin>",
	Short: "Print the domain names looked up for an origin, in order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		devPort, _ := cmd.Flags().GetString("dev-port")

		for _, v := range resolver.DomainVariants(resolver.ExtractHost(args[0]), devPort) {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}

		return nil
	},
}

var domainResolveCmd = &cobra.Command{
	Use:   "resolve <origin>",
	Short: "Resolve the tenant bound to an origin against the database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		devPort, _ := cmd.Flags().GetString("dev-port")
		ownerEmail, _ := cmd.Flags().GetString("owner-email")
		logLevel, _ := cmd.Flags().GetString("log-level")

		dsn, err := dsnFrom(cmd)
		if err != nil {
			return err
		}

		sqlDB, err := openDB(cmd.Context(), dsn)
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		logger := logging.NewLogger(logLevel)
		defer logger.Sync()

		tracer := tracing.NewNoopTracer()
		monitor := monitoring.NewNoopMonitor("portfolio-service", logger)

		s := storage.NewStorage(db.NewDBClientFromDB(sqlDB, tracer, monitor, logger), tracer, monitor, logger)
		r := resolver.NewResolver(nil, s, s, devPort, ownerEmail, tracer, monitor, logger)

		res := r.Resolve(cmd.Context(), resolver.RequestContext{Domain: args[0]})
		if !res.Resolved() && ownerEmail != "" {
			res = r.ApplyFallback(cmd.Context(), res)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		return enc.Encode(res)
	},
}

func init() {
	domainCmd.PersistentFlags().String("dev-port", "3000", "Development port stripped from domain variants")

	domainResolveCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string, defaults to $DSN")
	domainResolveCmd.Flags().String("owner-email", "", "Portfolio owner used when the origin does not resolve")
	domainResolveCmd.Flags().String("log-level", "error", "Log level of the resolver")

	domainCmd.AddCommand(domainVariantsCmd, domainResolveCmd)
	rootCmd.AddCommand(domainCmd)
}
