// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/canonical/portfolio-service/pkg/authentication"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Obtain bearer tokens for the API",
}

var tokenMintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Sign an HMAC token for a tenant, for local development",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user-id")
		email, _ := cmd.Flags().GetString("email")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		secret, _ := cmd.Flags().GetString("secret")
		if secret == "" {
			secret = os.Getenv("AUTH_JWT_SECRET")
		}

		if secret == "" {
			return fmt.Errorf("either --secret or AUTH_JWT_SECRET must be provided")
		}

		token, err := authentication.SignToken(secret, authentication.Principal{TenantID: userID, Email: email}, ttl)
		if err != nil {
			return fmt.Errorf("failed to sign token: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)

		return nil
	},
}

var tokenFetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Get an access token using Client Credentials flow",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		clientID, _ := cmd.Flags().GetString("client-id")
		clientSecret, _ := cmd.Flags().GetString("client-secret")
		tokenURL, _ := cmd.Flags().GetString("token-url")
		issuerURL, _ := cmd.Flags().GetString("issuer-url")
		scopes, _ := cmd.Flags().GetStringSlice("scopes")

		if tokenURL == "" {
			if issuerURL == "" {
				return fmt.Errorf("either --token-url or --issuer-url must be provided")
			}

			// Discovery endpoint
			provider, err := oidc.NewProvider(ctx, issuerURL)
			if err != nil {
				return fmt.Errorf("failed to create OIDC provider from issuer: %w", err)
			}
			tokenURL = provider.Endpoint().TokenURL
		}

		config := &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
			Scopes:       scopes,
		}

		token, err := config.Token(ctx)
		if err != nil {
			return fmt.Errorf("failed to get token: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), token.AccessToken)

		return nil
	},
}

func init() {
	tokenMintCmd.Flags().String("user-id", "", "Tenant id carried in the token")
	tokenMintCmd.Flags().String("email", "", "Email carried in the token")
	tokenMintCmd.Flags().String("secret", "", "HMAC secret, defaults to $AUTH_JWT_SECRET")
	tokenMintCmd.Flags().Duration("ttl", 24*time.Hour, "Token lifetime")
	_ = tokenMintCmd.MarkFlagRequired("user-id")

	tokenFetchCmd.Flags().String("client-id", "", "Client ID")
	tokenFetchCmd.Flags().String("client-secret", "", "Client Secret")
	tokenFetchCmd.Flags().String("token-url", "", "Token URL")
	tokenFetchCmd.Flags().String("issuer-url", "", "Issuer URL (for OIDC discovery)")
	tokenFetchCmd.Flags().StringSlice("scopes", []string{}, "Scopes (comma-separated)")
	_ = tokenFetchCmd.MarkFlagRequired("client-id")
	_ = tokenFetchCmd.MarkFlagRequired("client-secret")

	tokenCmd.AddCommand(tokenMintCmd, tokenFetchCmd)
	rootCmd.AddCommand(tokenCmd)
}
