// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	contentDomain string
	contentData   string
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Read and manage portfolio content through the API",
}

var listContentCmd = &cobra.Command{
	Use:   "list [kind]",
	Short: "List content of a kind, owned content when a token is set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := getClient()

		path := "/api/" + args[0]
		query := map[string]string{}
		if client.http.Token != "" {
			path = "/api/dashboard/" + args[0]
		} else if contentDomain != "" {
			query["domain"] = contentDomain
		}

		resp, err := client.do(cmd.Context(), http.MethodGet, path, query, nil)
		if err != nil {
			return fmt.Errorf("failed to list %s: %w", args[0], err)
		}

		var items []map[string]json.RawMessage
		if err := json.Unmarshal(resp.Data, &items); err != nil {
			return fmt.Errorf("unexpected response: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tDEMO")
		for _, item := range items {
			fmt.Fprintf(w, "%s\t%s\t%v\n", field(item, "id"), title(item), resp.Demo != nil && *resp.Demo)
		}
		return w.Flush()
	},
}

var createContentCmd = &cobra.Command{
	Use:   "create [kind]",
	Short: "Create a content item from a JSON document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := contentBody()
		if err != nil {
			return err
		}

		resp, err := getClient().do(cmd.Context(), http.MethodPost, "/api/"+args[0], nil, body)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", args[0], err)
		}

		var item map[string]json.RawMessage
		if err := json.Unmarshal(resp.Data, &item); err != nil {
			return fmt.Errorf("unexpected response: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s (ID: %s)\n", resp.Message, field(item, "id"))
		return nil
	},
}

var updateContentCmd = &cobra.Command{
	Use:   "update [kind] [id]",
	Short: "Update a content item from a JSON document",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := contentBody()
		if err != nil {
			return err
		}

		resp, err := getClient().do(cmd.Context(), http.MethodPut, "/api/"+args[0]+"/"+args[1], nil, body)
		if err != nil {
			return fmt.Errorf("failed to update %s: %w", args[0], err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", resp.Message, args[1])
		return nil
	},
}

var deleteContentCmd = &cobra.Command{
	Use:   "delete [kind] [id]",
	Short: "Delete a content item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := getClient().do(cmd.Context(), http.MethodDelete, "/api/"+args[0]+"/"+args[1], nil, nil)
		if err != nil {
			return fmt.Errorf("failed to delete %s: %w", args[0], err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", resp.Message, args[1])
		return nil
	},
}

func contentBody() (json.RawMessage, error) {
	if contentData == "" {
		return nil, fmt.Errorf("--data is required")
	}

	if !json.Valid([]byte(contentData)) {
		return nil, fmt.Errorf("--data is not valid JSON")
	}

	return json.RawMessage(contentData), nil
}

func field(item map[string]json.RawMessage, key string) string {
	var s string
	if err := json.Unmarshal(item[key], &s); err != nil {
		return ""
	}

	return s
}

// title picks the first human readable field a content kind carries.
func title(item map[string]json.RawMessage) string {
	for _, key := range []string{"title", "name", "label", "subject"} {
		if v := field(item, key); v != "" {
			return v
		}
	}

	return ""
}

func init() {
	rootCmd.AddCommand(contentCmd)
	contentCmd.AddCommand(listContentCmd)
	contentCmd.AddCommand(createContentCmd)
	contentCmd.AddCommand(updateContentCmd)
	contentCmd.AddCommand(deleteContentCmd)

	contentCmd.PersistentFlags().StringVar(&apiEndpoint, "endpoint", "localhost:8080", "Portfolio API address")
	contentCmd.PersistentFlags().StringVar(&apiToken, "token", "", "Bearer token, defaults to PORTFOLIO_TOKEN")

	listContentCmd.Flags().StringVar(&contentDomain, "domain", "", "Tenant domain for anonymous reads")
	createContentCmd.Flags().StringVar(&contentData, "data", "", "JSON document")
	updateContentCmd.Flags().StringVar(&contentData, "data", "", "JSON document")
}
