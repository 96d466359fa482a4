// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resolver

import (
	"strings"
)

// ExtractHost reduces an origin, referer or bare domain to host[:port].
func ExtractHost(raw string) string {
	host := strings.TrimSpace(raw)

	for _, scheme := range []string{"http://", "https://"} {
		if len(host) >= len(scheme) && strings.EqualFold(host[:len(scheme)], scheme) {
			host = host[len(scheme):]
			break
		}
	}

	if i := strings.IndexAny(host, "/?#"); i >= 0 {
		host = host[:i]
	}

	return host
}

// DomainVariants lists the spellings a binding for host may have been
// stored under, most specific first. Duplicates are dropped.
func DomainVariants(host, devPort string) []string {
	if host == "" {
		return nil
	}

	stripped := host
	if devPort != "" {
		stripped = strings.TrimSuffix(host, ":"+devPort)
	}

	candidates := []string{
		host,
		"http://" + host,
		"https://" + host,
		stripped,
		"http://" + stripped,
	}

	variants := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))

	for _, c := range candidates {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		variants = append(variants, c)
	}

	return variants
}
