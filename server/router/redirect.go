// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// The code in this file keeps the short legal URLs of the old site working.
//
// Add more redirects in (*Router).definePages

package router

import (
	"net/http"

	"codeberg.org/mikyai/website/assets/views"
)

// legacyLegalPaths maps old top-level paths to their document under /legal.
var legacyLegalPaths = map[string]string{
	"/terms":   views.LegalTerms,
	"/privacy": views.LegalPrivacy,
	"/cookies": views.LegalCookie,
}

// redirectTo permanently redirects to target, keeping the query string.
//
// Example:   /es/terms?x=1   ->   /es/legal/terms?x=1
func redirectTo(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		location := target
		if r.URL.RawQuery != "" {
			location += "?" + r.URL.RawQuery
		}

		http.Redirect(w, r, location, http.StatusPermanentRedirect)
	}
}
