// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"strings"
)

// NormalizeURL permanently redirects paths with trailing slashes to their
// canonical form, keeping the query string. Locale prefixes are left to
// Localize.
func NormalizeURL(w http.ResponseWriter, r *http.Request, next http.Handler) {
	path, changed := canonicalPath(r.URL.Path)
	if !changed {
		next.ServeHTTP(w, r)

		return
	}

	if r.URL.RawQuery != "" {
		path += "?" + r.URL.RawQuery
	}

	http.Redirect(w, r, path, http.StatusPermanentRedirect)
}

// canonicalPath strips trailing slashes from p. Leading slashes collapse to
// one, so the result never reads as a protocol-relative URL.
func canonicalPath(p string) (string, bool) {
	if p == "/" || !strings.HasSuffix(p, "/") {
		return p, false
	}

	return "/" + strings.Trim(p, "/"), true
}
