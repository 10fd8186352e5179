// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"

	"codeberg.org/mikyai/website/config"
	"codeberg.org/mikyai/website/server/request_context"
)

// setPublicCache marks a page as cacheable by shared caches.
//
// Only pages whose content depends on nothing but the URL may use it.
// Pages that read cookies keep the "private, no-cache" default set by
// middleware.SetResponseHeaders.
//
// An unprefixed URL was rewritten to the default locale, and the same URL
// redirects elsewhere for other visitors, so the response varies on the
// inputs of locale resolution.
func setPublicCache(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d",
		int(config.Global.HTTPCache.MaxAge.Seconds()),
		int(config.Global.HTTPCache.StaleWhileRevalidate.Seconds())))

	if request_context.FromRequest(r).CommonData.CurrentPath != r.URL.Path {
		w.Header().Add("Vary", "Cookie, Accept-Language")
	}
}

// renderPage writes c as an HTML page with the given status code.
func renderPage(w http.ResponseWriter, r *http.Request, status int, c templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	return c.Render(r.Context(), w)
}
