// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"maps"
	"net/http"
	"slices"
	"strings"
	"sync"

	"codeberg.org/mikyai/website/config"
)

var (
	// baseHeaders go on every response. HSTS is left to the reverse proxy
	// that terminates TLS.
	baseHeaders = http.Header{
		"Referrer-Policy":              {"strict-origin-when-cross-origin"},
		"X-Frame-Options":              {"DENY"},
		"X-Content-Type-Options":       {"nosniff"},
		"Cross-Origin-Opener-Policy":   {"same-origin"},
		"Cross-Origin-Resource-Policy": {"same-origin"},
		"Permissions-Policy":           {strings.Join(defaultPermissionsPolicy, ", ")},
		"Content-Security-Policy":      {strings.Join(contentSecurityPolicy, "; ") + ";"},
	}

	// contentSecurityPolicy only allows same-origin resources.
	// Forms post back to this server, so no third-party origin is listed.
	contentSecurityPolicy = []string{
		"base-uri 'self'",
		"default-src 'self'",
		"script-src 'self'",
		"style-src 'self'",
		"img-src 'self' data:",
		"font-src 'self'",
		"connect-src 'self'",
		"media-src 'none'",
		"object-src 'none'",
		"frame-src 'none'",
		"form-action 'self'",
		"frame-ancestors 'none'",
	}

	// defaultPermissionsPolicy turns off every browser feature the site never uses.
	defaultPermissionsPolicy = []string{
		"accelerometer=()",
		"ambient-light-sensor=()",
		"battery=()",
		"camera=()",
		"display-capture=()",
		"document-domain=()",
		"encrypted-media=()",
		"geolocation=()",
		"gyroscope=()",
		"magnetometer=()",
		"microphone=()",
		"midi=()",
		"payment=()",
		"publickey-credentials-get=()",
		"screen-wake-lock=()",
		"sync-xhr=()",
		"usb=()",
		"xr-spatial-tracking=()",
	}
)

// SetResponseHeaders adds default headers to HTTP responses.
//
// Pages default to "private, no-cache"; handlers that render cacheable pages
// override Cache-Control themselves.
func SetResponseHeaders(w http.ResponseWriter, r *http.Request, next http.Handler) {
	headers := w.Header()

	maps.Insert(headers, maps.All(baseHeaders))

	if config.Global.Development.InDevelopment {
		clearDevCache.Do(func() { headers.Set("Clear-Site-Data", `"cache"`) })
	}

	setCacheControl(headers, r.URL.Path)

	headers.Set("Miky-Version", config.BuildVersion)
	headers.Set("Miky-Revision", config.Global.Build.Revision())

	next.ServeHTTP(w, r)
}

// clearDevCache sends Clear-Site-Data once per process, so a browser drops
// assets cached before a development restart.
var clearDevCache sync.Once

// cacheRule gives assets under a path prefix (or with a suffix) a max-age.
type cacheRule struct {
	prefixes []string
	suffixes []string
	value    string
}

var cacheRules = []cacheRule{
	{prefixes: []string{"/fonts/", "/img/icons/"}, value: "max-age=2592000"}, // 30 days
	{prefixes: []string{"/img/", "/favicon.svg"}, value: "max-age=1209600"},  // 14 days
	{prefixes: []string{"/js/", "/css/"}, value: "max-age=604800"},           // 7 days
	{suffixes: []string{".txt", ".json"}, value: "max-age=86400"},            // robots.txt, manifest.json
}

// setCacheControl picks Cache-Control from the first matching rule. Anything
// else stays in the browser cache only and is revalidated on every use.
func setCacheControl(headers http.Header, path string) {
	headers.Set("Cache-Control", cacheControlFor(path))
}

func cacheControlFor(path string) string {
	for _, rule := range cacheRules {
		if slices.ContainsFunc(rule.prefixes, func(p string) bool { return strings.HasPrefix(path, p) }) ||
			slices.ContainsFunc(rule.suffixes, func(s string) bool { return strings.HasSuffix(path, s) }) {
			return rule.value
		}
	}

	return "private, no-cache"
}
