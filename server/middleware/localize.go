// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"

	"codeberg.org/mikyai/website/core/cookie"
	"codeberg.org/mikyai/website/core/routing"
	"codeberg.org/mikyai/website/core/untrusted"
	"codeberg.org/mikyai/website/i18n"
)

// Localize returns a middleware that applies the locale convention of rules
// to every request:
//
//   - /es/... and /it/... are served as is;
//   - /en/... is redirected to its unprefixed form;
//   - unprefixed paths are rewritten to /en/... when the visitor's locale is
//     the default, and redirected to /{locale}/... otherwise;
//   - excluded paths are left alone.
//
// The chosen locale is stored in the request context and, when the path
// names it, in the locale cookie. The path the client asked for is kept in
// the context with routing.WithVisiblePath.
func Localize(rules routing.Rules) Middleware {
	return func(w http.ResponseWriter, r *http.Request, next http.Handler) {
		stored := untrusted.GetLocalePreference(r)

		d := rules.Decide(r.URL.Path, func() i18n.Locale {
			return i18n.FromRequest(r)
		})

		if d.Persist() && stored != d.Locale.String() {
			untrusted.SetCookie(w, r, cookie.LocaleCookie, d.Locale.String())
		}

		if d.Redirects() {
			location := d.Target
			if r.URL.RawQuery != "" {
				location += "?" + r.URL.RawQuery
			}

			http.Redirect(w, r, location, http.StatusTemporaryRedirect)

			return
		}

		ctx := i18n.WithLocale(r.Context(), d.Locale)
		ctx = routing.WithVisiblePath(ctx, r.URL.Path)

		r = r.WithContext(ctx)

		if d.Action == routing.Rewrite {
			r.URL.Path = d.Target
			r.URL.RawPath = ""
		}

		next.ServeHTTP(w, r)
	}
}
