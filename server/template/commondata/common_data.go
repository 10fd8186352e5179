// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package commondata

import (
	"net/http"
	"time"

	"codeberg.org/mikyai/website/config"
	"codeberg.org/mikyai/website/core/routing"
	"codeberg.org/mikyai/website/core/untrusted"
	"codeberg.org/mikyai/website/i18n"
)

// Alternate is a link to the current page in another locale.
type Alternate struct {
	Locale i18n.Locale
	// Href is absolute, built from Site.BaseURL.
	Href string
	// SwitchPath carries an explicit locale segment so that following it
	// stores the choice in the locale cookie.
	SwitchPath string
}

// PageCommonData holds common variables accessible in views and handlers.
//
// It is automatically populated for each request and attached to the
// request_context.RequestContext.
//
// Usage:
//
//	rc := request_context.FromRequest(r)
//	cd := rc.CommonData
//	// cd.Locale, cd.LocalePrefix, cd.Alternates, ...
type PageCommonData struct {
	// BaseURL is the configured public origin.
	BaseURL string

	SiteName string

	// CurrentPath is the path as the visitor sees it in the address bar.
	CurrentPath string

	// PagePath is the locale-free path of the page, e.g. "/pricing".
	PagePath string

	// CurrentPathWithParams is the visible path including the query string.
	CurrentPathWithParams string

	Locale i18n.Locale

	// LocalePrefix is "" for the default locale and "/es" or "/it" otherwise.
	LocalePrefix string

	// Canonical is the absolute URL of this page in its own locale.
	// Empty for routes outside the locale convention.
	Canonical string

	// Alternates lists the page in every supported locale, default first.
	// Empty for routes outside the locale convention.
	Alternates []Alternate

	// LoggedIn is true when the account session cookie is present.
	LoggedIn bool

	AdminEnabled bool

	Year int

	// Queries is the URL query parameters (first value only for each key).
	Queries map[string]string
}

// PopulatePageCommonData fills the PageCommonData struct from the request.
// The locale is taken from the request context.
func PopulatePageCommonData(r *http.Request, data *PageCommonData) {
	ctx := r.Context()

	data.BaseURL = config.Global.Site.BaseURL
	data.SiteName = config.Global.Site.Name
	data.CurrentPath = routing.VisiblePathFrom(ctx, r.URL.Path)
	data.CurrentPathWithParams = data.CurrentPath
	if r.URL.RawQuery != "" {
		data.CurrentPathWithParams += "?" + r.URL.RawQuery
	}

	data.Locale = i18n.LocaleFrom(ctx)
	data.LocalePrefix = data.Locale.Prefix()
	data.PagePath = i18n.StripLocale(r.URL.Path)

	data.Alternates = nil
	data.Canonical = ""

	if _, localized := i18n.ParseLocale(i18n.FirstSegment(r.URL.Path)); localized {
		data.Canonical = data.BaseURL + data.Locale.Path(data.PagePath)

		for _, l := range i18n.Locales() {
			data.Alternates = append(data.Alternates, Alternate{
				Locale:     l,
				Href:       data.BaseURL + l.Path(data.PagePath),
				SwitchPath: l.ExplicitPath(data.PagePath),
			})
		}
	}

	data.LoggedIn = untrusted.HasSession(r)
	data.AdminEnabled = config.Global.AdminEnabled()
	data.Year = time.Now().Year()

	data.Queries = make(map[string]string)

	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			data.Queries[k] = v[0]
		}
	}
}

// Path returns the public path of p in the page's locale.
func (d PageCommonData) Path(p string) string {
	return d.Locale.Path(p)
}
