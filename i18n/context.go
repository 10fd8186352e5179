// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"context"
	"net/http"

	"golang.org/x/text/language"

	"codeberg.org/mikyai/website/core/untrusted"
)

type contextKeyType struct{}

var localeKey = contextKeyType{}

// WithLocale stores l in ctx and returns a derived context that carries it.
//
// The ctx must not be nil.
func WithLocale(ctx context.Context, l Locale) context.Context {
	return context.WithValue(ctx, localeKey, l)
}

// LocaleFrom returns the locale stored in ctx, or [DefaultLocale] if none is present
// or ctx is nil.
func LocaleFrom(ctx context.Context) Locale {
	if ctx != nil {
		if l, ok := ctx.Value(localeKey).(Locale); ok && l != "" {
			return l
		}
	}

	return DefaultLocale
}

// HasLocale reports whether a locale was stored in ctx with WithLocale.
func HasLocale(ctx context.Context) bool {
	if ctx == nil {
		return false
	}

	l, ok := ctx.Value(localeKey).(Locale)

	return ok && l != ""
}

// TagFrom returns the language tag of the locale stored in ctx.
// It never returns the zero value of [language.Tag].
func TagFrom(ctx context.Context) language.Tag {
	return LocaleFrom(ctx).Tag()
}

// FromRequest resolves the locale for r with [Resolve], using the URL path, the
// locale cookie and the Accept-Language header.
//
// If r is nil, FromRequest returns [DefaultLocale].
func FromRequest(r *http.Request) Locale {
	if r == nil {
		return DefaultLocale
	}

	return Resolve(r.URL.Path, untrusted.GetLocalePreference(r), r.Header.Get("Accept-Language"))
}

// WithRequest is equivalent to:
//
//	WithLocale(ctx, FromRequest(r))
func WithRequest(ctx context.Context, r *http.Request) context.Context {
	return WithLocale(ctx, FromRequest(r))
}
