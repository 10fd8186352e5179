// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Locale is one of the locales the site is published in.
//
// The zero value is not a valid Locale; use [ParseLocale] to obtain one from untrusted input.
type Locale string

const (
	English Locale = "en"
	Spanish Locale = "es"
	Italian Locale = "it"
)

// DefaultLocale is served at unprefixed paths.
const DefaultLocale = English

// BaseLocale is the language msgids are written in.
const BaseLocale = string(DefaultLocale)

// baseTag is the canonical tag for BaseLocale.
var baseTag = language.Make(BaseLocale)

// supportedLocales is ordered with the default first.
var supportedLocales = []Locale{English, Spanish, Italian}

// Locales returns the supported locales, default first.
// The returned slice is a copy and is safe to retain.
func Locales() []Locale {
	return slices.Clone(supportedLocales)
}

// ParseLocale returns the Locale named by s.
//
// Matching is exact: "es" is a locale, "ES" and "es-MX" are not. Path segments and
// cookie values are expected to already be in canonical form.
func ParseLocale(s string) (Locale, bool) {
	for _, l := range supportedLocales {
		if string(l) == s {
			return l, true
		}
	}

	return "", false
}

func (l Locale) String() string { return string(l) }

// IsDefault reports whether l is the unprefixed locale.
func (l Locale) IsDefault() bool { return l == DefaultLocale }

// Tag returns the BCP 47 tag for l, or the base tag if l is not valid.
func (l Locale) Tag() language.Tag {
	if _, ok := ParseLocale(string(l)); !ok {
		return baseTag
	}

	return language.Make(string(l))
}

// Prefix returns the path prefix for l in public URLs: "" for the default locale,
// "/es" and "/it" otherwise.
func (l Locale) Prefix() string {
	if l == "" || l.IsDefault() {
		return ""
	}

	return "/" + string(l)
}

// Path returns the public URL for the locale-free path p, e.g. Spanish.Path("/pricing")
// is "/es/pricing" and English.Path("/pricing") is "/pricing".
func (l Locale) Path(p string) string {
	if p == "" || p == "/" {
		if l.Prefix() == "" {
			return "/"
		}

		return l.Prefix()
	}

	return l.Prefix() + p
}

// ExplicitPath is like Path but always carries the locale segment, including for
// the default locale. Following such a link stores the choice in the locale cookie.
func (l Locale) ExplicitPath(p string) string {
	if p == "" || p == "/" {
		return "/" + string(l)
	}

	return "/" + string(l) + p
}

// Name returns the endonym of l, e.g. "Español" for Spanish.
func (l Locale) Name() string {
	tag := l.Tag()

	return cases.Title(tag).String(display.Self.Name(tag))
}

// Languages returns the list of supported language tags.
//
// The returned slice is a copy, is sorted by tag string, and is safe to retain.
func Languages() []language.Tag {
	out := make([]language.Tag, 0, len(supportedLocales))
	for _, l := range supportedLocales {
		out = append(out, l.Tag())
	}

	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })

	return out
}

// FirstSegment returns the first non-empty segment of an URL path.
func FirstSegment(p string) string {
	p = strings.TrimLeft(p, "/")
	seg, _, _ := strings.Cut(p, "/")

	return seg
}

// StripLocale removes a leading locale segment from p and returns the rest, always
// starting with "/". Paths without a locale segment are returned unchanged.
func StripLocale(p string) string {
	if _, ok := ParseLocale(FirstSegment(p)); !ok {
		return p
	}

	rest := strings.TrimLeft(p, "/")
	_, rest, _ = strings.Cut(rest, "/")

	return "/" + rest
}
