// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestLocales(t *testing.T) {
	t.Parallel()

	locales := Locales()
	assert.Equal(t, []Locale{English, Spanish, Italian}, locales)

	// Callers get a copy.
	locales[0] = "xx"
	assert.Equal(t, English, Locales()[0])
}

func TestParseLocale(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"en", "es", "it"} {
		l, ok := ParseLocale(s)
		assert.True(t, ok, s)
		assert.Equal(t, s, l.String())
	}

	for _, s := range []string{"", "EN", "es-ES", "fr", " it"} {
		_, ok := ParseLocale(s)
		assert.False(t, ok, s)
	}
}

func TestLocalePaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		locale       Locale
		path         string
		wantPath     string
		wantExplicit string
	}{
		{English, "/", "/", "/en"},
		{English, "/pricing", "/pricing", "/en/pricing"},
		{Spanish, "/", "/es", "/es"},
		{Spanish, "/legal/terms", "/es/legal/terms", "/es/legal/terms"},
		{Italian, "", "/it", "/it"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.wantPath, tt.locale.Path(tt.path))
		assert.Equal(t, tt.wantExplicit, tt.locale.ExplicitPath(tt.path))
	}

	assert.Empty(t, English.Prefix())
	assert.Equal(t, "/it", Italian.Prefix())
}

func TestLocaleNameAndTag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "English", English.Name())
	assert.Equal(t, "Español", Spanish.Name())
	assert.Equal(t, "Italiano", Italian.Name())

	assert.Equal(t, language.Spanish, Spanish.Tag())
	assert.Equal(t, language.English, Locale("zz").Tag())
}

func TestStripLocale(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/", StripLocale("/es"))
	assert.Equal(t, "/pricing", StripLocale("/it/pricing"))
	assert.Equal(t, "/en/", StripLocale("/en/en/"))
	assert.Equal(t, "/pricing", StripLocale("/pricing"))
	assert.Equal(t, "/esx", StripLocale("/esx"))
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultLocale, LocaleFrom(context.Background()))
	//nolint:staticcheck // nil context is explicitly supported
	assert.Equal(t, DefaultLocale, LocaleFrom(nil))

	ctx := WithLocale(context.Background(), Italian)
	assert.Equal(t, Italian, LocaleFrom(ctx))
	assert.Equal(t, language.Italian, TagFrom(ctx))
}

func TestFromRequest(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/pricing", nil)
	r.AddCookie(&http.Cookie{Name: "Locale", Value: "it"})
	r.Header.Set("Accept-Language", "es")

	assert.Equal(t, Italian, FromRequest(r))
	assert.Equal(t, DefaultLocale, FromRequest(nil))
}
