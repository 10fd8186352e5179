// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package untrusted

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/mikyai/website/config"
	"codeberg.org/mikyai/website/core/cookie"
)

func TestSetAndGetCookie(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/es", nil)

	SetCookie(w, r, cookie.LocaleCookie, "es")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "Locale", cookies[0].Name)
	assert.Equal(t, "es", cookies[0].Value)
	assert.Equal(t, "/", cookies[0].Path)
	assert.False(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.Equal(t, int(preferenceMaxAge.Seconds()), cookies[0].MaxAge)
	assert.False(t, cookies[0].Secure)

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(cookies[0])
	assert.Equal(t, "es", GetLocalePreference(next))
}

func TestSetCookieEmptyClears(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	SetCookie(w, r, cookie.AccessCookie, "")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestHasSession(t *testing.T) {
	config.Global.Auth.SessionCookie = "sb-access-token"

	tests := []struct {
		name   string
		cookie *http.Cookie
		want   bool
	}{
		{name: "no cookie", want: false},
		{name: "empty value", cookie: &http.Cookie{Name: "sb-access-token", Value: ""}, want: false},
		{name: "present", cookie: &http.Cookie{Name: "sb-access-token", Value: "abc"}, want: true},
		{name: "other cookie", cookie: &http.Cookie{Name: "Locale", Value: "en"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/chat", nil)
			if tt.cookie != nil {
				r.AddCookie(tt.cookie)
			}

			assert.Equal(t, tt.want, HasSession(r))
		})
	}
}

func TestCookieSecureBehindProxy(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
	r.RemoteAddr = "127.0.0.1:40000"
	r.Header.Set("X-Forwarded-Proto", "https")

	SetCookieFor(w, r, cookie.AccessCookie, "v4.public.token", time.Hour)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)

	next := httptest.NewRequest(http.MethodGet, "/admin", nil)
	next.AddCookie(cookies[0])
	assert.Equal(t, "v4.public.token", GetAccessToken(next))
}
