// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package untrusted

import (
	"net/http"
	"net/url"
	"time"

	"codeberg.org/mikyai/website/core/cookie"
	"codeberg.org/mikyai/website/server/utils"
)

// preferenceMaxAge is the lifetime of cookies set with SetCookie.
const preferenceMaxAge = 30 * 24 * time.Hour

// newCookie returns a site-wide Lax cookie. Secure follows the scheme the
// visitor used, so plain HTTP on a LAN still works.
func newCookie(r *http.Request, name cookie.CookieName, value string) *http.Cookie {
	return &http.Cookie{
		Name:     string(name),
		Value:    url.QueryEscape(value),
		Path:     "/",
		Secure:   utils.IsConnectionSecure(r),
		HttpOnly: cookie.IsHttpOnly(name),
		SameSite: http.SameSiteLaxMode,
	}
}

// GetCookie returns the decoded value of cookie name, or "".
func GetCookie(r *http.Request, name cookie.CookieName) string {
	c, err := r.Cookie(string(name))
	if err != nil {
		return ""
	}

	value, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}

	return value
}

// SetCookie stores a visitor preference for 30 days. An empty value clears it.
func SetCookie(w http.ResponseWriter, r *http.Request, name cookie.CookieName, value string) {
	SetCookieFor(w, r, name, value, preferenceMaxAge)
}

// SetCookieFor is SetCookie with an explicit lifetime.
func SetCookieFor(w http.ResponseWriter, r *http.Request, name cookie.CookieName, value string, ttl time.Duration) {
	if value == "" {
		ClearCookie(w, r, name)

		return
	}

	c := newCookie(r, name, value)
	c.MaxAge = int(ttl / time.Second)
	c.Expires = time.Now().Add(ttl)

	http.SetCookie(w, c)
}

// ClearCookie tells the browser to drop cookie name.
func ClearCookie(w http.ResponseWriter, r *http.Request, name cookie.CookieName) {
	c := newCookie(r, name, "")
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)

	http.SetCookie(w, c)
}
