// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package untrusted

import (
	"net/http"
	"strings"

	"codeberg.org/mikyai/website/config"
	"codeberg.org/mikyai/website/core/cookie"
)

// GetLocalePreference returns the raw value of the locale cookie.
//
// The value is not validated here; callers parse it with i18n.ParseLocale.
func GetLocalePreference(r *http.Request) string {
	return strings.TrimSpace(GetCookie(r, cookie.LocaleCookie))
}

// HasSession reports whether the request carries a non-empty account session
// cookie, as configured by Auth.SessionCookie.
//
// Only presence is checked. The session itself is validated by the auth service
// behind the dashboard.
func HasSession(r *http.Request) bool {
	name := config.Global.Auth.SessionCookie
	if name == "" {
		return false
	}

	c, err := r.Cookie(name)
	if err != nil {
		return false
	}

	return c.Value != ""
}

// GetAccessToken returns the admin access token, if any.
func GetAccessToken(r *http.Request) string {
	return GetCookie(r, cookie.AccessCookie)
}
