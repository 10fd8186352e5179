// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
This package defines the cookie names used by this application.
*/
package cookie

import "slices"

type CookieName string

// Cookie names defined as constants.
//
// NOTE: We don't use the `__Host-` prefix so that plain HTTP deployments on a LAN
// keep working; the localhost exemption doesn't cover them.
const (
	// LocaleCookie persists the visitor's resolved locale ("en", "es" or "it").
	LocaleCookie CookieName = "Locale"

	// paseto v4.public token for the admin status page
	AccessCookie CookieName = "Access"
)

// httpOnlyCookies are never read by client-side scripts.
var httpOnlyCookies = []CookieName{
	AccessCookie,
}

// IsHttpOnly reports whether the cookie should carry the HttpOnly attribute.
//
//nolint:revive // keep the Http spelling used by net/http.Cookie.HttpOnly
func IsHttpOnly(name CookieName) bool {
	return slices.Contains(httpOnlyCookies, name)
}
