// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"codeberg.org/mikyai/website/assets/views"
	"codeberg.org/mikyai/website/config"
	"codeberg.org/mikyai/website/core/authenticated"
	"codeberg.org/mikyai/website/core/cookie"
	"codeberg.org/mikyai/website/core/untrusted"
	"codeberg.org/mikyai/website/i18n"
	"codeberg.org/mikyai/website/server/utils"
)

// adminHome is where a successful login lands.
const adminHome = "/admin"

// requireAdminEnabled writes a 404 when no admin password is configured and
// reports whether the caller should continue.
func requireAdminEnabled(w http.ResponseWriter) bool {
	if config.Global.AdminEnabled() {
		return true
	}

	w.WriteHeader(http.StatusNotFound)

	return false
}

// AdminLoginPage is the handler for GET /admin/login.
func AdminLoginPage(w http.ResponseWriter, r *http.Request) error {
	if !requireAdminEnabled(w) {
		return nil
	}

	w.Header().Set("Cache-Control", "no-store")

	return renderPage(w, r, http.StatusOK, views.AdminLoginPage(views.AdminLoginData{}))
}

// AdminLogin is the handler for POST /admin/login.
//
// A correct password issues a signed access token in the Access cookie and
// redirects to the status page. Anything else renders the login page again
// with 401.
func AdminLogin(w http.ResponseWriter, r *http.Request) error {
	if !requireAdminEnabled(w) {
		return nil
	}

	w.Header().Set("Cache-Control", "no-store")

	if !authenticated.CheckPassword(config.Global.Admin.PasswordHash, utils.GetFormValue(r, "password")) {
		log.Warn().
			Str("remote_addr", r.RemoteAddr).
			Msg("Rejected admin login")

		return NewUnauthorizedError(i18n.Tr(r.Context(), "Invalid password."))
	}

	token, err := config.PasetoValidator.Sign(authenticated.AdminSubject, config.Global.Admin.SessionTTL)
	if err != nil {
		return err
	}

	untrusted.SetCookieFor(w, r, cookie.AccessCookie, token, config.Global.Admin.SessionTTL)

	http.Redirect(w, r, adminReturnPath(utils.GetFormValue(r, "return")), http.StatusSeeOther)

	return nil
}

// adminReturnPath keeps a post-login redirect inside the admin area.
func adminReturnPath(raw string) string {
	p := utils.SanitizeReturnPath(raw)
	if p == adminHome || strings.HasPrefix(p, adminHome+"/") {
		return p
	}

	return adminHome
}

// AdminStatusPage is the handler for GET /admin.
func AdminStatusPage(w http.ResponseWriter, r *http.Request) error {
	if !requireAdminEnabled(w) {
		return nil
	}

	w.Header().Set("Cache-Control", "no-store")

	token := untrusted.GetAccessToken(r)
	if token == "" {
		return NewUnauthorizedError("")
	}

	if err := config.PasetoValidator.Verify(token, authenticated.AdminSubject); err != nil {
		untrusted.ClearCookie(w, r, cookie.AccessCookie)

		return NewUnauthorizedError("")
	}

	pageData := views.AdminStatusData{
		Version:  config.BuildVersion,
		Revision: config.Global.Build.Revision(),
		Started:  config.Global.Instance.StartingTime,
	}

	if config.Global.ContactConfigured() {
		pageData.ContactEndpoint = config.Global.Contact.Endpoint
	}

	for _, l := range i18n.Locales() {
		c := i18n.Messages(l)
		pageData.Catalogs = append(pageData.Catalogs, views.CatalogStatus{
			Locale:  l,
			Keys:    len(c.Keys()),
			Missing: c.Missing(),
		})
	}

	return renderPage(w, r, http.StatusOK, views.AdminStatusPage(pageData))
}

// AdminLogout is the handler for POST /admin/logout.
func AdminLogout(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Cache-Control", "no-store")

	untrusted.ClearCookie(w, r, cookie.AccessCookie)

	http.Redirect(w, r, "/", http.StatusSeeOther)

	return nil
}
