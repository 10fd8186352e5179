// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"codeberg.org/mikyai/website/assets/views"
	"codeberg.org/mikyai/website/config"
	"codeberg.org/mikyai/website/server/request_context"
)

// ChatPage sends visitors with a session to the dashboard and asks everyone
// else to sign in.
func ChatPage(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Cache-Control", "no-store")

	if request_context.FromRequest(r).CommonData.LoggedIn {
		http.Redirect(w, r, config.Global.Auth.DashboardURL, http.StatusSeeOther)

		return nil
	}

	return renderPage(w, r, http.StatusOK, views.ChatPage(views.ChatData{
		SignInURL: config.Global.Auth.SignInURL,
		SignUpURL: config.Global.Auth.SignUpURL,
	}))
}
