// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"codeberg.org/mikyai/website/assets/views"
)

// IndexPage is the handler for the home page of every locale.
func IndexPage(w http.ResponseWriter, r *http.Request) error {
	setPublicCache(w, r)

	return renderPage(w, r, http.StatusOK, views.HomePage())
}
