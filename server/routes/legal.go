// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"codeberg.org/mikyai/website/assets/views"
	"codeberg.org/mikyai/website/config"
)

// LegalPage returns the handler for one legal document.
func LegalPage(doc string) func(w http.ResponseWriter, r *http.Request) error {
	return func(w http.ResponseWriter, r *http.Request) error {
		setPublicCache(w, r)

		return renderPage(w, r, http.StatusOK, views.LegalPage(views.LegalData{
			Doc:     doc,
			Updated: config.Global.Site.LegalUpdated,
		}))
	}
}
