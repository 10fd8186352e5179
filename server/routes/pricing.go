// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"codeberg.org/mikyai/website/assets/views"
	"codeberg.org/mikyai/website/config"
)

// PricingPage is the handler for /pricing.
func PricingPage(w http.ResponseWriter, r *http.Request) error {
	setPublicCache(w, r)

	return renderPage(w, r, http.StatusOK, views.PricingPage(views.PricingData{
		SignUpURL: config.Global.Auth.SignUpURL,
	}))
}
