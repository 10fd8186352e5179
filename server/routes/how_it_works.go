// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"codeberg.org/mikyai/website/assets/views"
	"codeberg.org/mikyai/website/config"
	"codeberg.org/mikyai/website/core/referral"
	"codeberg.org/mikyai/website/server/utils"
)

// subscribersParam is the calculator's query parameter.
const subscribersParam = "subscribers"

// HowItWorksPage is the handler for /how-it-works. The calculator submits to
// the same URL with ?subscribers=N.
func HowItWorksPage(w http.ResponseWriter, r *http.Request) error {
	setPublicCache(w, r)

	pageData := views.HowItWorksData{
		Subscribers: referral.ClampSubscribers(utils.GetQueryParam(r, subscribersParam)),
		SignInURL:   config.Global.Auth.SignInURL,
		SignUpURL:   config.Global.Auth.SignUpURL,
	}

	return renderPage(w, r, http.StatusOK, views.HowItWorksPage(pageData))
}

// ReferPage is the handler for /refer.
func ReferPage(w http.ResponseWriter, r *http.Request) error {
	setPublicCache(w, r)

	pageData := views.ReferData{
		Subscribers: referral.ClampSubscribers(utils.GetQueryParam(r, subscribersParam)),
		SignUpURL:   config.Global.Auth.SignUpURL,
	}

	return renderPage(w, r, http.StatusOK, views.ReferPage(pageData))
}
