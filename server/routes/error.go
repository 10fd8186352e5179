// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"codeberg.org/mikyai/website/assets/views"
	"codeberg.org/mikyai/website/server/request_context"
)

// ErrorPage renders an error page.
//
// The status line is written by the caller; the page reads the error and the
// status code from the request context.
func ErrorPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	rc := request_context.FromRequest(r)

	pageData := views.ErrorData{
		StatusCode: rc.StatusCode,
		Error:      rc.RequestError,
		RequestID:  rc.RequestID,
	}

	if err := views.ErrorPage(pageData).Render(r.Context(), w); err != nil {
		log.Err(err).Str("request_id", rc.RequestID).Msg("Failed to render the error page")
	}
}
