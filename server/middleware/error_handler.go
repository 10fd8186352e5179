// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"errors"
	"maps"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/rs/zerolog/log"

	"codeberg.org/mikyai/website/config"
	"codeberg.org/mikyai/website/core/audit"
	"codeberg.org/mikyai/website/server/request_context"
	"codeberg.org/mikyai/website/server/routes"
)

// CatchError turns a handler that returns an error into an http.HandlerFunc.
//
// The handler writes into a buffer. Once it returns, CatchError picks the
// response that is actually sent:
//
//	*routes.UnauthorizedError          401 with the admin login page
//	other error, buffer status < 400   500 with the error page
//	buffer status 404                  404 with the error page
//	anything else                      the buffer as written
//
// The request is then logged as an audit span, unless
// config.ShouldSkipServerLogging excludes the path.
func CatchError(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := request_context.FromRequest(r)

		span := audit.Span{
			Destination: destinationOf(r),
			RequestID:   rc.RequestID,
			Method:      r.Method,
			URL:         r.URL.String(),
			Locale:      rc.Locale.String(),
		}

		_ = span.Begin(r.Context())

		buf := httptest.NewRecorder()
		rc.RequestError = handler(buf, r)

		span.Size = respond(w, r, rc, buf)
		span.End()

		span.StatusCode = rc.StatusCode
		span.Error = rc.RequestError

		if !config.Global.ShouldSkipServerLogging(r.URL.Path) {
			span.Log()
		}
	}
}

// respond sends the final response for the buffered one in buf and returns
// the size of the body that came from the handler, or 0 for a replaced page.
func respond(w http.ResponseWriter, r *http.Request, rc *request_context.RequestContext, buf *httptest.ResponseRecorder) int {
	var unauthorized *routes.UnauthorizedError

	switch {
	case errors.As(rc.RequestError, &unauthorized):
		rc.StatusCode = http.StatusUnauthorized

		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(rc.StatusCode)

		if err := routes.UnauthorizedPage(w, r, unauthorized); err != nil {
			log.Err(err).
				Str("request_id", rc.RequestID).
				Msg("Failed to render the login page after an authorization error")
		}

		return 0

	case buf.Code == http.StatusNotFound:
		rc.StatusCode = http.StatusNotFound

	case rc.RequestError != nil && buf.Code < http.StatusBadRequest:
		rc.StatusCode = http.StatusInternalServerError

	default:
		rc.StatusCode = buf.Code
		maps.Copy(w.Header(), buf.Header())
		w.WriteHeader(buf.Code)

		n, err := buf.Body.WriteTo(w)
		if err != nil {
			log.Err(err).Str("request_id", rc.RequestID).Msg("Failed to write response body")
		}

		return int(n)
	}

	// ErrorPage reads the status and error from rc.
	w.WriteHeader(rc.StatusCode)
	routes.ErrorPage(w, r)

	return 0
}

// destinationOf classifies the request for the audit log.
func destinationOf(r *http.Request) audit.TrafficDestination {
	if r.URL.Path == "/admin" || strings.HasPrefix(r.URL.Path, "/admin/") {
		return audit.ToAdmin
	}

	return audit.ToUser
}
