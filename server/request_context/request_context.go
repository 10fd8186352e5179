// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package request_context holds the state one request carries from the
middleware chain down to the handlers and back to the error handler.

It lives apart from package middleware so that routes and the limiter can use
it without importing the middleware.
*/
package request_context

import (
	"context"
	"net/http"
	"regexp"

	"codeberg.org/mikyai/website/core/idgen"
	"codeberg.org/mikyai/website/i18n"
	"codeberg.org/mikyai/website/server/template/commondata"
)

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-ID"

// proxyRequestID matches request IDs we accept from a reverse proxy.
var proxyRequestID = regexp.MustCompile(`^[A-Za-z0-9._-]{8,64}$`)

// RequestContext is the mutable per-request state. A single request is served
// by a single goroutine, so it needs no locking.
type RequestContext struct {
	// RequestID ties log lines and the error page of one request together.
	RequestID string

	// RequestError is set by middleware.CatchError when a handler fails.
	RequestError error

	// StatusCode is what the error page and the span report. Handlers that
	// write a non-200 page set it themselves.
	StatusCode int

	Locale     i18n.Locale
	CommonData commondata.PageCommonData
}

type contextKey struct{}

// WithRequestContext returns ctx carrying a fresh RequestContext for r.
//
// The locale normally comes from middleware.Localize; without it the locale
// is resolved from r. A well-formed X-Request-ID from upstream is kept as the
// request ID.
func WithRequestContext(ctx context.Context, r *http.Request) context.Context {
	if !i18n.HasLocale(ctx) {
		ctx = i18n.WithRequest(ctx, r)
	}

	id := r.Header.Get(HeaderRequestID)
	if !proxyRequestID.MatchString(id) {
		id = idgen.Make()
	}

	rc := &RequestContext{
		RequestID:  id,
		StatusCode: http.StatusOK,
		Locale:     i18n.LocaleFrom(ctx),
	}
	commondata.PopulatePageCommonData(r.WithContext(ctx), &rc.CommonData)

	return context.WithValue(ctx, contextKey{}, rc)
}

// FromContext returns the RequestContext in ctx. Outside the middleware chain
// it returns a detached zero value, so callers never need a nil check.
func FromContext(ctx context.Context) *RequestContext {
	if rc, ok := ctx.Value(contextKey{}).(*RequestContext); ok {
		return rc
	}

	return &RequestContext{}
}

// FromRequest is FromContext(r.Context()).
func FromRequest(r *http.Request) *RequestContext {
	return FromContext(r.Context())
}
