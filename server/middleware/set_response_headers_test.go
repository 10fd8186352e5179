// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"codeberg.org/mikyai/website/config"
)

func TestSetResponseHeaders(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	Wrap(SetResponseHeaders, next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/es/pricing", nil))

	h := rr.Header()
	assert.Equal(t, config.BuildVersion, h.Get("Miky-Version"))
	assert.NotEmpty(t, h.Get("Miky-Revision"))
	assert.Equal(t, "DENY", h.Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
	assert.Equal(t, "private, no-cache", h.Get("Cache-Control"))

	csp := h.Get("Content-Security-Policy")
	assert.Contains(t, csp, "default-src 'self'")
	assert.Contains(t, csp, "form-action 'self'")
	assert.Contains(t, csp, "frame-ancestors 'none'")
	assert.NotContains(t, csp, "unsafe-inline")
}

func TestSetCacheControl(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"/", "private, no-cache"},
		{"/es/how-it-works", "private, no-cache"},
		{"/img/icons/bot.svg", "max-age=2592000"},
		{"/img/logo.svg", "max-age=1209600"},
		{"/css/site.css", "max-age=604800"},
		{"/js/site.js", "max-age=604800"},
		{"/robots.txt", "max-age=86400"},
		{"/manifest.json", "max-age=86400"},
	}

	for _, tt := range tests {
		h := http.Header{}
		setCacheControl(h, tt.path)
		assert.Equal(t, tt.want, h.Get("Cache-Control"), tt.path)
	}
}
