// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := Wrap(NormalizeURL, next)

	tests := []struct {
		target   string
		location string // empty when the request passes through
	}{
		{target: "/"},
		{target: "/es/pricing"},
		{target: "/pricing/", location: "/pricing"},
		{target: "/it/", location: "/it"},
		{target: "/legal/terms//", location: "/legal/terms"},
		{target: "/how-it-works/?subscribers=2000", location: "/how-it-works?subscribers=2000"},
		{target: "//evil.example/", location: "/evil.example"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			t.Parallel()

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if tt.location == "" {
				assert.Equal(t, http.StatusNoContent, rr.Code)

				return
			}

			assert.Equal(t, http.StatusPermanentRedirect, rr.Code)
			assert.Equal(t, tt.location, rr.Header().Get("Location"))
		})
	}
}

func TestCanonicalPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		changed bool
	}{
		{"/", "/", false},
		{"/pricing", "/pricing", false},
		{"/pricing/", "/pricing", true},
		{"/es/legal/terms/", "/es/legal/terms", true},
		{"///", "/", true},
	}

	for _, tt := range tests {
		got, changed := canonicalPath(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.changed, changed, tt.in)
	}
}
