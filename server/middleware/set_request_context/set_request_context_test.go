// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package set_request_context

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/mikyai/website/i18n"
	"codeberg.org/mikyai/website/server/middleware"
	"codeberg.org/mikyai/website/server/request_context"
)

// capture runs WithRequestContext for req and returns what the handler saw.
func capture(t *testing.T, req *http.Request) (*request_context.RequestContext, *httptest.ResponseRecorder) {
	t.Helper()

	var seen *request_context.RequestContext

	handler := middleware.Wrap(WithRequestContext, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = request_context.FromRequest(r)

		w.WriteHeader(http.StatusNoContent)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.NotNil(t, seen, "next handler was not called")

	return seen, rr
}

func TestWithRequestContext(t *testing.T) {
	t.Parallel()

	rc, rr := capture(t, httptest.NewRequest(http.MethodPost, "/api/test-signup", nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.NotEmpty(t, rc.RequestID)
	assert.Equal(t, rc.RequestID, rr.Header().Get(request_context.HeaderRequestID))
	assert.Equal(t, http.StatusOK, rc.StatusCode)
	assert.NoError(t, rc.RequestError)
}

func TestRequestIDs(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}

	for range 3 {
		rc, _ := capture(t, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.False(t, seen[rc.RequestID], "duplicate request ID %s", rc.RequestID)
		seen[rc.RequestID] = true
	}

	tests := []struct {
		header string
		kept   bool
	}{
		{"edge-7f3a9c2e41", true},
		{"short", false},
		{"<script>alert(1)</script>", false},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(request_context.HeaderRequestID, tt.header)

		rc, _ := capture(t, req)
		assert.Equal(t, tt.kept, rc.RequestID == tt.header, tt.header)
	}
}

func TestWithRequestContextResolvesLocale(t *testing.T) {
	t.Parallel()

	rc, _ := capture(t, httptest.NewRequest(http.MethodGet, "/es/pricing", nil))

	assert.Equal(t, i18n.Spanish, rc.Locale)
	assert.Equal(t, i18n.Spanish, rc.CommonData.Locale)
	assert.Equal(t, "/pricing", rc.CommonData.PagePath)
	assert.Equal(t, "/es", rc.CommonData.LocalePrefix)
}

func TestFromContextOutsideChain(t *testing.T) {
	t.Parallel()

	rc := request_context.FromRequest(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotNil(t, rc)
	assert.Empty(t, rc.RequestID)
}
