// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package requests

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"codeberg.org/mikyai/website/core/audit"
)

func TestPostJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     bool
		wantMessage string
		wantStatus  int
	}{
		{name: "ok with body", status: http.StatusOK, body: `{"ok":true}`},
		{name: "ok without body", status: http.StatusNoContent},
		{name: "ok with plain text", status: http.StatusOK, body: "thanks"},
		{name: "ok with false error", status: http.StatusOK, body: `{"error":false}`},
		{name: "ok with empty error", status: http.StatusOK, body: `{"error":""}`},
		{
			name: "error string in body", status: http.StatusOK, body: `{"error":"mailbox full"}`,
			wantErr: true, wantMessage: "mailbox full",
		},
		{
			name: "nested error message", status: http.StatusOK, body: `{"error":{"message":"bad input"}}`,
			wantErr: true, wantMessage: "bad input",
		},
		{
			name: "non-2xx with message", status: http.StatusBadRequest, body: `{"message":"missing email"}`,
			wantErr: true, wantMessage: "missing email", wantStatus: http.StatusBadRequest,
		},
		{
			name: "non-2xx without body", status: http.StatusBadGateway,
			wantErr: true, wantMessage: "Bad Gateway", wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := PostJSON(context.Background(), srv.URL, map[string]any{"name": "Ada"}, audit.ToContact)

			if !tt.wantErr {
				require.NoError(t, err)

				return
			}

			var apiErr *APIError

			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
			assert.ErrorIs(t, err, ErrRemote)
		})
	}
}

func TestPostJSONSendsPayload(t *testing.T) {
	t.Parallel()

	type captured struct {
		body        []byte
		contentType string
		userAgent   string
	}

	got := make(chan captured, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got <- captured{body: body, contentType: r.Header.Get("Content-Type"), userAgent: r.Header.Get("User-Agent")}
	}))
	defer srv.Close()

	payload := struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}{Name: "Ada", Email: "ada@example.com"}

	_, err := PostJSON(context.Background(), srv.URL, payload, audit.ToContact)
	require.NoError(t, err)

	c := <-got
	assert.Equal(t, "application/json", c.contentType)
	assert.Contains(t, c.userAgent, "Miky.ai-website/")
	assert.Equal(t, "ada@example.com", gjson.GetBytes(c.body, "email").String())
}

func TestPostForm(t *testing.T) {
	t.Parallel()

	got := make(chan string, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseMultipartForm(1 << 20)
		got <- r.FormValue("message")
	}))
	defer srv.Close()

	_, err := PostForm(context.Background(), srv.URL, map[string]string{"message": "hello"}, audit.ToContact)
	require.NoError(t, err)
	assert.Equal(t, "hello", <-got)
}

func TestAPIErrorString(t *testing.T) {
	t.Parallel()

	err := &APIError{StatusCode: 500, Message: "boom"}
	assert.Equal(t, "remote service error: boom (HTTP 500)", err.Error())

	err = &APIError{Message: "boom"}
	assert.Equal(t, "remote service error: boom", err.Error())
}

func TestIsContextCanceled(t *testing.T) {
	t.Parallel()

	assert.True(t, IsContextCanceled(context.Canceled))
	assert.True(t, IsContextCanceled(errors.Join(errors.New("x"), context.DeadlineExceeded)))
	assert.False(t, IsContextCanceled(ErrRemote))
}

func TestPostJSONUnreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := PostJSON(context.Background(), url, map[string]any{}, audit.ToContact)
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport failures are not remote errors")
}
