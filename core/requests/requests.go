// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package requests makes outbound HTTP requests to third-party services and
// records them as audit spans.
package requests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"codeberg.org/mikyai/website/config"
	"codeberg.org/mikyai/website/core/audit"
	"codeberg.org/mikyai/website/core/idgen"
	"codeberg.org/mikyai/website/server/request_context"
	"codeberg.org/mikyai/website/server/utils"
)

// PostJSON POSTs payload encoded as JSON to url and returns the response body.
//
// A non-2xx answer, or a JSON body carrying a non-empty "error" field, is
// returned as an *APIError.
func PostJSON(ctx context.Context, url string, payload any, dest audit.TrafficDestination) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}

	return post(ctx, url, "application/json", bytes.NewReader(data), dest)
}

// PostForm is PostJSON for endpoints that take multipart/form-data.
func PostForm(ctx context.Context, url string, fields map[string]string, dest audit.TrafficDestination) ([]byte, error) {
	var buf bytes.Buffer

	mw := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("writing form field %q: %w", name, err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("closing form: %w", err)
	}

	return post(ctx, url, mw.FormDataContentType(), &buf, dest)
}

func post(ctx context.Context, url, contentType string, body io.Reader, dest audit.TrafficDestination) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("User-Agent", "Miky.ai-website/"+config.Global.Build.Version())
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", contentType)

	status, respBody, err := send(ctx, req, dest)
	if err != nil {
		return nil, err
	}

	if err := checkResponse(status, respBody); err != nil {
		return nil, err
	}

	return respBody, nil
}

// send runs req through utils.HTTPClient inside an audit span and reads the
// whole response body.
func send(ctx context.Context, req *http.Request, dest audit.TrafficDestination) (status int, body []byte, err error) {
	span := audit.Span{
		Destination: dest,
		RequestID:   request_context.FromContext(ctx).RequestID + "-" + idgen.Make(),
		Method:      req.Method,
		URL:         req.URL.Redacted(),
	}

	_ = span.Begin(ctx)

	defer func() {
		span.Error = err
		span.End()
		span.Log()
	}()

	resp, err := utils.HTTPClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	span.StatusCode = resp.StatusCode

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("reading response: %w", err)
	}

	span.Size = len(body)

	return resp.StatusCode, body, nil
}
