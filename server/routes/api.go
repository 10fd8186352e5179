// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
)

// maxAPIBody bounds the body accepted by the test signup endpoint.
const maxAPIBody = 64 << 10

var errInvalidJSON = errors.New("request body is not valid JSON")

// writeJSON writes v with the given status. Encoding errors are returned.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(v)
}

// TestSignupStatus is the handler for GET /api/test-signup.
func TestSignupStatus(w http.ResponseWriter, _ *http.Request) error {
	return writeJSON(w, http.StatusOK, map[string]string{"message": "Test signup API is accessible"})
}

// TestSignup is the handler for POST /api/test-signup. It echoes the JSON
// body back.
func TestSignup(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxAPIBody))
	if err == nil && !gjson.ValidBytes(body) {
		err = errInvalidJSON
	}

	if err != nil {
		return writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Test API failed",
			"details": fmt.Sprint(err),
		})
	}

	return writeJSON(w, http.StatusOK, struct {
		Success      bool            `json:"success"`
		Message      string          `json:"message"`
		ReceivedData json.RawMessage `json:"receivedData"`
	}{
		Success:      true,
		Message:      "Test API is working!",
		ReceivedData: body,
	})
}

// Health is the handler for GET /health.
func Health(w http.ResponseWriter, _ *http.Request) error {
	return writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
