// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package requests

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/tidwall/gjson"
)

// ErrRemote is wrapped by every APIError.
var ErrRemote = errors.New("remote service error")

// APIError is a failure reported by the remote service itself.
type APIError struct {
	// StatusCode is zero when the remote answered 2xx but reported an
	// error in the body.
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	msg := ErrRemote.Error()

	if e.Message != "" {
		msg += ": " + e.Message
	}

	if e.StatusCode != 0 {
		msg += " (HTTP " + strconv.Itoa(e.StatusCode) + ")"
	}

	return msg
}

func (e *APIError) Unwrap() error { return ErrRemote }

// checkResponse turns a non-2xx status, or a 2xx JSON body with a truthy
// "error" field, into an *APIError. Empty and non-JSON 2xx bodies pass.
func checkResponse(status int, body []byte) error {
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		msg := errorMessage(gjson.ParseBytes(body))
		if msg == "" {
			msg = http.StatusText(status)
		}

		if msg == "" {
			msg = "unknown error"
		}

		return &APIError{StatusCode: status, Message: msg}
	}

	if len(bytes.TrimSpace(body)) == 0 || !gjson.ValidBytes(body) {
		return nil
	}

	result := gjson.ParseBytes(body)

	switch field := result.Get("error"); {
	case !field.Exists(), field.Type == gjson.Null, field.Type == gjson.False, field.String() == "":
		return nil
	}

	msg := errorMessage(result)
	if msg == "" {
		msg = "error without a message"
	}

	return &APIError{Message: msg}
}

// errorMessage reads the message out of {"error":"..."},
// {"error":{"message":"..."}} or {"message":"..."}.
func errorMessage(result gjson.Result) string {
	field := result.Get("error")

	if field.Type == gjson.String && field.String() != "" {
		return field.String()
	}

	if nested := field.Get("message"); field.IsObject() && nested.String() != "" {
		return nested.String()
	}

	return result.Get("message").String()
}

// IsContextCanceled reports whether err comes from a canceled or expired context.
func IsContextCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
