// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"codeberg.org/mikyai/website/assets/views"
)

// UnauthorizedError signals that the request needs a valid admin session.
//
// The error handling middleware is expected to catch this error, set the HTTP
// status to 401 Unauthorized, and render the admin login page.
type UnauthorizedError struct {
	// Message is shown above the password field. It is already translated.
	Message string
}

// Error implements the error interface. The message is simple, as the primary
// purpose of this type is to carry structured data to the error handler.
func (e *UnauthorizedError) Error() string {
	return "unauthorized"
}

// NewUnauthorizedError creates an UnauthorizedError.
//
// Route handlers should return this error when the admin session is missing,
// expired or the password was wrong.
func NewUnauthorizedError(message string) error {
	return &UnauthorizedError{Message: message}
}

// UnauthorizedPage renders the admin login page for e. The status line is
// written by the caller.
func UnauthorizedPage(w http.ResponseWriter, r *http.Request, e *UnauthorizedError) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	return views.AdminLoginPage(views.AdminLoginData{Error: e.Message}).Render(r.Context(), w)
}
