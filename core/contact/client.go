// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package contact

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"codeberg.org/mikyai/website/core/audit"
	"codeberg.org/mikyai/website/core/idgen"
	"codeberg.org/mikyai/website/core/requests"
)

// ErrNotConfigured is returned when no endpoint is set.
var ErrNotConfigured = errors.New("contact endpoint is not configured")

// EndpointError is a failure reported by, or on the way to, the contact endpoint.
type EndpointError struct {
	// Message is the endpoint's error text, or a transport description.
	Message string
	// StatusCode is the endpoint's HTTP status, zero when it answered 2xx.
	StatusCode int
	Err        error
}

func (e *EndpointError) Error() string {
	return "contact endpoint: " + e.Message
}

func (e *EndpointError) Unwrap() error {
	return e.Err
}

// Client posts submissions to an HTTP endpoint.
type Client struct {
	Endpoint string
	// Form selects multipart/form-data instead of JSON.
	Form    bool
	Timeout time.Duration
}

// Submit sends s once. The call is bounded by c.Timeout.
func (c Client) Submit(ctx context.Context, s Submission) error {
	if c.Endpoint == "" {
		return &EndpointError{Message: ErrNotConfigured.Error(), Err: ErrNotConfigured}
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	// The ID only ties the log lines of one submission together; the
	// endpoint receives the three fields and nothing else.
	id := idgen.Tagged("ct")

	var err error
	if c.Form {
		_, err = requests.PostForm(ctx, c.Endpoint, s.Fields(), audit.ToContact)
	} else {
		_, err = requests.PostJSON(ctx, c.Endpoint, s, audit.ToContact)
	}

	if err != nil {
		log.Warn().
			Err(err).
			Str("submission_id", id).
			Msg("Contact submission failed")

		return toEndpointError(err)
	}

	log.Info().
		Str("submission_id", id).
		Msg("Contact submission delivered")

	return nil
}

func toEndpointError(err error) error {
	var apiErr *requests.APIError
	if errors.As(err, &apiErr) {
		return &EndpointError{Message: apiErr.Message, StatusCode: apiErr.StatusCode, Err: err}
	}

	if requests.IsContextCanceled(err) {
		return &EndpointError{Message: "request timed out", Err: err}
	}

	return &EndpointError{Message: "endpoint unreachable", Err: err}
}
