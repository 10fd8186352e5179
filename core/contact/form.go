// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package contact holds the contact form state machine and the submitter that
forwards a submission to the configured endpoint.

Submissions are never stored. The only thing that outlives a request is a log line.
*/
package contact

import (
	"context"
	"errors"
	"html"
	"net/mail"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// State is the state of a contact form.
type State int

const (
	Idle State = iota
	Sent
	Failed
)

func (s State) String() string {
	switch s {
	case Sent:
		return "sent"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Submission is what the visitor typed.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Fields returns s as form fields, for endpoints that take form data.
func (s Submission) Fields() map[string]string {
	return map[string]string{
		"name":    s.Name,
		"email":   s.Email,
		"message": s.Message,
	}
}

// Submitter delivers a submission. It is called at most once per Submit.
type Submitter interface {
	Submit(ctx context.Context, s Submission) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, s Submission) error

func (f SubmitterFunc) Submit(ctx context.Context, s Submission) error {
	return f(ctx, s)
}

// Form is the state of one contact form.
type Form struct {
	Values Submission
	State  State
	// Error is set when State is Failed.
	Error error
}

// Field names reported by ValidationError.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// ErrInvalidSubmission is wrapped by every ValidationError.
var ErrInvalidSubmission = errors.New("invalid contact submission")

// ValidationError lists the fields that failed validation.
type ValidationError struct {
	Fields []string
	// Markup is set when a field was rejected for containing HTML.
	Markup bool
}

func (e *ValidationError) Error() string {
	return ErrInvalidSubmission.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidSubmission
}

// Has reports whether field failed validation.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f == field {
			return true
		}
	}

	return false
}

// newlines turns the CRLF line endings browsers submit into LF, as the
// sanitizer's tokenizer does.
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

var (
	strictPolicy     *bluemonday.Policy
	strictPolicyOnce sync.Once
)

func sanitize(s string) string {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})

	// StrictPolicy escapes the text it keeps.
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

// Validate trims the values and checks that every field is present, that
// the email address parses and that no field holds markup. The returned
// values are exactly what the endpoint receives.
func (s Submission) Validate() (Submission, error) {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Message = newlines.Replace(strings.TrimSpace(s.Message))

	verr := &ValidationError{}

	check := func(field, value string, ok bool) {
		switch {
		case !ok:
			verr.Fields = append(verr.Fields, field)
		case sanitize(value) != value:
			verr.Fields = append(verr.Fields, field)
			verr.Markup = true
		}
	}

	addr, err := mail.ParseAddress(s.Email)

	check(FieldName, s.Name, s.Name != "")
	check(FieldEmail, s.Email, s.Email != "" && err == nil && addr.Address == s.Email)
	check(FieldMessage, s.Message, s.Message != "")

	if len(verr.Fields) > 0 {
		return s, verr
	}

	return s, nil
}

// Submit validates the form values and hands them to sub exactly once.
//
// On success the form is Sent and its values are cleared. On failure it is
// Failed, Error is set and the values are kept so the visitor can retry.
// There is no automatic retry.
func (f *Form) Submit(ctx context.Context, sub Submitter) {
	values, err := f.Values.Validate()
	if err != nil {
		f.State = Failed
		f.Error = err

		return
	}

	if err := sub.Submit(ctx, values); err != nil {
		f.State = Failed
		f.Error = err

		return
	}

	f.Values = Submission{}
	f.State = Sent
	f.Error = nil
}

// Reset returns the form to Idle with empty values.
func (f *Form) Reset() {
	*f = Form{}
}
