// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"errors"
	"net/http"

	"codeberg.org/mikyai/website/assets/views"
	"codeberg.org/mikyai/website/config"
	"codeberg.org/mikyai/website/core/contact"
	"codeberg.org/mikyai/website/server/utils"
)

// ContactPage is the handler for GET /contact.
func ContactPage(w http.ResponseWriter, r *http.Request) error {
	setPublicCache(w, r)

	return renderPage(w, r, http.StatusOK, views.ContactPage(views.ContactData{}))
}

// contactClient builds the submitter from the current configuration.
func contactClient() contact.Client {
	return contact.Client{
		Endpoint: config.Global.Contact.Endpoint,
		Form:     config.Global.Contact.Encoding == config.EncodingForm,
		Timeout:  config.Global.Contact.Timeout,
	}
}

// ContactSubmit is the handler for POST /contact, used by both the contact
// page and the footer modal.
//
// The page is rendered again with the outcome: 200 when the message was
// delivered, 422 when a field is invalid and 502 when the endpoint failed.
func ContactSubmit(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Cache-Control", "no-store")

	form := contact.Form{
		Values: contact.Submission{
			Name:    utils.GetFormValue(r, contact.FieldName),
			Email:   utils.GetFormValue(r, contact.FieldEmail),
			Message: utils.GetFormValue(r, contact.FieldMessage),
		},
	}

	form.Submit(r.Context(), contactClient())

	return renderPage(w, r, contactStatus(form), views.ContactPage(views.ContactData{Form: form}))
}

func contactStatus(form contact.Form) int {
	if form.State != contact.Failed {
		return http.StatusOK
	}

	if errors.Is(form.Error, contact.ErrInvalidSubmission) {
		return http.StatusUnprocessableEntity
	}

	return http.StatusBadGateway
}
