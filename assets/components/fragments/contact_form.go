// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package fragments

import (
	"context"
	"errors"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint:revive

	"codeberg.org/mikyai/website/core/contact"
	"codeberg.org/mikyai/website/i18n"
)

// ContactFormConfig is everything the contact form needs besides its state.
type ContactFormConfig struct {
	// LocalePrefix is "" for the default locale, "/es" or "/it" otherwise.
	LocalePrefix string
	// Action overrides the form target. Empty means LocalePrefix + "/contact".
	Action string
}

func (c ContactFormConfig) action() string {
	if c.Action != "" {
		return c.Action
	}

	return c.LocalePrefix + "/contact"
}

// ContactForm renders the contact form for the given state. It is shared by
// the footer modal and the contact page.
//
// A sent form shows a confirmation above empty fields. A failed form keeps
// the visitor's values and explains what went wrong.
func ContactForm(ctx context.Context, cfg ContactFormConfig, form contact.Form) g.Node {
	var invalid *contact.ValidationError

	errors.As(form.Error, &invalid)

	isInvalid := func(field string) bool {
		return form.State == contact.Failed && invalid != nil && invalid.Has(field)
	}

	return Form(Class("form contact-form"), Method("post"), Action(cfg.action()),
		Data("state", form.State.String()),
		contactNotice(ctx, form, invalid),
		Label(
			TextOf(ctx, "contact.nameLabel"),
			Input(ID("contact-name"), Name(contact.FieldName), Type("text"), AutoComplete("name"),
				Required(), MaxLength("200"),
				Placeholder(StringOf(ctx, "contact.namePlaceholder")),
				Value(form.Values.Name),
				g.If(isInvalid(contact.FieldName), Aria("invalid", "true")),
			),
		),
		Label(
			TextOf(ctx, "contact.emailLabel"),
			Input(ID("contact-email"), Name(contact.FieldEmail), Type("email"), AutoComplete("email"),
				Required(), MaxLength("254"),
				Placeholder(StringOf(ctx, "contact.emailPlaceholder")),
				Value(form.Values.Email),
				g.If(isInvalid(contact.FieldEmail), Aria("invalid", "true")),
			),
		),
		Label(
			TextOf(ctx, "contact.messageLabel"),
			Textarea(ID("contact-message"), Name(contact.FieldMessage), Rows("6"),
				Required(), MaxLength("5000"),
				Placeholder(StringOf(ctx, "contact.messagePlaceholder")),
				g.If(isInvalid(contact.FieldMessage), Aria("invalid", "true")),
				g.Text(form.Values.Message),
			),
		),
		Button(Class("btn btn-primary btn-block"), Type("submit"),
			Data("sending", StringOf(ctx, "contact.sendingButton")),
			Icon("mail"),
			Span(TextOf(ctx, "contact.sendButton")),
		),
	)
}

func contactNotice(ctx context.Context, form contact.Form, invalid *contact.ValidationError) g.Node {
	switch form.State {
	case contact.Sent:
		return Div(Class("notice success"), Role("status"),
			Strong(TextOf(ctx, "contact.successTitle")),
			P(TextOf(ctx, "contact.successMessage")),
		)

	case contact.Failed:
		var detail string

		switch {
		case invalid == nil:
			detail = failureMessage(ctx, form.Error)
		case invalid.Markup:
			detail = StringOf(ctx, "contact.errorMarkup")
		default:
			detail = StringOf(ctx, "contact.errorValidation")
		}

		return Div(Class("notice error"), Role("alert"),
			Strong(TextOf(ctx, "contact.errorTitle")),
			P(g.Text(detail)),
		)

	default:
		return nil
	}
}

// failureMessage is the endpoint's own message when it gave one.
func failureMessage(ctx context.Context, err error) string {
	var endpointErr *contact.EndpointError
	if errors.As(err, &endpointErr) && endpointErr.Message != "" {
		return endpointErr.Message
	}

	return i18n.Tr(ctx, "An unexpected error occurred. Please try again later.")
}
