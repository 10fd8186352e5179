// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint:revive

	f "codeberg.org/mikyai/website/assets/components/fragments"
	"codeberg.org/mikyai/website/core/contact"
)

type ContactData struct {
	Form contact.Form
}

// ContactPage hosts the contact form for visitors without scripting and
// receives every form post, including those made from the footer modal.
func ContactPage(data ContactData) templ.Component {
	return f.Component(func(ctx context.Context) g.Node {
		cd := f.CommonData(ctx)

		return f.Layout(ctx, f.PageConfig{
			Title:       f.StringOf(ctx, "contact.title"),
			Description: f.StringOf(ctx, "contact.subtitle"),
		},
			Section(
				Div(Class("narrow"),
					H1(f.TextOf(ctx, "contact.title")),
					P(Class("muted"), f.TextOf(ctx, "contact.subtitle")),
					f.ContactForm(ctx, f.ContactFormConfig{LocalePrefix: cd.LocalePrefix}, data.Form),
				),
			),
		)
	})
}
