// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint:revive

	f "codeberg.org/mikyai/website/assets/components/fragments"
)

type ChatData struct {
	SignInURL string
	SignUpURL string
}

// ChatPage asks anonymous visitors to sign in. Signed-in visitors are sent
// to the dashboard before this renders.
func ChatPage(data ChatData) templ.Component {
	return f.Component(func(ctx context.Context) g.Node {
		return f.Layout(ctx, f.PageConfig{
			Title:   f.StringOf(ctx, "chat.loginRequired.title"),
			NoIndex: true,
		},
			Section(Class("hero"),
				Div(Class("narrow card center"),
					f.Icon("lock", "icon-lg"),
					H1(f.TextOf(ctx, "chat.loginRequired.title")),
					P(f.TextOf(ctx, "chat.loginRequired.description")),
					Div(Class("actions"),
						A(Class("btn btn-primary"), Href(data.SignInURL), f.TextOf(ctx, "chat.loginRequired.signIn")),
						A(Class("btn"), Href(data.SignUpURL), f.TextOf(ctx, "chat.loginRequired.signUp")),
					),
				),
			),
		)
	})
}
