// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint:revive

	f "codeberg.org/mikyai/website/assets/components/fragments"
	"codeberg.org/mikyai/website/i18n"
)

type ErrorData struct {
	StatusCode int
	Error      error
	RequestID  string
}

// errorText returns the heading and the explanation for a status code.
func errorText(ctx context.Context, status int) (string, string) {
	switch status {
	case http.StatusNotFound:
		return i18n.Tr(ctx, "Page not found"), i18n.Tr(ctx, "The page you are looking for does not exist.")
	case http.StatusTooManyRequests:
		return i18n.Tr(ctx, "Too many requests"), i18n.Tr(ctx, "Please slow down and try again in a moment.")
	case http.StatusForbidden:
		return i18n.Tr(ctx, "Access denied"), i18n.Tr(ctx, "Requests from your network are not accepted.")
	default:
		return i18n.Tr(ctx, "Something went wrong"), i18n.Tr(ctx, "An unexpected error occurred. Please try again later.")
	}
}

// ErrorPage is rendered for every failed request.
//
// Only errors meant for visitors (*i18n.UserError) are shown verbatim.
func ErrorPage(data ErrorData) templ.Component {
	return f.Component(func(ctx context.Context) g.Node {
		title, detail := errorText(ctx, data.StatusCode)

		if userErr, ok := data.Error.(*i18n.UserError); ok {
			detail = userErr.Error()
		}

		return f.Layout(ctx, f.PageConfig{Title: title, NoIndex: true},
			Section(Class("error-page center"),
				Div(Class("narrow"),
					P(Class("code gradient-text"), g.Text(strconv.Itoa(data.StatusCode))),
					H1(g.Text(title)),
					P(Class("muted"), g.Text(detail)),
					g.If(data.RequestID != "",
						P(Class("muted"), Small(g.Text(i18n.Tr(ctx, "Request ID: {{.ID}}", "ID", data.RequestID)))),
					),
					A(Class("btn btn-primary"), Href(f.CommonData(ctx).Path("/")),
						f.Icon("arrow-left"), g.Text(i18n.Tr(ctx, "Back to home"))),
				),
			),
		)
	})
}
