// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint:revive

	f "codeberg.org/mikyai/website/assets/components/fragments"
	"codeberg.org/mikyai/website/i18n"
)

// AdminLogoutPath clears the admin session.
const AdminLogoutPath = "/admin/logout"

type AdminLoginData struct {
	// Error is already translated.
	Error string
}

// AdminLoginPage is the stand-alone admin gate, shown when the footer modal
// is unavailable or the password was wrong.
func AdminLoginPage(data AdminLoginData) templ.Component {
	return f.Component(func(ctx context.Context) g.Node {
		return f.Layout(ctx, f.PageConfig{Title: f.StringOf(ctx, "admin.title"), NoIndex: true},
			Section(
				Div(Class("narrow card"),
					H1(f.TextOf(ctx, "admin.title")),
					P(Class("muted"), f.TextOf(ctx, "admin.subtitle")),
					f.AdminGate(ctx, f.AdminGateConfig{Error: data.Error}),
				),
			),
		)
	})
}

// CatalogStatus summarises one locale's message catalog.
type CatalogStatus struct {
	Locale  i18n.Locale
	Keys    int
	Missing []string
}

type AdminStatusData struct {
	Version  string
	Revision string
	Started  string
	// ContactEndpoint is empty when submissions are not configured.
	ContactEndpoint string
	Catalogs        []CatalogStatus
}

// AdminStatusPage shows what the running instance is serving.
func AdminStatusPage(data AdminStatusData) templ.Component {
	return f.Component(func(ctx context.Context) g.Node {
		endpoint := data.ContactEndpoint
		if endpoint == "" {
			endpoint = i18n.Tr(ctx, "Not configured")
		}

		return f.Layout(ctx, f.PageConfig{Title: i18n.Tr(ctx, "Admin status"), NoIndex: true},
			Section(
				Div(Class("narrow"),
					H1(g.Text(i18n.Tr(ctx, "Admin status"))),
					Table(Class("levels"),
						TBody(
							statusRow(i18n.Tr(ctx, "Version"), data.Version),
							statusRow(i18n.Tr(ctx, "Revision"), data.Revision),
							statusRow(i18n.Tr(ctx, "Started"), data.Started),
							statusRow(i18n.Tr(ctx, "Contact endpoint"), endpoint),
						),
					),
					H2(g.Text(i18n.Tr(ctx, "Message catalogs"))),
					Table(Class("levels"),
						THead(Tr(
							Th(g.Text(i18n.Tr(ctx, "Locale"))),
							Th(g.Text("")),
							Th(g.Text(i18n.Tr(ctx, "Missing keys"))),
						)),
						TBody(g.Group(g.Map(data.Catalogs, func(c CatalogStatus) g.Node {
							return Tr(Data("locale", c.Locale.String()),
								Th(g.Attr("scope", "row"), g.Text(c.Locale.Name())),
								Td(Class("num"), g.Text(i18n.TrN(ctx, "{{.Count}} key", "{{.Count}} keys", c.Keys, "Count", c.Keys))),
								Td(Class("num"), g.Text(strconv.Itoa(len(c.Missing)))),
							)
						}))),
					),
					Form(Method("post"), Action(AdminLogoutPath),
						Button(Class("btn"), Type("submit"), g.Text(i18n.Tr(ctx, "Log out"))),
					),
				),
			),
		)
	})
}

func statusRow(label, value string) g.Node {
	return Tr(Th(g.Attr("scope", "row"), g.Text(label)), Td(Code(g.Text(value))))
}
