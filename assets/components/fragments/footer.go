// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package fragments

import (
	"context"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint:revive

	"codeberg.org/mikyai/website/core/contact"
	"codeberg.org/mikyai/website/i18n"
	"codeberg.org/mikyai/website/server/template"
	"codeberg.org/mikyai/website/server/template/commondata"
)

// Dialog element IDs, also used by the footer links that open them.
const (
	ContactDialogID = "contact-dialog"
	AdminDialogID   = "admin-dialog"
)

type socialLink struct {
	href  string
	icon  string
	label i18n.Key
}

var socialLinks = []socialLink{
	{href: "https://instagram.com/miky.ai", icon: "instagram", label: "footer.instagram"},
	{href: "https://twitter.com/mikyai", icon: "twitter", label: "footer.twitter"},
	{href: "https://tiktok.com/@miky.ai", icon: "tiktok", label: "footer.tiktok"},
}

// SiteFooter renders the footer with its link columns and the contact and
// admin modals.
//
// The modal links point at standalone pages and are upgraded to open the
// dialogs by site.js. "?modal=contact" opens the contact dialog without
// scripting.
func SiteFooter(ctx context.Context) g.Node {
	cd := CommonData(ctx)

	onContactPage := template.IsCurrentSection(cd.CurrentPath, "/contact")

	return Footer(Class("site-footer"),
		Div(Class("container"),
			Div(Class("columns"),
				Div(
					Img(Src("/img/logo.svg"), Alt(cd.SiteName), Width("144"), Height("32")),
					P(TextOf(ctx, "footer.tagline")),
				),
				Div(
					H4(TextOf(ctx, "footer.usefulLinks")),
					Ul(
						Li(A(Href(cd.Path("/contact")), g.If(!onContactPage, Data("dialog", ContactDialogID)),
							TextOf(ctx, "footer.contact"))),
						Li(A(Href(cd.Path("/pricing")), TextOf(ctx, "footer.pricing"))),
						g.If(cd.AdminEnabled,
							Li(A(Href("/admin"), Data("dialog", AdminDialogID), TextOf(ctx, "footer.admin"))),
						),
					),
				),
				Div(
					H4(TextOf(ctx, "footer.social")),
					Ul(
						g.Group(g.Map(socialLinks, func(s socialLink) g.Node {
							return Li(A(Href(s.href), Target("_blank"), Rel("noopener noreferrer"),
								Icon(s.icon),
								Span(TextOf(ctx, s.label)),
							))
						})),
					),
				),
				Div(
					H4(TextOf(ctx, "footer.legal")),
					Ul(
						Li(A(Href(cd.Path("/legal/terms")), TextOf(ctx, "footer.termsOfService"))),
						Li(A(Href(cd.Path("/legal/privacy")), TextOf(ctx, "footer.privacyPolicy"))),
						Li(A(Href(cd.Path("/legal/cookie")), TextOf(ctx, "footer.cookiePolicy"))),
					),
				),
			),
			Div(Class("copyright"),
				P(TextOf(ctx, "footer.copyright", "Year", cd.Year)),
				P(TextOf(ctx, "footer.poweredBy")),
			),
		),
		g.If(!onContactPage, contactDialog(ctx, cd)),
		g.If(cd.AdminEnabled, adminDialog(ctx, cd)),
	)
}

func contactDialog(ctx context.Context, cd commondata.PageCommonData) g.Node {
	return Dialog(ID(ContactDialogID), Aria("labelledby", ContactDialogID+"-title"),
		g.If(cd.Queries["modal"] == "contact", g.Attr("open")),
		closeButton(ctx),
		H2(ID(ContactDialogID+"-title"), TextOf(ctx, "contact.title")),
		P(Class("muted"), TextOf(ctx, "contact.subtitle")),
		ContactForm(ctx, ContactFormConfig{LocalePrefix: cd.LocalePrefix}, contact.Form{}),
	)
}

func adminDialog(ctx context.Context, cd commondata.PageCommonData) g.Node {
	return Dialog(ID(AdminDialogID), Aria("labelledby", AdminDialogID+"-title"),
		g.If(cd.Queries["modal"] == "admin", g.Attr("open")),
		closeButton(ctx),
		H2(ID(AdminDialogID+"-title"), TextOf(ctx, "admin.title")),
		P(Class("muted"), TextOf(ctx, "admin.subtitle")),
		AdminGate(ctx, AdminGateConfig{NewWindow: true, Cancel: true}),
	)
}

func closeButton(ctx context.Context) g.Node {
	return Button(Class("close"), Type("button"), Data("dialog-close", ""),
		Aria("label", StringOf(ctx, "contact.close")),
		Icon("x"),
	)
}
