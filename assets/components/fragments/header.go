// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package fragments

import (
	"context"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint:revive

	"codeberg.org/mikyai/website/i18n"
	"codeberg.org/mikyai/website/server/template"
	"codeberg.org/mikyai/website/server/template/commondata"
)

type navItem struct {
	path  string
	label i18n.Key
}

var navItems = []navItem{
	{path: "/how-it-works", label: "nav.howItWorks"},
	{path: "/pricing", label: "nav.pricing"},
	{path: "/chat", label: "nav.chat"},
}

// SiteHeader renders the logo, the main navigation and the language switcher.
func SiteHeader(ctx context.Context) g.Node {
	cd := CommonData(ctx)

	return Header(Class("site-header"),
		Div(Class("container"),
			A(Class("brand"), Href(cd.Path("/")),
				Img(Src("/img/logo.svg"), Alt(cd.SiteName), Width("144"), Height("32")),
			),
			Nav(ID("main-nav"), Class("nav"), Aria("label", i18n.Tr(ctx, "Main navigation")),
				g.Group(g.Map(navItems, func(item navItem) g.Node {
					return A(Href(cd.Path(item.path)),
						g.If(template.IsCurrentSection(cd.CurrentPath, item.path), Aria("current", "page")),
						TextOf(ctx, item.label),
					)
				})),
			),
			Div(Class("header-actions"),
				localeSwitcher(ctx, cd),
				Button(Class("menu-toggle"), Type("button"),
					Data("menu-toggle", ""), Aria("controls", "main-nav"), Aria("expanded", "false"),
					Aria("label", i18n.Tr(ctx, "Open menu")),
					Icon("menu"),
				),
			),
		),
	)
}

// localeSwitcher links to the current page in every locale. The links carry
// an explicit locale segment, so following one stores the choice.
//
// Pages outside the locale convention link to each locale's home page.
func localeSwitcher(ctx context.Context, cd commondata.PageCommonData) g.Node {
	alternates := cd.Alternates
	if len(alternates) == 0 {
		for _, l := range i18n.Locales() {
			alternates = append(alternates, commondata.Alternate{Locale: l, SwitchPath: l.ExplicitPath("/")})
		}
	}

	return Details(Class("lang-switch"),
		Summary(Aria("label", i18n.Tr(ctx, "Choose language")),
			Icon("globe"),
			Span(g.Text(cd.Locale.Name())),
		),
		Ul(
			g.Group(g.Map(alternates, func(a commondata.Alternate) g.Node {
				return Li(
					A(Href(a.SwitchPath), Lang(a.Locale.String()), g.Attr("hreflang", a.Locale.String()),
						g.If(a.Locale == cd.Locale, Aria("current", "true")),
						g.Text(a.Locale.Name()),
					),
				)
			})),
		),
	)
}
