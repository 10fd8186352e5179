// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package fragments

import (
	"context"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint:revive

	"codeberg.org/mikyai/website/i18n"
	"codeberg.org/mikyai/website/server/template/commondata"
)

// PageConfig describes the document around a page's content.
type PageConfig struct {
	// Title is prepended to the site name. Empty means the site name alone.
	Title string
	// Description overrides meta.description.
	Description string
	// NoIndex keeps the page out of search engines.
	NoIndex bool
}

// Layout wraps content in the HTML document, site header and footer.
//
// Canonical and hreflang links are emitted for pages inside the locale
// convention.
func Layout(ctx context.Context, cfg PageConfig, content ...g.Node) g.Node {
	cd := CommonData(ctx)

	title := cd.SiteName
	if cfg.Title != "" {
		title = cfg.Title + " | " + cd.SiteName
	}

	description := cfg.Description
	if description == "" {
		description = StringOf(ctx, "meta.description")
	}

	return Doctype(
		HTML(
			Lang(cd.Locale.String()),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(title)),
				Meta(Name("description"), Content(description)),
				g.If(cfg.NoIndex, Meta(Name("robots"), Content("noindex"))),
				Meta(Name("theme-color"), Content("#0891b2")),

				Meta(g.Attr("property", "og:title"), Content(title)),
				Meta(g.Attr("property", "og:description"), Content(description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:locale"), Content(cd.Locale.String())),

				g.If(cd.Canonical != "", Link(Rel("canonical"), Href(cd.Canonical))),
				g.Group(g.Map(cd.Alternates, func(a commondata.Alternate) g.Node {
					return Link(Rel("alternate"), g.Attr("hreflang", a.Locale.String()), Href(a.Href))
				})),
				g.If(len(cd.Alternates) > 0, Link(Rel("alternate"), g.Attr("hreflang", "x-default"),
					Href(cd.BaseURL+i18n.DefaultLocale.Path(cd.PagePath)))),

				Link(Rel("icon"), Href("/img/favicon.svg"), Type("image/svg+xml")),
				Link(Rel("manifest"), Href("/manifest.json")),
				Link(Rel("stylesheet"), Href("/css/site.css")),
				Script(Src("/js/site.js"), Defer()),
			),
			Body(
				A(Class("sr-only"), Href("#main"), g.Text(i18n.Tr(ctx, "Skip to content"))),
				SiteHeader(ctx),
				Main(ID("main"), g.Group(content)),
				SiteFooter(ctx),
			),
		),
	)
}
