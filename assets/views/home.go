// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint:revive

	f "codeberg.org/mikyai/website/assets/components/fragments"
	"codeberg.org/mikyai/website/i18n"
)

// featureIcons pairs with home.features by index.
var featureIcons = []string{"bot", "trending-up", "droplets"}

// HomePage renders the landing page.
func HomePage() templ.Component {
	return f.Component(func(ctx context.Context) g.Node {
		cd := f.CommonData(ctx)

		return f.Layout(ctx, f.PageConfig{},
			Section(Class("hero"),
				Div(Class("container"),
					H1(
						f.TextOf(ctx, "home.hero.title"), g.Text(" "),
						Span(Class("gradient-text"), f.TextOf(ctx, "home.hero.highlight")), g.Text(" "),
						f.TextOf(ctx, "home.hero.titleEnd"),
					),
					P(f.TextOf(ctx, "home.hero.subtitle")),
					Div(Class("actions"),
						A(Class("btn btn-primary"), Href(cd.Path("/chat")),
							f.Icon("message"), f.TextOf(ctx, "home.hero.ctaPrimary")),
						A(Class("btn"), Href(cd.Path("/how-it-works")), f.TextOf(ctx, "home.hero.ctaSecondary")),
					),
				),
			),
			Section(
				Div(Class("container grid"),
					g.Group(indexed(ctx, "home.features", func(k i18n.Key, i int) g.Node {
						return Div(Class("card"),
							f.Icon(pick(featureIcons, i), "icon-lg"),
							H3(f.TextOf(ctx, k.Sub("title"))),
							P(f.TextOf(ctx, k.Sub("description"))),
						)
					})),
				),
			),
			Section(Class("center"),
				Div(Class("narrow"),
					H2(f.TextOf(ctx, "home.impact.title")),
					P(Class("muted"), f.TextOf(ctx, "home.impact.content")),
					Div(Class("actions"),
						A(Class("btn btn-primary"), Href(cd.Path("/pricing")), f.TextOf(ctx, "nav.pricing")),
					),
				),
			),
		)
	})
}
