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

// HowItWorksData is what the how-it-works page needs from its handler.
type HowItWorksData struct {
	// Subscribers is the calculator position, already clamped.
	Subscribers int
	SignInURL   string
	SignUpURL   string
}

const hiw i18n.Key = "howItWorks"

var (
	serviceIcons  = []string{"message", "zap", "bot"}
	capabilityIDs = []string{"academic", "business", "development", "legal"}
	impactIcons   = []string{"droplets", "heart", "trending-up"}
)

// HowItWorksPage explains the product, the ocean commitment and the
// referral program, and hosts the earnings calculator.
func HowItWorksPage(data HowItWorksData) templ.Component {
	return f.Component(func(ctx context.Context) g.Node {
		cd := f.CommonData(ctx)

		return f.Layout(ctx, f.PageConfig{
			Title:       f.StringOf(ctx, "nav.howItWorks"),
			Description: f.StringOf(ctx, "howItWorks.subtitle"),
		},
			Section(Class("hero"),
				Div(Class("container"),
					backLink(ctx, "howItWorks.back"),
					H1(
						f.TextOf(ctx, "howItWorks.title"), g.Text(" "),
						Span(Class("gradient-text"), f.TextOf(ctx, "howItWorks.titleHighlight")), g.Text(" "),
						f.TextOf(ctx, "howItWorks.titleEnd"),
					),
					P(f.TextOf(ctx, "howItWorks.subtitle")),
				),
			),
			aiServices(ctx),
			oceanImpact(ctx),
			Section(ID("referral"),
				Div(Class("container"),
					sectionHeading(ctx, hiw.Sub("referralProgram")),
					commissionTables(ctx),
					referralSteps(ctx),
				),
			),
			earningsCalculator(ctx, cd.Path("/how-it-works"), data.Subscribers),
			faq(ctx),
			Section(Class("center"),
				Div(Class("narrow"),
					H2(f.TextOf(ctx, "howItWorks.cta.title")),
					P(Class("muted"), f.TextOf(ctx, "howItWorks.cta.subtitle")),
					Div(Class("actions"),
						A(Class("btn btn-primary"), Href(data.SignUpURL), f.TextOf(ctx, "howItWorks.cta.getStarted")),
						A(Class("btn"), Href(data.SignInURL), f.TextOf(ctx, "howItWorks.cta.signIn")),
					),
				),
			),
		)
	})
}

// sectionHeading renders the title and subtitle found under k.
func sectionHeading(ctx context.Context, k i18n.Key) g.Node {
	return Div(Class("center"),
		H2(f.TextOf(ctx, k.Sub("title"))),
		P(Class("muted"), f.TextOf(ctx, k.Sub("subtitle"))),
	)
}

func aiServices(ctx context.Context) g.Node {
	k := hiw.Sub("aiServices")

	services := make([]g.Node, 0, len(serviceIcons))
	for i, icon := range serviceIcons {
		s := k.Sub("service" + string(rune('1'+i)))
		services = append(services, Div(Class("card"),
			f.Icon(icon, "icon-lg"),
			H3(f.TextOf(ctx, s.Sub("title"))),
			P(f.TextOf(ctx, s.Sub("description"))),
			bullets(ctx, s.Sub("examples"), "check"),
		))
	}

	capabilities := make([]g.Node, 0, len(capabilityIDs))
	for _, id := range capabilityIDs {
		c := k.Sub("capabilities").Sub(id)
		capabilities = append(capabilities, Div(Class("card"),
			H3(f.TextOf(ctx, c.Sub("title"))),
			P(Class("muted"), f.TextOf(ctx, c.Sub("description"))),
		))
	}

	return Section(ID("services"),
		Div(Class("container"),
			sectionHeading(ctx, k),
			Div(Class("grid"), g.Group(services)),
			H3(Class("center"), f.TextOf(ctx, k.Sub("capabilities").Sub("title"))),
			Div(Class("grid"), g.Group(capabilities)),
		),
	)
}

func oceanImpact(ctx context.Context) g.Node {
	k := hiw.Sub("oceanImpact")

	stats := make([]g.Node, 0, len(impactIcons))
	for i, icon := range impactIcons {
		s := k.Sub("impact" + string(rune('1'+i)))
		stats = append(stats, Div(Class("card center"),
			f.Icon(icon, "icon-lg"),
			P(Class("stat gradient-text"), f.TextOf(ctx, s.Sub("stat"))),
			H3(f.TextOf(ctx, s.Sub("title"))),
			P(Class("muted"), f.TextOf(ctx, s.Sub("description"))),
		))
	}

	personal := k.Sub("individualImpact")

	rows := make([]g.Node, 0, 3)
	for i := range 3 {
		e := personal.Sub("example" + string(rune('1'+i)))
		rows = append(rows, Tr(
			Th(g.Attr("scope", "row"), f.TextOf(ctx, e.Sub("messages"))),
			Td(f.TextOf(ctx, e.Sub("cleaned"))),
			Td(Class("muted"), f.TextOf(ctx, e.Sub("equivalent"))),
		))
	}

	return Section(ID("ocean"),
		Div(Class("container"),
			sectionHeading(ctx, k),
			Div(Class("grid"), g.Group(stats)),
			Div(Class("narrow card"),
				H3(f.TextOf(ctx, personal.Sub("title"))),
				Table(Class("levels"), TBody(g.Group(rows))),
				P(
					f.TextOf(ctx, personal.Sub("community")), g.Text(" "),
					Strong(Class("gradient-text"), f.TextOf(ctx, personal.Sub("communityAmount"))), g.Text(" "),
					f.TextOf(ctx, personal.Sub("communityEnd")),
				),
			),
		),
	)
}

func faq(ctx context.Context) g.Node {
	k := hiw.Sub("faq")

	return Section(ID("faq"),
		Div(Class("narrow"),
			sectionHeading(ctx, k),
			g.Group(indexed(ctx, k.Sub("questions"), func(q i18n.Key, _ int) g.Node {
				return Details(Class("card"),
					Summary(f.TextOf(ctx, q.Sub("question"))),
					P(f.TextOf(ctx, q.Sub("answer"))),
				)
			})),
		),
	)
}
