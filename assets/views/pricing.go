// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"net/url"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint:revive

	f "codeberg.org/mikyai/website/assets/components/fragments"
	"codeberg.org/mikyai/website/core/referral"
	"codeberg.org/mikyai/website/i18n"
)

type PricingData struct {
	SignUpURL string
}

// PricingPage lists the plans followed by their commission split.
func PricingPage(data PricingData) templ.Component {
	return f.Component(func(ctx context.Context) g.Node {
		return f.Layout(ctx, f.PageConfig{
			Title:       f.StringOf(ctx, "pricing.title"),
			Description: f.StringOf(ctx, "pricing.subtitle"),
		},
			Section(Class("hero"),
				Div(Class("container"),
					H1(f.TextOf(ctx, "pricing.title")),
					P(f.TextOf(ctx, "pricing.subtitle")),
				),
			),
			Section(
				Div(Class("container"),
					Div(Class("plans"),
						g.Group(g.Map(referral.Plans(), func(p referral.Plan) g.Node {
							return planCard(ctx, p, data.SignUpURL)
						})),
					),
					P(Class("center muted"), f.TextOf(ctx, "pricing.referralNote")),
					commissionTables(ctx),
				),
			),
		)
	})
}

func planCard(ctx context.Context, p referral.Plan, signUpURL string) g.Node {
	k := i18n.Key("pricing.plans").Sub(p.Key)
	name := f.StringOf(ctx, k.Sub("name"))

	card, btn := "card plan", "btn btn-block"
	if p.Popular {
		card += " popular"
		btn += " btn-primary"
	}

	return Div(Class(card), Data("plan", p.Key),
		g.If(p.Popular, Span(Class("badge"), f.TextOf(ctx, "pricing.mostPopular"))),
		H2(g.Text(name)),
		P(Class("muted"), f.TextOf(ctx, k.Sub("description"))),
		P(Class("price"),
			g.Text(referral.FormatUSD(i18n.TagFrom(ctx), p.PriceCents)), g.Text(" "),
			Small(f.TextOf(ctx, "pricing.perMonth")),
		),
		bullets(ctx, k.Sub("features"), "check"),
		A(Class(btn), Href(withPlan(signUpURL, p.Key)),
			f.TextOf(ctx, "pricing.choose", "Plan", name)),
	)
}

// withPlan adds the plan query parameter to the sign-up URL.
func withPlan(signUpURL, plan string) string {
	u, err := url.Parse(signUpURL)
	if err != nil {
		return signUpURL
	}

	q := u.Query()
	q.Set("plan", plan)
	u.RawQuery = q.Encode()

	return u.String()
}
