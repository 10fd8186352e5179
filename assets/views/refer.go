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

type ReferData struct {
	Subscribers int
	SignUpURL   string
}

// ReferPage is the referral program on its own.
func ReferPage(data ReferData) templ.Component {
	return f.Component(func(ctx context.Context) g.Node {
		cd := f.CommonData(ctx)

		return f.Layout(ctx, f.PageConfig{
			Title:       f.StringOf(ctx, "refer.title"),
			Description: f.StringOf(ctx, "refer.subtitle"),
		},
			Section(Class("hero"),
				Div(Class("container"),
					H1(Class("gradient-text"), f.TextOf(ctx, "refer.title")),
					P(f.TextOf(ctx, "refer.subtitle")),
					Div(Class("actions"),
						A(Class("btn btn-primary"), Href(data.SignUpURL),
							f.Icon("gift"), f.TextOf(ctx, "howItWorks.cta.getStarted")),
					),
				),
			),
			Section(
				Div(Class("container"),
					sectionHeading(ctx, hiw.Sub("referralProgram")),
					referralSteps(ctx),
					commissionTables(ctx),
				),
			),
			earningsCalculator(ctx, cd.Path("/refer"), data.Subscribers),
		)
	})
}
