// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint:revive

	f "codeberg.org/mikyai/website/assets/components/fragments"
	"codeberg.org/mikyai/website/core/referral"
	"codeberg.org/mikyai/website/i18n"
)

// planHeadings names the commission tables.
var planHeadings = map[string]i18n.Key{
	referral.Plus.Key: "howItWorks.referralProgram.plusPlan",
	referral.Pro.Key:  "howItWorks.referralProgram.proPlan",
}

// commissionTables renders the five-level split of every plan.
func commissionTables(ctx context.Context) g.Node {
	tag := i18n.TagFrom(ctx)

	return Div(Class("plans"),
		g.Group(g.Map(referral.Plans(), func(p referral.Plan) g.Node {
			return Div(Class("card"), Data("plan", p.Key),
				H3(f.TextOf(ctx, planHeadings[p.Key])),
				P(Class("muted"), f.TextOf(ctx, "howItWorks.referralProgram.commissionStructure")),
				Table(Class("levels"),
					TBody(
						g.Group(g.Map(p.Levels, func(l referral.Level) g.Node {
							return Tr(
								Th(g.Attr("scope", "row"), f.TextOf(ctx, "howItWorks.referralProgram.level", "Level", l.Level)),
								Td(Class("num"), g.Text(referral.FormatUSD(tag, l.Cents))),
								Td(Class("num"), g.Textf("%d%%", l.Percent)),
							)
						})),
					),
				),
				P(Class("muted"), f.TextOf(ctx, "howItWorks.referralProgram.perSubscriber")),
				P(Strong(f.TextOf(ctx, "howItWorks.referralProgram.total",
					"Amount", referral.FormatAmount(tag, p.TotalCents())))),
			)
		})),
	)
}

// referralSteps explains the program in three steps.
func referralSteps(ctx context.Context) g.Node {
	steps := []i18n.Key{
		"howItWorks.referralProgram.howItWorks.step1",
		"howItWorks.referralProgram.howItWorks.step2",
		"howItWorks.referralProgram.howItWorks.step3",
	}
	icons := []string{"gift", "users", "trending-up"}

	cards := make([]g.Node, 0, len(steps))
	for i, k := range steps {
		cards = append(cards, Div(Class("card"),
			f.Icon(icons[i], "icon-lg"),
			H3(f.TextOf(ctx, k.Sub("title"))),
			P(f.TextOf(ctx, k.Sub("description"))),
		))
	}

	return Div(
		H3(f.TextOf(ctx, "howItWorks.referralProgram.howItWorks.title")),
		Div(Class("grid"), g.Group(cards)),
		H3(f.TextOf(ctx, "howItWorks.referralProgram.examples.title")),
		Ul(
			Li(f.TextOf(ctx, "howItWorks.referralProgram.examples.example1")),
			Li(f.TextOf(ctx, "howItWorks.referralProgram.examples.example2")),
			Li(f.TextOf(ctx, "howItWorks.referralProgram.examples.example3")),
		),
	)
}

// earningsCalculator is a GET form that works without scripting; site.js
// updates the figures as the slider moves.
func earningsCalculator(ctx context.Context, action string, subscribers int) g.Node {
	tag := i18n.TagFrom(ctx)
	n := referral.ClampSubscribers(strconv.Itoa(subscribers))

	return Section(ID("calculator"), Class("calculator"),
		Div(Class("narrow card"),
			H2(f.TextOf(ctx, "howItWorks.referralProgram.calculator.title")),
			Form(Method("get"), Action(action+"#calculator"),
				Data("calculator", ""), Data("per-member", strconv.Itoa(referral.EarningsPerSubscriberCents)),
				Label(For("subscribers"), f.TextOf(ctx, "howItWorks.referralProgram.calculator.networkSize")),
				Input(ID("subscribers"), Name("subscribers"), Type("range"),
					Min(strconv.Itoa(referral.MinSubscribers)),
					Max(strconv.Itoa(referral.MaxSubscribers)),
					Step(strconv.Itoa(referral.SubscriberStep)),
					Value(strconv.Itoa(n)),
				),
				Div(Class("scale"),
					Span(g.Text(referral.FormatCount(tag, referral.MinSubscribers))),
					Span(g.Text(referral.FormatCount(tag, referral.MaxSubscribers))),
				),
				g.El("progress", Data("position", ""), Max("100"),
					Value(fmt.Sprintf("%.0f", referral.SliderPosition(n))),
					Aria("hidden", "true"),
				),
				P(Data("count", f.StringOf(ctx, "howItWorks.referralProgram.calculator.members", "Count", "{count}")),
					f.TextOf(ctx, "howItWorks.referralProgram.calculator.members",
						"Count", referral.FormatCount(tag, n)),
				),
				P(Class("muted"), f.TextOf(ctx, "howItWorks.referralProgram.calculator.estimatedEarnings")),
				g.El("output", For("subscribers"), Data("earnings", ""),
					g.Text(referral.FormatUSD(tag, referral.EarningsCents(n))),
				),
				P(Class("muted"), f.TextOf(ctx, "howItWorks.referralProgram.calculator.assumption",
					"Rate", referral.FormatAmount(tag, referral.EarningsPerSubscriberCents))),
				Button(Class("btn btn-primary"), Type("submit"),
					f.TextOf(ctx, "howItWorks.referralProgram.calculator.update")),
			),
		),
	)
}
