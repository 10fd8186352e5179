// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package referral holds the subscription plans, their five-level commission
// split and the earnings calculator shown on the pricing and how-it-works pages.
//
// Amounts are in US cents.
package referral

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Level is one tier of the commission split.
type Level struct {
	Level   int
	Cents   int
	Percent int
}

// Plan is a subscription plan.
type Plan struct {
	// Key names the plan in the message catalog (pricing.plans.<Key>).
	Key        string
	PriceCents int
	Popular    bool
	Levels     []Level
}

// TotalCents is the sum paid out across all levels.
func (p Plan) TotalCents() int {
	total := 0
	for _, l := range p.Levels {
		total += l.Cents
	}

	return total
}

var (
	Plus = Plan{
		Key:        "plus",
		PriceCents: 500,
		Levels: []Level{
			{Level: 1, Cents: 200, Percent: 40},
			{Level: 2, Cents: 150, Percent: 30},
			{Level: 3, Cents: 80, Percent: 16},
			{Level: 4, Cents: 50, Percent: 10},
			{Level: 5, Cents: 20, Percent: 4},
		},
	}

	Pro = Plan{
		Key:        "pro",
		PriceCents: 1500,
		Popular:    true,
		Levels: []Level{
			{Level: 1, Cents: 600, Percent: 40},
			{Level: 2, Cents: 405, Percent: 27},
			{Level: 3, Cents: 240, Percent: 16},
			{Level: 4, Cents: 135, Percent: 9},
			{Level: 5, Cents: 120, Percent: 8},
		},
	}
)

// Plans returns the plans in display order.
func Plans() []Plan {
	return []Plan{Plus, Pro}
}

// Calculator bounds.
const (
	MinSubscribers     = 100
	MaxSubscribers     = 10000
	SubscriberStep     = 100
	DefaultSubscribers = 1000

	// EarningsPerSubscriberCents is the blended monthly commission per network member.
	EarningsPerSubscriberCents = 458
)

// ClampSubscribers parses the calculator input. Anything unparsable gives
// DefaultSubscribers; numbers are clamped to the slider range and snapped to
// the nearest step.
func ClampSubscribers(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultSubscribers
	}

	n = max(MinSubscribers, min(MaxSubscribers, n))

	return (n + SubscriberStep/2) / SubscriberStep * SubscriberStep
}

// EarningsCents is the estimated monthly earnings for a network of n members.
func EarningsCents(n int) int {
	return n * EarningsPerSubscriberCents
}

// SliderPosition is where n sits on the slider, from 0 to 100.
func SliderPosition(n int) float64 {
	return float64(n-MinSubscribers) / float64(MaxSubscribers-MinSubscribers) * 100
}

// FormatAmount formats cents as a number of dollars with the grouping rules
// of tag. Whole amounts drop the decimals, e.g. "5" and "4.05".
func FormatAmount(tag language.Tag, cents int) string {
	p := message.NewPrinter(tag)

	if cents%100 == 0 {
		return p.Sprintf("%d", cents/100)
	}

	return p.Sprintf("%.2f", float64(cents)/100)
}

// FormatUSD is FormatAmount with a leading dollar sign.
func FormatUSD(tag language.Tag, cents int) string {
	return "$" + FormatAmount(tag, cents)
}

// FormatCount formats n with the grouping rules of tag.
func FormatCount(tag language.Tag, n int) string {
	return message.NewPrinter(tag).Sprintf("%d", n)
}
