// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package referral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestPlansAddUp(t *testing.T) {
	t.Parallel()

	for _, p := range Plans() {
		percent := 0
		for _, l := range p.Levels {
			percent += l.Percent
		}

		assert.Equal(t, 100, percent, p.Key)
		assert.Equal(t, p.PriceCents, p.TotalCents(), p.Key)
		assert.Len(t, p.Levels, 5, p.Key)
	}
}

func TestClampSubscribers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want int
	}{
		{"", DefaultSubscribers},
		{"lots", DefaultSubscribers},
		{"1000", 1000},
		{"0", MinSubscribers},
		{"-5", MinSubscribers},
		{"250", 300},
		{"249", 200},
		{"99999", MaxSubscribers},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampSubscribers(tt.raw), "input %q", tt.raw)
	}
}

func TestEarnings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 458000, EarningsCents(1000))
	assert.Equal(t, 45800, EarningsCents(MinSubscribers))
}

func TestSliderPosition(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0, SliderPosition(MinSubscribers), 0.001)
	assert.InDelta(t, 100, SliderPosition(MaxSubscribers), 0.001)
	assert.InDelta(t, 9.0909, SliderPosition(1000), 0.001)
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$5", FormatUSD(language.English, 500))
	assert.Equal(t, "$4.05", FormatUSD(language.English, 405))
	assert.Equal(t, "$4,580", FormatUSD(language.English, 458000))
	assert.Equal(t, "10,000", FormatCount(language.English, 10000))
	assert.Equal(t, "4.58", FormatAmount(language.English, EarningsPerSubscriberCents))
	assert.Equal(t, "4,58", FormatAmount(language.Italian, EarningsPerSubscriberCents))
	assert.Equal(t, "$458.000", FormatUSD(language.Spanish, 45800000))
}
