// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"sync"
	"testing"
	"time"

	"codeberg.org/mikyai/website/config"
)

// testStateMu serializes tests, which all share the package's buckets,
// its clock and config.Global.
var testStateMu sync.Mutex

// fakeClock replaces timeNow in tests. It only moves when told to.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

// Sleep advances the clock by d.
func (c *fakeClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

// setupLimiterTest takes the package test lock for the rest of t, installs a
// fake clock and a small limiter configuration:
//
//	networks     /24 and /64
//	pass list    127.0.0.1
//	block list   10.0.0.1
//	contact      6 per minute, burst 2
//
// Everything is restored when t ends. Call it once per top-level test; the
// lock is not reentrant.
func setupLimiterTest(t *testing.T) *fakeClock {
	t.Helper()

	testStateMu.Lock()

	saved, savedNow, savedSweep := config.Global, timeNow, lastSweep
	clock := &fakeClock{now: time.Now()}

	lim := &config.Global.Limiter
	lim.Enabled = true
	lim.IPv4Prefix = 24
	lim.IPv6Prefix = 64
	lim.PassIPs = []string{"127.0.0.1"}
	lim.BlockIPs = []string{"10.0.0.1"}
	config.Global.Contact.RatePerMinute = 6
	config.Global.Contact.Burst = 2

	timeNow = clock.Now
	buckets = sync.Map{}

	t.Cleanup(func() {
		buckets = sync.Map{}
		timeNow = savedNow
		lastSweep = savedSweep
		config.Global = saved

		testStateMu.Unlock()
	})

	return clock
}
