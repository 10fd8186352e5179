// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testProfile = Profile{Name: "test", PerMinute: 60, Burst: 3}

func TestBucketTake(t *testing.T) {
	clock := setupLimiterTest(t)

	b := bucketFor("192.168.0.0/24", testProfile)

	for i := range testProfile.Burst {
		assert.True(t, b.take(), "request %d", i+1)
	}

	assert.False(t, b.take())
	assert.Equal(t, quota{limit: 3, remaining: 0, reset: 3}, b.quota())

	// One token per second.
	clock.Sleep(time.Second)
	assert.True(t, b.take())
	assert.False(t, b.take())
}

func TestBucketFor(t *testing.T) {
	setupLimiterTest(t)

	first := bucketFor("192.168.0.0/24", testProfile)
	require.NotNil(t, first)
	assert.Equal(t, "192.168.0.0/24:test", first.key)
	assert.Equal(t, 3, first.tokens.Burst())
	assert.InDelta(t, 1.0, float64(first.tokens.Limit()), 1e-9)
	assert.Equal(t, quota{limit: 3, remaining: 3}, first.quota())

	assert.Same(t, first, bucketFor("192.168.0.0/24", testProfile))

	// Profiles and networks get separate buckets.
	assert.NotSame(t, first, bucketFor("192.168.0.0/24", Login))
	assert.NotSame(t, first, bucketFor("192.168.1.0/24", testProfile))
}

func TestLookupMarksSeen(t *testing.T) {
	clock := setupLimiterTest(t)

	b := bucketFor("192.168.0.0/24", testProfile)
	created := b.lastSeen

	clock.Sleep(time.Minute)

	found, ok := lookup(b.key)
	require.True(t, ok)
	assert.True(t, found.lastSeen.After(created))

	_, ok = lookup("missing")
	assert.False(t, ok)
}

func TestSweep(t *testing.T) {
	clock := setupLimiterTest(t)

	stale := bucketFor("192.168.0.0/24", testProfile)

	clock.Sleep(bucketTTL / 2)

	fresh := bucketFor("192.168.1.0/24", testProfile)

	clock.Sleep(bucketTTL/2 + time.Second)

	assert.Equal(t, 1, sweep(timeNow()))

	_, found := buckets.Load(stale.key)
	assert.False(t, found, "idle bucket should be dropped")

	_, found = buckets.Load(fresh.key)
	assert.True(t, found, "recent bucket should stay")
}

func TestMaybeSweepArmsFirst(t *testing.T) {
	clock := setupLimiterTest(t)

	lastSweep = time.Time{}

	maybeSweep()
	armed := lastSweep
	assert.Equal(t, timeNow(), armed)

	clock.Sleep(sweepInterval / 2)
	maybeSweep()
	assert.Equal(t, armed, lastSweep, "too early for another sweep")
}

func TestSaveAndLoadState(t *testing.T) {
	setupLimiterTest(t)

	b := bucketFor("192.168.0.0/24", testProfile)
	for range testProfile.Burst {
		require.True(t, b.take())
	}

	var buf bytes.Buffer

	require.NoError(t, SaveState(&buf))
	assert.Contains(t, buf.String(), `"key": "192.168.0.0/24:test"`)

	buckets.Delete(b.key)
	require.NoError(t, LoadState(&buf))

	restored, found := lookup(b.key)
	require.True(t, found)
	assert.Equal(t, testProfile.Burst, restored.tokens.Burst())
	assert.False(t, restored.take(), "a drained bucket stays drained after a restart")
}

func TestLoadStateEdgeCases(t *testing.T) {
	setupLimiterTest(t)

	bucketFor("192.168.0.0/24", testProfile)

	require.NoError(t, LoadState(strings.NewReader("")))

	_, found := buckets.Load("192.168.0.0/24:test")
	assert.True(t, found, "an empty state file leaves memory untouched")

	require.Error(t, LoadState(strings.NewReader("{not json")))
}
