// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	bucketTTL     = time.Hour        // idle buckets older than this are swept
	sweepInterval = 5 * time.Minute // minimum time between two sweeps
)

var (
	buckets sync.Map // bucket key -> *bucket
	timeNow = time.Now

	sweepMu   sync.Mutex
	lastSweep time.Time
)

// bucket is the token bucket of one client network under one profile.
type bucket struct {
	mu       sync.Mutex
	key      string
	tokens   *rate.Limiter
	lastSeen time.Time
}

func newBucket(key string, perSecond float64, burst int) *bucket {
	return &bucket{
		key:      key,
		tokens:   rate.NewLimiter(rate.Limit(perSecond), burst),
		lastSeen: timeNow(),
	}
}

func bucketKey(network string, p Profile) string {
	return network + ":" + p.Name
}

// bucketFor returns the bucket of network under p, creating a full one on
// first use.
func bucketFor(network string, p Profile) *bucket {
	key := bucketKey(network, p)

	if b, ok := lookup(key); ok {
		return b
	}

	actual, _ := buckets.LoadOrStore(key, newBucket(key, p.rate(), p.Burst))

	return actual.(*bucket)
}

// lookup returns the stored bucket for key and marks it as seen.
func lookup(key string) (*bucket, bool) {
	v, ok := buckets.Load(key)
	if !ok {
		return nil, false
	}

	b := v.(*bucket)

	b.mu.Lock()
	b.lastSeen = timeNow()
	b.mu.Unlock()

	return b, true
}

// take spends one token. It reports false when the bucket is empty.
func (b *bucket) take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := timeNow()
	b.lastSeen = now

	return b.tokens.AllowN(now, 1)
}

// quota is what the RateLimit-* headers report about a bucket.
type quota struct {
	limit     int
	remaining int
	reset     int64 // seconds until the bucket is full
}

func (b *bucket) quota() quota {
	b.mu.Lock()
	defer b.mu.Unlock()

	left := b.tokens.TokensAt(timeNow())
	burst := b.tokens.Burst()

	q := quota{
		limit:     burst,
		remaining: max(int(math.Min(float64(burst), left)), 0),
	}

	if perSecond := float64(b.tokens.Limit()); left < float64(burst) && perSecond > 0 {
		q.reset = int64(math.Ceil((float64(burst) - left) / perSecond))
	}

	return q
}

func (b *bucket) idle(now time.Time) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()

	return now.Sub(b.lastSeen)
}

// sweep drops every bucket idle for longer than bucketTTL and returns how
// many were dropped.
func sweep(now time.Time) int {
	var expired []any

	buckets.Range(func(key, value any) bool {
		if b, ok := value.(*bucket); !ok || b.idle(now) > bucketTTL {
			expired = append(expired, key)
		}

		return true
	})

	for _, key := range expired {
		buckets.Delete(key)
	}

	return len(expired)
}

// maybeSweep starts a background sweep when the last one is older than
// sweepInterval. The first call only arms the timer.
func maybeSweep() {
	sweepMu.Lock()
	defer sweepMu.Unlock()

	now := timeNow()

	switch {
	case lastSweep.IsZero():
		lastSweep = now

		return
	case now.Sub(lastSweep) < sweepInterval:
		return
	}

	lastSweep = now

	go func() {
		if n := sweep(now); n > 0 {
			log.Debug().Int("count", n).Msg("Swept idle rate limit buckets")
		}
	}()
}
