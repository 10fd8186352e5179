// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"codeberg.org/mikyai/website/config"
)

// bucketState is one bucket as written to the state file.
type bucketState struct {
	Key      string    `json:"key"`
	LastSeen time.Time `json:"last_seen"`
	Rate     float64   `json:"rate"`
	Burst    int       `json:"burst"`
	Tokens   float64   `json:"tokens"`
}

// SaveState writes every bucket to w as an indented JSON array.
func SaveState(w io.Writer) error {
	now := timeNow()
	states := []bucketState{}

	buckets.Range(func(_, value any) bool {
		b, ok := value.(*bucket)
		if !ok {
			return true
		}

		b.mu.Lock()
		states = append(states, bucketState{
			Key:      b.key,
			LastSeen: b.lastSeen,
			Rate:     float64(b.tokens.Limit()),
			Burst:    b.tokens.Burst(),
			Tokens:   b.tokens.TokensAt(now),
		})
		b.mu.Unlock()

		return true
	})

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(states); err != nil {
		return fmt.Errorf("encoding limiter state: %w", err)
	}

	return nil
}

// LoadState replaces the buckets in memory with the ones read from r.
//
// A bucket that was drained when saved stays drained and refills at its own
// rate. An empty reader leaves memory untouched.
func LoadState(r io.Reader) error {
	var states []bucketState

	if err := json.NewDecoder(r).Decode(&states); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}

		return fmt.Errorf("decoding limiter state: %w", err)
	}

	buckets.Range(func(key, _ any) bool {
		buckets.Delete(key)

		return true
	})

	now := timeNow()

	for _, s := range states {
		b := newBucket(s.Key, s.Rate, s.Burst)
		b.lastSeen = s.LastSeen

		if spent := float64(s.Burst) - s.Tokens; spent > 0 {
			b.tokens.AllowN(now, int(spent))
		}

		buckets.Store(s.Key, b)
	}

	return nil
}

// Restore loads the buckets saved by a previous run from
// Limiter.StateFilepath. Any failure just starts with empty buckets.
func Restore() {
	path := config.Global.Limiter.StateFilepath

	f, err := os.Open(path) // #nosec:G304
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("file", path).Msg("Could not open limiter state, starting fresh")
		}

		return
	}
	defer f.Close()

	if err := LoadState(f); err != nil {
		log.Warn().Err(err).Str("file", path).Msg("Could not read limiter state, starting fresh")

		return
	}

	log.Info().Str("file", path).Msg("Restored limiter state")
}

// Persist writes the buckets to Limiter.StateFilepath so throttled clients
// stay throttled across a restart.
func Persist() {
	path := config.Global.Limiter.StateFilepath

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		log.Warn().Err(err).Str("file", path).Msg("Could not create limiter state directory")

		return
	}

	f, err := os.Create(path) // #nosec:G304
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("Could not create limiter state file")

		return
	}
	defer f.Close()

	if err := SaveState(f); err != nil {
		log.Warn().Err(err).Str("file", path).Msg("Could not write limiter state")

		return
	}

	log.Info().Str("file", path).Msg("Saved limiter state")
}
