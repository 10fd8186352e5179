// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package idgen makes short, roughly time-ordered identifiers for requests,
// contact submissions and asset cache busting.
package idgen

import (
	"crypto/rand"
	"encoding/base64"
	"time"
)

// Make makes a short ID with a 6 byte timestamp and 3 bytes of entropy.
func Make() string {
	return makeAt(time.Now())
}

// Tagged is Make with a prefix, e.g. Tagged("ct") gives "ct-150405xxxx".
func Tagged(prefix string) string {
	return prefix + "-" + Make()
}

func makeAt(t time.Time) string {
	entropy := [3]byte{'a', 'a', 'a'}

	_, _ = rand.Read(entropy[:])

	return maketime(t) + base64.RawURLEncoding.EncodeToString(entropy[:])
}

func maketime(t time.Time) string {
	return t.Format("150405")
}
