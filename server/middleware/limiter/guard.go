// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"codeberg.org/mikyai/website/config"
	"codeberg.org/mikyai/website/server/request_context"
	"codeberg.org/mikyai/website/server/routes"
)

// Rate limiting header names.
//
// ref: https://www.ietf.org/archive/id/draft-polli-ratelimit-headers-02.html
const (
	HeaderRateLimitLimit     string = "RateLimit-Limit"
	HeaderRateLimitRemaining string = "RateLimit-Remaining"
	HeaderRateLimitReset     string = "RateLimit-Reset"
)

type FallibleHandler = func(w http.ResponseWriter, r *http.Request) error

// Profile is the token bucket shape applied to one guarded endpoint.
type Profile struct {
	Name      string
	PerMinute float64
	Burst     int
}

func (p Profile) rate() float64 {
	return p.PerMinute / 60
}

var (
	Login = Profile{Name: "login", PerMinute: 5, Burst: 5}
	API   = Profile{Name: "api", PerMinute: 60, Burst: 10}
)

// Contact returns the profile for contact submissions, taken from the config.
func Contact() Profile {
	return Profile{
		Name:      "contact",
		PerMinute: float64(config.Global.Contact.RatePerMinute),
		Burst:     config.Global.Contact.Burst,
	}
}

// Guard wraps next with the rate limit described by profile.
//
// Pass-listed networks are never throttled and block-listed ones always get 403.
func Guard(profile Profile, next FallibleHandler) FallibleHandler {
	return func(w http.ResponseWriter, r *http.Request) error {
		if !config.Global.Limiter.Enabled {
			return next(w, r)
		}

		defer maybeSweep()

		client, err := newClientInfo(r)
		if err != nil {
			log.Warn().Err(err).Str("profile", profile.Name).
				Msg("Could not identify client, skipping rate limit")

			return next(w, r)
		}

		switch client.listing() {
		case passListed:
			return next(w, r)
		case blockListed:
			log.Warn().
				Str("ip", client.ip.String()).
				Str("network", client.network.String()).
				Msg("Request blocked, IP in block-list")

			deny(w, r, http.StatusForbidden)

			return nil
		case unlisted:
		}

		client.bucket = bucketFor(client.network.String(), profile)

		if !client.bucket.take() {
			log.Warn().
				Str("ip", client.ip.String()).
				Str("network", client.network.String()).
				Str("profile", profile.Name).
				Msg("Request blocked, exceeded rate limit")

			addRateLimitHeaders(w, client)
			deny(w, r, http.StatusTooManyRequests)

			return nil
		}

		addRateLimitHeaders(w, client)

		return next(w, r)
	}
}

func deny(w http.ResponseWriter, r *http.Request, status int) {
	request_context.FromRequest(r).StatusCode = status

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	routes.ErrorPage(w, r)
}

// addRateLimitHeaders reports the state of the client's bucket.
func addRateLimitHeaders(w http.ResponseWriter, client *ClientInfo) {
	if client == nil || client.bucket == nil {
		return
	}

	q := client.bucket.quota()
	reset := strconv.FormatInt(q.reset, 10)

	w.Header().Set(HeaderRateLimitLimit, strconv.Itoa(q.limit))
	w.Header().Set(HeaderRateLimitRemaining, strconv.Itoa(q.remaining))
	w.Header().Set(HeaderRateLimitReset, reset)

	if q.remaining == 0 {
		w.Header().Set("Retry-After", reset)
	}
}
