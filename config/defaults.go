// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import "time"

const (
	// Default HTTP cache max age in seconds.
	defaultHTTPCacheMaxAgeSeconds = 30
	// Default HTTP cache stale while revalidate in seconds.
	defaultHTTPCacheStaleWhileRevalidateSeconds = 60

	// Default contact endpoint timeout in seconds.
	defaultContactTimeoutSeconds = 10
	// Default admin session lifetime in hours.
	defaultAdminSessionTTLHours = 12
)

// SetDefaults populates the configuration with default values.
func (cfg *ServerConfig) SetDefaults() {
	cfg.Basic.Host = "localhost"
	cfg.Basic.Port = "8282"

	cfg.Site.BaseURL = "http://localhost:8282"
	cfg.Site.Name = "Miky.ai"
	cfg.Site.LegalUpdated = "2025-01-15"

	cfg.Contact.Encoding = EncodingJSON
	cfg.Contact.Timeout = defaultContactTimeoutSeconds * time.Second
	cfg.Contact.RatePerMinute = 5
	cfg.Contact.Burst = 3

	cfg.Admin.SessionTTL = defaultAdminSessionTTLHours * time.Hour

	cfg.Auth.SessionCookie = "sb-access-token"
	cfg.Auth.DashboardURL = "/dashboard"
	cfg.Auth.SignInURL = "/auth/login"
	cfg.Auth.SignUpURL = "/auth/signup"

	cfg.HTTPCache.MaxAge = defaultHTTPCacheMaxAgeSeconds * time.Second
	cfg.HTTPCache.StaleWhileRevalidate = defaultHTTPCacheStaleWhileRevalidateSeconds * time.Second

	cfg.Log.Level = "info"
	cfg.Log.Outputs = []string{"/dev/stderr"}
	cfg.Log.Format = "console"

	cfg.Limiter.Enabled = true
	cfg.Limiter.StateFilepath = "./data/limiter_state.json"
	cfg.Limiter.IPv4Prefix = 24
	cfg.Limiter.IPv6Prefix = 48

	cfg.Internationalization.StrictMissingKeys = false
}
