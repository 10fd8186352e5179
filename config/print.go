// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const redactedValue = "[redacted]"

// print announces the instance and, at debug level, dumps the effective
// configuration to stderr.
func (cfg *ServerConfig) print() {
	log.Info().
		Str("version", cfg.Build.Version()).
		Str("revision", cfg.Build.Revision()).
		Str("cacheid", cfg.Instance.FileServerCacheID).
		Bool("admin", cfg.AdminEnabled()).
		Bool("contact", cfg.ContactConfigured()).
		Msg("Starting Miky.ai website")

	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		return
	}

	out, err := yaml.MarshalWithOptions(cfg.redacted(), GetDurationEncoderOption())
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal config to YAML for printing")

		return
	}

	log.Debug().Msg("Effective configuration:")
	fmt.Fprintln(os.Stderr, string(out))
}

// redacted returns a copy of cfg without secrets. Credentials in the contact
// endpoint URL count as secrets.
func (cfg *ServerConfig) redacted() ServerConfig {
	out := *cfg

	if out.Admin.PasswordHash != "" {
		out.Admin.PasswordHash = redactedValue
	}

	if out.Admin.PasetoSecret != "" {
		out.Admin.PasetoSecret = redactedValue
	}

	if u, err := url.Parse(out.Contact.Endpoint); err == nil && (u.User != nil || u.RawQuery != "") {
		u.User = nil
		if u.RawQuery != "" {
			u.RawQuery = redactedValue
		}

		out.Contact.Endpoint = u.String()
	}

	return out
}
