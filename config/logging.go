// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"github.com/rs/zerolog/log"

	"codeberg.org/mikyai/website/core/audit"
)

// setupLogging installs the process logger. Development keeps every level.
func (cfg *ServerConfig) setupLogging() {
	opts := audit.LogOptions{
		Level:   cfg.Log.Level,
		Outputs: cfg.Log.Outputs,
		JSON:    cfg.Log.Format == "json",
	}

	if cfg.Development.InDevelopment {
		opts.Level = "debug"
	}

	if err := audit.Setup(opts); err != nil {
		log.Warn().Err(err).Msg("Some log outputs are unavailable")
	}
}
