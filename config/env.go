// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// readEnv applies the MIKY_* variables named by the env struct tags. A set
// variable wins over the YAML file and the defaults; an unset one leaves the
// field alone. Lists are comma separated.
func readEnv(cfg *ServerConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("invalid environment variable: %w", err)
	}

	for _, list := range []*[]string{
		&cfg.Limiter.PassIPs,
		&cfg.Limiter.BlockIPs,
		&cfg.Log.Outputs,
	} {
		*list = trimList(*list)
	}

	return nil
}

// trimList drops blanks and surrounding spaces from list items.
func trimList(list []string) []string {
	out := list[:0]

	for _, item := range list {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}

// useDotEnv loads a .env file from the working directory or, failing that,
// from next to the binary. Variables already in the environment are kept.
func useDotEnv() error {
	var candidates []string

	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, ".env"))
	} else {
		log.Warn().Err(err).Msg("Could not get current working directory")
	}

	if exe, err := os.Executable(); err == nil {
		if p := filepath.Join(filepath.Dir(exe), ".env"); !slices.Contains(candidates, p) {
			candidates = append(candidates, p)
		}
	}

	for _, p := range candidates {
		err := godotenv.Load(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}

		log.Info().Str("path", p).Msg("Loaded configuration from .env file")

		return nil
	}

	log.Debug().Msg("No .env file found, skipping")

	return nil
}
