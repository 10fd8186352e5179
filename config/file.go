// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
)

const (
	configFlag        = "config"
	configFileEnv     = "MIKY_CONFIGFILE"
	defaultConfigFile = "./config.yaml"
)

// configFilePath picks the YAML file to load, in order: the -config flag,
// MIKY_CONFIGFILE, then ./config.yaml or ./config.yml if either exists.
func configFilePath() string {
	if flag.Lookup(configFlag) == nil {
		flag.String(configFlag, defaultConfigFile, "Path to a Miky.ai website configuration file in YAML format.")
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	explicit := false

	flag.Visit(func(f *flag.Flag) {
		explicit = explicit || f.Name == configFlag
	})

	if explicit {
		return flag.Lookup(configFlag).Value.String()
	}

	if p := os.Getenv(configFileEnv); p != "" {
		return p
	}

	for _, p := range []string{defaultConfigFile, "./config.yml"} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return defaultConfigFile
}

// readYAML overlays the file at path onto cfg. A missing file is skipped;
// unknown keys are an error.
func (cfg *ServerConfig) readYAML(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- Only loading a config file
	if errors.Is(err, fs.ErrNotExist) {
		log.Info().
			Str("path", path).
			Msg("No YAML configuration file found, skipping")

		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}

	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.DisallowUnknownField()); err != nil {
		return fmt.Errorf("failed to parse YAML from %s: %w", path, err)
	}

	log.Info().
		Str("path", path).
		Msg("Loaded configuration file")

	return nil
}
