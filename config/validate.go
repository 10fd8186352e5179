// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"codeberg.org/mikyai/website/core/authenticated"
	"codeberg.org/mikyai/website/server/utils"
)

// PasetoValidator signs and verifies admin access tokens.
var PasetoValidator authenticated.Validator

// validation errors.
var (
	errUnixSocketWithHostPort       = errors.New("unix socket configured - cannot specify Host and Port simultaneously")
	errUnixSocketInvalidPermissions = errors.New("invalid Basic.UnixSocketPermissions value")
	errUnixSocketUserDoesNotExist   = errors.New("user does not exist")
	errUnixSocketGroupDoesNotExist  = errors.New("group does not exist")
	errInvalidContactEncoding       = errors.New("Contact.Encoding must be json or form")
	errInvalidContactTimeout        = errors.New("Contact.Timeout must be positive")
	errInvalidContactRate           = errors.New("Contact.RatePerMinute and Contact.Burst must be positive")
	errInvalidAdminPasswordHash     = errors.New("Admin.PasswordHash is not a bcrypt hash")
	errInvalidAdminSessionTTL       = errors.New("Admin.SessionTTL must be positive")
	errPasetoSecretInvalid          = errors.New("admin.secret is not a valid paseto key")
	errEmptySessionCookie           = errors.New("Auth.SessionCookie cannot be empty")
	errEmptyStateFilepath           = errors.New("filepath for StateFilepath cannot be empty when limiter is enabled")
	errInvalidIPv4Prefix            = errors.New("IPv4 prefix must be between 0 and 32")
	errInvalidIPv6Prefix            = errors.New("IPv6 prefix must be between 0 and 128")
)

var (
	fileModeOctalRegexp  = regexp.MustCompile(`^0?[0-7]{3}$`)
	fileModeStringRegexp = regexp.MustCompile(`^(?:[r-][w-][x-]){3}$`)
	digitsRegexp         = regexp.MustCompile(`^[0-9]+$`)
)

// validateAndSet validates the server configuration and populates some fields.
func (cfg *ServerConfig) validateAndSet() error {
	if err := cfg.validateListener(); err != nil {
		return err
	}

	baseURL, err := utils.ParseURL(cfg.Site.BaseURL, "Site base")
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	cfg.Site.BaseURL = baseURL.String()

	cfg.Routing.ExcludedSegments = normalizeSegments(cfg.Routing.ExcludedSegments)

	if err := cfg.validateContact(); err != nil {
		return err
	}

	if err := cfg.validateAdmin(); err != nil {
		return err
	}

	if cfg.Auth.SessionCookie == "" {
		return errEmptySessionCookie
	}

	// Skip validating Limiter configuration if it's not enabled
	if !cfg.Limiter.Enabled {
		return nil
	}

	// Check if the user explicitly set an empty filepath
	if cfg.Limiter.StateFilepath == "" {
		return errEmptyStateFilepath
	}

	if cfg.Limiter.IPv4Prefix < 0 || cfg.Limiter.IPv4Prefix > 32 {
		return errInvalidIPv4Prefix
	}

	if cfg.Limiter.IPv6Prefix < 0 || cfg.Limiter.IPv6Prefix > 128 {
		return errInvalidIPv6Prefix
	}

	return nil
}

func (cfg *ServerConfig) validateListener() error {
	if cfg.Basic.UnixSocket == "" {
		// Set TCP defaults
		if cfg.Basic.Host == "" {
			cfg.Basic.Host = "localhost"
			log.Info().
				Str("host", cfg.Basic.Host).
				Msg("Binding to default host")
		}

		if cfg.Basic.Port == "" {
			cfg.Basic.Port = "8282"
			log.Info().
				Str("port", cfg.Basic.Port).
				Msg("Using default port")
		}

		return nil
	}

	if cfg.Basic.Host != "" || cfg.Basic.Port != "" {
		return errUnixSocketWithHostPort
	}

	// Handle unix socket permissions
	switch {
	case cfg.Basic.RawUnixSocketPermissions == "":
		cfg.Basic.UnixSocketPermissions = 0o666
	case fileModeOctalRegexp.MatchString(cfg.Basic.RawUnixSocketPermissions):
		rawModeUint64, _ := strconv.ParseUint(cfg.Basic.RawUnixSocketPermissions, 8, 32)

		cfg.Basic.UnixSocketPermissions = os.FileMode(rawModeUint64)
	case fileModeStringRegexp.MatchString(cfg.Basic.RawUnixSocketPermissions):
		mode := os.FileMode(0)

		for i, c := range cfg.Basic.RawUnixSocketPermissions {
			// If permission bit is set
			if c != '-' {
				// Set i-th bit from the end
				const bitsInByte = 8

				mode |= 1 << (bitsInByte - i)
			}
		}

		cfg.Basic.UnixSocketPermissions = mode
	default:
		return errUnixSocketInvalidPermissions
	}

	if cfg.Basic.UnixSocketUser != "" {
		lookup := user.Lookup
		if digitsRegexp.MatchString(cfg.Basic.UnixSocketUser) {
			lookup = user.LookupId
		}

		if _, err := lookup(cfg.Basic.UnixSocketUser); err != nil {
			return errUnixSocketUserDoesNotExist
		}
	}

	if cfg.Basic.UnixSocketGroup != "" {
		lookup := user.LookupGroup
		if digitsRegexp.MatchString(cfg.Basic.UnixSocketGroup) {
			lookup = user.LookupGroupId
		}

		if _, err := lookup(cfg.Basic.UnixSocketGroup); err != nil {
			return errUnixSocketGroupDoesNotExist
		}
	}

	return nil
}

func (cfg *ServerConfig) validateContact() error {
	cfg.Contact.Encoding = strings.ToLower(strings.TrimSpace(cfg.Contact.Encoding))

	switch cfg.Contact.Encoding {
	case EncodingJSON, EncodingForm:
	default:
		return errInvalidContactEncoding
	}

	if cfg.Contact.Timeout <= 0 {
		return errInvalidContactTimeout
	}

	if cfg.Contact.RatePerMinute <= 0 || cfg.Contact.Burst <= 0 {
		return errInvalidContactRate
	}

	if cfg.Contact.Endpoint == "" {
		log.Warn().Msg("Contact.Endpoint is not set, contact submissions will fail")

		return nil
	}

	endpoint, err := utils.ParseURL(cfg.Contact.Endpoint, "Contact endpoint")
	if err != nil {
		return fmt.Errorf("invalid contact endpoint: %w", err)
	}

	cfg.Contact.Endpoint = endpoint.String()

	return nil
}

func (cfg *ServerConfig) validateAdmin() error {
	if cfg.Admin.PasswordHash == "" {
		return nil
	}

	if _, err := bcrypt.Cost([]byte(cfg.Admin.PasswordHash)); err != nil {
		return fmt.Errorf("%w: %w", errInvalidAdminPasswordHash, err)
	}

	if cfg.Admin.SessionTTL <= 0 {
		return errInvalidAdminSessionTTL
	}

	if cfg.Admin.PasetoSecret == "" {
		PasetoValidator.Generate()
		log.Warn().Msgf("admin.secret is not set, using a random key: admin sessions end on restart. "+
			"Generated secret key (put this in config.yaml)\nadmin:\n  secret: \"%s\"", authenticated.NewSecretKeyHex())

		return nil
	}

	if err := PasetoValidator.LoadSecretKeyFromHex(cfg.Admin.PasetoSecret); err != nil {
		key := authenticated.NewSecretKeyHex()
		log.Error().Err(err).Msgf("Generated secret key (put this in config.yaml)\nadmin:\n  secret: \"%s\"", key)

		return errPasetoSecretInvalid
	}

	// remove key. no longer needed.
	cfg.Admin.PasetoSecret = ""

	return nil
}

// normalizeSegments lowercases and trims the excluded segments, dropping
// slashes, empties and duplicates.
func normalizeSegments(segments []string) []string {
	out := make([]string, 0, len(segments))

	for _, s := range segments {
		s = strings.ToLower(strings.Trim(strings.TrimSpace(s), "/"))
		if s == "" || slices.Contains(out, s) {
			continue
		}

		out = append(out, s)
	}

	return out
}
