// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"

	"codeberg.org/mikyai/website/core/idgen"
)

// Global exposes the server configuration.
var Global ServerConfig

// Contact submission encodings.
const (
	EncodingJSON = "json"
	EncodingForm = "form"
)

// ServerConfig holds the application configuration.
type ServerConfig struct {
	Build buildInfo `yaml:"-"`

	Basic struct {
		Host                     string      `env:"MIKY_HOST" yaml:"host"`
		Port                     string      `env:"MIKY_PORT" yaml:"port"`
		UnixSocket               string      `env:"MIKY_UNIXSOCKET" yaml:"unixSocket"`
		RawUnixSocketPermissions string      `env:"MIKY_UNIXSOCKET_PERMISSIONS" yaml:"unixSocketPermissions"`
		UnixSocketPermissions    os.FileMode `yaml:"-"`
		UnixSocketUser           string      `env:"MIKY_UNIXSOCKET_USER" yaml:"unixSocketUser"`
		UnixSocketGroup          string      `env:"MIKY_UNIXSOCKET_GROUP" yaml:"unixSocketGroup"`
	} `yaml:"basic"`

	Site struct {
		// Public origin used for canonical and alternate links.
		BaseURL string `env:"MIKY_BASE_URL" yaml:"baseUrl"`
		Name    string `env:"MIKY_SITE_NAME" yaml:"name"`
		// Date shown as "last updated" on the legal pages.
		LegalUpdated string `env:"MIKY_LEGAL_UPDATED" yaml:"legalUpdated"`
	} `yaml:"site"`

	Routing struct {
		// First path segments that never take part in locale routing.
		// Empty means routing.DefaultExcludedSegments.
		ExcludedSegments []string `env:"MIKY_EXCLUDED_SEGMENTS" yaml:"excludedSegments"`
	} `yaml:"routing"`

	Contact struct {
		Endpoint      string        `env:"MIKY_CONTACT_ENDPOINT" yaml:"endpoint"`
		Encoding      string        `env:"MIKY_CONTACT_ENCODING" yaml:"encoding"`
		Timeout       time.Duration `env:"MIKY_CONTACT_TIMEOUT" yaml:"timeout"`
		RatePerMinute int           `env:"MIKY_CONTACT_RATE" yaml:"ratePerMinute"`
		Burst         int           `env:"MIKY_CONTACT_BURST" yaml:"burst"`
	} `yaml:"contact"`

	Admin struct {
		// bcrypt hash of the admin password. Empty disables /admin.
		PasswordHash string `env:"MIKY_ADMIN_PASSWORD_HASH" yaml:"passwordHash"`
		// hex-encoded v4.public secret key
		PasetoSecret string        `env:"MIKY_SECRET" yaml:"secret"`
		SessionTTL   time.Duration `env:"MIKY_ADMIN_SESSION_TTL" yaml:"sessionTTL"`
	} `yaml:"admin"`

	Auth struct {
		SessionCookie string `env:"MIKY_SESSION_COOKIE" yaml:"sessionCookie"`
		DashboardURL  string `env:"MIKY_DASHBOARD_URL" yaml:"dashboardUrl"`
		SignInURL     string `env:"MIKY_SIGN_IN_URL" yaml:"signInUrl"`
		SignUpURL     string `env:"MIKY_SIGN_UP_URL" yaml:"signUpUrl"`
	} `yaml:"auth"`

	HTTPCache struct {
		MaxAge               time.Duration `env:"MIKY_CACHE_CONTROL_MAX_AGE" yaml:"cacheControlMaxAge"`
		StaleWhileRevalidate time.Duration `env:"MIKY_CACHE_CONTROL_STALE_WHILE_REVALIDATE" yaml:"cacheControlStaleWhileRevalidate"`
	} `yaml:"httpCache"`

	Instance struct {
		StartingTime      string `yaml:"-"`
		FileServerCacheID string `yaml:"-"`
	} `yaml:"-"`

	Development struct {
		InDevelopment bool `env:"MIKY_DEV" yaml:"inDevelopment"`
	} `yaml:"development"`

	Log struct {
		Level   string   `env:"MIKY_LOG_LEVEL" yaml:"logLevel"`
		Outputs []string `env:"MIKY_LOG_OUTPUTS" yaml:"logOutputs"`
		Format  string   `env:"MIKY_LOG_FORMAT" yaml:"logFormat"`
	} `yaml:"log"`

	Limiter struct {
		Enabled       bool     `env:"MIKY_LIMITER" yaml:"enabled"`
		StateFilepath string   `env:"MIKY_LIMITER_STATE_FILEPATH" yaml:"stateFilepath"`
		PassIPs       []string `env:"MIKY_LIMITER_PASS_IPS" yaml:"passList"`
		BlockIPs      []string `env:"MIKY_LIMITER_BLOCK_IPS" yaml:"blockList"`
		IPv4Prefix    int      `env:"MIKY_LIMITER_IPV4_PREFIX" yaml:"ipv4Prefix"`
		IPv6Prefix    int      `env:"MIKY_LIMITER_IPV6_PREFIX" yaml:"ipv6Prefix"`
	} `yaml:"limiter"`

	Internationalization struct {
		// Strict mode for missing keys.
		//
		// When enabled, missing keys are logged (deduplicated per locale+key) and
		// visibly wrapped using markers.
		StrictMissingKeys bool `env:"MIKY_STRICT_MISSING_KEYS" yaml:"strictMissingKeys"`
	} `yaml:"internationalization"`
}

// AdminEnabled reports whether the admin gate is configured.
func (cfg *ServerConfig) AdminEnabled() bool {
	return cfg.Admin.PasswordHash != ""
}

// ContactConfigured reports whether submissions have somewhere to go.
func (cfg *ServerConfig) ContactConfigured() bool {
	return cfg.Contact.Endpoint != ""
}

// LoadConfig loads the configuration from various sources.
func (cfg *ServerConfig) LoadConfig() error {
	configFile := configFilePath()

	cfg.SetDefaults()

	cfg.Build.load()

	cfg.Instance.FileServerCacheID = idgen.Make()
	cfg.Instance.StartingTime = time.Now().UTC().Format("2006-01-02 15:04")

	if err := cfg.readYAML(configFile); err != nil {
		return fmt.Errorf("error loading YAML config: %w", err)
	}

	if err := useDotEnv(); err != nil {
		return fmt.Errorf("error using .env file: %w", err)
	}

	if err := readEnv(cfg); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.validateAndSet(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	cfg.setupLogging()

	cfg.print()

	// Heuristically check for containerized environment and warn if host is not a wildcard address.
	if isContainerized() && cfg.Basic.Host != "0.0.0.0" && cfg.Basic.Host != "::" {
		log.Warn().
			Str("host", cfg.Basic.Host).
			Msg("Running in a containerized environment but host is not a wildcard address (e.g., '0.0.0.0' or '::'). This may prevent the service from being accessible outside the container.")
	}

	return nil
}

var staticSkippedPathPrefixes = []string{"/img/", "/css/", "/js/", "/fonts/"}

// ShouldSkipServerLogging determines if a request should bypass the logging middleware.
func (cfg *ServerConfig) ShouldSkipServerLogging(path string) bool {
	if path == "/health" && !cfg.Development.InDevelopment {
		return true
	}

	for _, prefix := range staticSkippedPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

// isContainerized checks for common indicators of a containerized environment.
//
// This is a heuristic and may not be 100% accurate.
func isContainerized() bool {
	// Check for a Kubernetes-injected environment variable.
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true
	}

	// Check for existence of container-specific files.
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}

	if _, err := os.Stat("/.containerenv"); err == nil {
		return true
	}

	// #nosec G304 -- We are checking for the existence and content of a well-known system file for heuristics.
	cgroup, err := os.ReadFile("/proc/self/cgroup")
	if err == nil {
		content := string(cgroup)

		return strings.Contains(content, "docker") ||
			strings.Contains(content, "kubepods") ||
			strings.Contains(content, "containerd") ||
			strings.Contains(content, "lxc") ||
			strings.Contains(content, "crio") ||
			// systemd-nspawn containers
			strings.Contains(content, ".machine")
	}

	return false
}

// GetDurationEncoderOption returns a YAML encoder option that marshals
// time.Duration into a human-readable string format (e.g., "30m", "1h").
func GetDurationEncoderOption() yaml.EncodeOption {
	return yaml.CustomMarshaler[time.Duration](
		func(d time.Duration) ([]byte, error) {
			return yaml.Marshal(d.String())
		},
	)
}
