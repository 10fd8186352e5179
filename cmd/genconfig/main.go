// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
genconfig writes deploy/.env.example and deploy/config.yaml.example from the
configuration defaults.

With -hash it instead reads a password from standard input and prints the
bcrypt hash to put in MIKY_ADMIN_PASSWORD_HASH.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"

	"codeberg.org/mikyai/website/config"
	"codeberg.org/mikyai/website/core/audit"
	"codeberg.org/mikyai/website/core/authenticated"
)

const (
	envOutputFile  = "deploy/.env.example"
	yamlOutputFile = "deploy/config.yaml.example"
	filePerm       = 0o644
	dirPerm        = 0o755

	envFileHeader = `# Miky.ai website configuration (via environment variables)
#
# Copy this file to .env and customize the values below.
#
# This file was auto-generated using go run ./cmd/genconfig.

`
	yamlFileHeader = `# Miky.ai website configuration (via configuration file)
#
# Copy this file to config.yaml and customize the values below.
#
# This file was auto-generated using go run ./cmd/genconfig.
`
	proxySettingsComment = `
## Network proxy settings, used for the contact endpoint
## ref: https://pkg.go.dev/net/http#ProxyFromEnvironment
# HTTPS_PROXY=
# HTTP_PROXY=`

	adminHashComment = `# -- Generate with: echo -n 'password' | go run ./cmd/genconfig -hash`
)

// uncommented lists the env variables written as live assignments.
var uncommented = map[string]bool{
	"MIKY_HOST":     true,
	"MIKY_PORT":     true,
	"MIKY_BASE_URL": true,
}

func main() {
	hash := flag.Bool("hash", false, "print the bcrypt hash of the password read from stdin")
	flag.Parse()

	audit.SetDefaultLogger()

	if *hash {
		printPasswordHash()

		return
	}

	if err := os.MkdirAll("deploy", dirPerm); err != nil {
		log.Fatal().Err(err).Msg("Failed to create deploy directory")
	}

	generateEnvFile()
	generateYAMLFile()
}

func printPasswordHash() {
	password, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && password == "" {
		log.Fatal().Err(err).Msg("Failed to read password from stdin")
	}

	password = strings.TrimRight(password, "\r\n")
	if password == "" {
		log.Fatal().Msg("Empty password")
	}

	hashed, err := authenticated.HashPassword(password)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	fmt.Println(hashed)
}

// generateEnvFile writes one commented block per config section.
func generateEnvFile() {
	cfg := &config.ServerConfig{}
	cfg.SetDefaults()

	var sb strings.Builder
	sb.WriteString(envFileHeader)

	root := reflect.ValueOf(*cfg)

	for i := range root.NumField() {
		name := root.Type().Field(i).Name
		section := root.Field(i)

		if section.Kind() != reflect.Struct || name == "Build" || name == "Instance" {
			continue
		}

		fmt.Fprintf(&sb, "## %s\n", name)

		for j := range section.NumField() {
			if tag, ok := section.Type().Field(j).Tag.Lookup("env"); ok {
				sb.WriteString(envLine(strings.Split(tag, ",")[0], section.Field(j)))
			}
		}

		sb.WriteString("\n")
	}

	sb.WriteString(strings.TrimSpace(proxySettingsComment) + "\n")

	writeFile(envOutputFile, sb.String())
}

// envLine renders one variable with its default. Only the variables in
// uncommented are live assignments.
func envLine(name string, value reflect.Value) string {
	switch {
	case uncommented[name]:
		return fmt.Sprintf("%s=\"%v\"\n", name, value.Interface())
	case name == "MIKY_ADMIN_PASSWORD_HASH":
		return adminHashComment + "\n# " + name + "=\n"
	case value.Kind() == reflect.Slice:
		items := make([]string, 0, value.Len())
		for i := range value.Len() {
			items = append(items, fmt.Sprint(value.Index(i).Interface()))
		}

		return fmt.Sprintf("# %s=%s\n", name, strings.Join(items, ","))
	case value.Kind() == reflect.String && value.Len() == 0:
		return "# " + name + "=\n"
	default:
		return fmt.Sprintf("# %s=%v\n", name, value.Interface())
	}
}

func writeFile(path, content string) {
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to write example file")
	}

	log.Info().Str("path", path).Msg("Generated example file")
}

// generateYAMLFile writes the defaults as YAML with every setting commented
// out. Section headers stay live.
func generateYAMLFile() {
	cfg := &config.ServerConfig{}
	cfg.SetDefaults()

	var encoded strings.Builder

	enc := yaml.NewEncoder(&encoded, config.GetDurationEncoderOption(), yaml.Indent(2))
	if err := enc.Encode(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal config to YAML")
	}

	var sb strings.Builder
	sb.WriteString(yamlFileHeader)

	for line := range strings.SplitSeq(encoded.String(), "\n") {
		setting := strings.TrimLeft(line, " ")

		switch {
		case strings.TrimSpace(line) == "":
		case setting == line:
			sb.WriteString("\n" + line + "\n")
		default:
			indent := line[:len(line)-len(setting)]
			if strings.HasPrefix(setting, "passwordHash:") {
				sb.WriteString(indent + adminHashComment + "\n")
			}

			sb.WriteString(indent + "# " + setting + "\n")
		}
	}

	writeFile(yamlOutputFile, sb.String())
}
