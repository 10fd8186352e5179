// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package template holds the helpers views share: inline icons and
// navigation state.
package template

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"codeberg.org/mikyai/website/assets"
)

// icons maps an icon name, the file name without ".svg", to its markup.
// It is written once by LoadIcons at startup.
var icons = map[string]string{}

// LoadIcons reads every .svg directly under dir in the embedded assets.
func LoadIcons(dir string) error {
	entries, err := fs.ReadDir(assets.FS, dir)
	if err != nil {
		return fmt.Errorf("reading icons directory %q: %w", dir, err)
	}

	loaded := make(map[string]string, len(entries))

	for _, entry := range entries {
		name, ok := strings.CutSuffix(entry.Name(), ".svg")
		if entry.IsDir() || !ok {
			continue
		}

		svg, err := fs.ReadFile(assets.FS, path.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("reading icon %q: %w", entry.Name(), err)
		}

		loaded[name] = strings.TrimSpace(string(svg))
	}

	icons = loaded

	return nil
}

// HasIcon reports whether name was loaded.
func HasIcon(name string) bool {
	_, ok := icons[name]

	return ok
}

// RenderIcon returns the SVG markup of name with class set on the root
// element ("icon" by default). The icon files are ours, so the markup is
// trusted. An unknown name renders a visible placeholder.
func RenderIcon(name string, class ...string) string {
	svg, ok := icons[name]
	if !ok {
		return "[missing icon: " + name + "]"
	}

	cls := "icon"
	if len(class) > 0 && class[0] != "" {
		cls = class[0]
	}

	return strings.Replace(svg, "<svg", `<svg class="`+cls+`"`, 1)
}
