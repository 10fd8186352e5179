// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package template

import (
	"strings"

	"codeberg.org/mikyai/website/i18n"
)

// IsCurrentSection reports whether currentPath, in any locale, is the page at
// sectionPath or below it. The home section "/" matches only the home page.
func IsCurrentSection(currentPath, sectionPath string) bool {
	current := strings.TrimRight(i18n.StripLocale(currentPath), "/")
	section := strings.TrimRight(sectionPath, "/")

	if section == "" {
		return current == ""
	}

	return current == section || strings.HasPrefix(current, section+"/")
}
