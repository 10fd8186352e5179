// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package assets provides access to the application's embedded static assets:
stylesheets, scripts, images, message catalogs and gettext catalogues.
*/
package assets

import (
	"embed"
)

// FS provides access to the embedded file system.
//
//go:embed css img js messages po manifest.json robots.txt
var FS embed.FS
