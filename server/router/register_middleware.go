// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"slices"

	"codeberg.org/mikyai/website/config"
	"codeberg.org/mikyai/website/core/routing"
	"codeberg.org/mikyai/website/server/middleware"
	"codeberg.org/mikyai/website/server/middleware/set_request_context"
)

func (router *Router) RegisterMiddleware() {
	// the first middleware is the most outer / first executed one
	router.Use(middleware.WithServerTiming)
	router.Use(middleware.Compress)
	router.Use(middleware.NormalizeURL)                           // trailing slashes
	router.Use(middleware.Localize(routing.NewRules(excluded()))) // locale prefix, cookie and rewrite
	router.Use(set_request_context.WithRequestContext)            // needed for everything else
	router.Use(middleware.SetResponseHeaders)                     // all pages need this
}

// excluded returns the first path segments the locale middleware leaves alone.
func excluded() []string {
	segments := config.Global.Routing.ExcludedSegments
	if len(segments) == 0 {
		segments = routing.DefaultExcludedSegments
	}

	if config.Global.Development.InDevelopment {
		segments = append(slices.Clone(segments), "debug")
	}

	return segments
}
