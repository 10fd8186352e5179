// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package middleware provides the HTTP middleware chain of the website.

Each middleware has the [Middleware] signature and is installed with
router.Use. The chain runs, outermost first: WithServerTiming, Compress,
NormalizeURL, Localize, set_request_context.WithRequestContext and
SetResponseHeaders.

Route handlers return an error and are wrapped by [CatchError].
*/
package middleware
