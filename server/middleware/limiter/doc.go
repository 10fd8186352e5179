// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package limiter throttles the write endpoints of the site (contact
submissions, admin login and the test API) per client network.

Static pages are not guarded. They are cacheable and cost nothing to serve.
*/
package limiter
