// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package views renders the website's pages.

Every page is a templ.Component built from gomponents trees. Copy comes from
the message catalog of the request's locale (see i18n.Catalog); interface
strings that are not marketing copy go through gettext (i18n.Tr).

Pages read per-request data, such as the locale and link prefix, from the
request context. Handlers pass everything else in the page's Data struct.
*/
package views
