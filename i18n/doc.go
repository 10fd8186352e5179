// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package i18n provides the locale model and translation utilities for the site.

# Locales

The site is published in English (the default), Spanish and Italian. English
pages live at unprefixed paths; the others under /es and /it. [Resolve] decides
which locale a request gets, and the middleware stores it in the request context
with [WithLocale].

# Page copy

Long-form page content lives in YAML catalogs under assets/messages, one per
locale, addressed by dotted keys:

	i18n.M(ctx).T("howItWorks.faq.title")
	i18n.M(ctx).T("footer.copyright", "Year", 2025)
	i18n.Key("footer.tagline") // a templ.Component

Array elements are addressed by index ("howItWorks.faq.questions.3.answer") and
[Catalog.Len] counts them. Missing keys fall back to the English catalog, then to "".

# Interface strings

Short interface strings (buttons, labels, error pages) are GNU gettext msgids in
assets/po. Use the original English UI text as the msgid; do not invent keys.

	i18n.Tr(ctx, "Skip to content")
	i18n.TrN(ctx, "{{.Count}} key", "{{.Count}} keys", n, "Count", n)

# Missing translations

By default, missing gettext translations return the msgid unchanged and missing
catalog keys return "". When StrictMissingKeys is enabled, missing lookups are
logged once per locale+key and the returned text is visibly wrapped as "⟦...⟧".

# Formatting

Both kinds of message can include placeholders that are processed by Go's
standard text/template package. Provide substitutions as alternating
key-value pairs.

Numbers are not localised automatically; convert values to strings
yourself if you need locale-specific presentation.
*/
package i18n
