// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Resolve picks the locale for a request. The sources are consulted in order:
//
//  1. the first segment of path, when it names a locale
//  2. the stored preference (the locale cookie)
//  3. the Accept-Language header, highest quality first; the first entry whose
//     primary subtag is a supported locale wins
//  4. [DefaultLocale]
//
// Resolve never fails. Malformed values at any step are skipped.
func Resolve(path, stored, acceptLanguage string) Locale {
	if l, ok := ParseLocale(FirstSegment(path)); ok {
		return l
	}

	if l, ok := ParseLocale(strings.TrimSpace(stored)); ok {
		return l
	}

	if l, ok := fromAcceptLanguage(acceptLanguage); ok {
		return l
	}

	return DefaultLocale
}

func fromAcceptLanguage(header string) (Locale, bool) {
	if strings.TrimSpace(header) == "" {
		return "", false
	}

	// ParseAcceptLanguage sorts by quality and drops q=0 entries,
	// but rejects the whole header when any single entry is unknown.
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		tags = lenientTags(header)
	}

	for _, t := range tags {
		base, confidence := t.Base()
		if confidence == language.No {
			continue
		}

		if l, ok := ParseLocale(base.String()); ok {
			return l, true
		}
	}

	return "", false
}

// lenientTags parses each entry of an Accept-Language header on its own,
// keeping the header order and skipping anything unparsable.
func lenientTags(header string) []language.Tag {
	var tags []language.Tag

	for entry := range strings.SplitSeq(header, ",") {
		name, _, _ := strings.Cut(entry, ";")

		t, err := language.Parse(strings.TrimSpace(name))
		if err != nil {
			continue
		}

		tags = append(tags, t)
	}

	return tags
}
