// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package routing decides how a request path relates to the locale segment
convention (/{locale}/{rest...}).

It holds no HTTP state: middleware.Localize applies the Decision it returns.
*/
package routing

import (
	"slices"
	"strings"

	"codeberg.org/mikyai/website/i18n"
)

// DefaultExcludedSegments are the first path segments that never take part in
// locale routing.
var DefaultExcludedSegments = []string{"api", "admin", "auth", "dashboard", "health", "css", "js", "img", "fonts"}

// Class is the routing class of a path.
type Class int

const (
	// Unlocalized paths have no locale segment yet.
	Unlocalized Class = iota
	// Excluded paths are never localized.
	Excluded
	// Localized paths start with a supported locale segment.
	Localized
)

func (c Class) String() string {
	switch c {
	case Excluded:
		return "excluded"
	case Localized:
		return "localized"
	default:
		return "unlocalized"
	}
}

// Rule assigns Class to every path Match accepts.
type Rule struct {
	Class Class
	Match func(path string) bool
}

// Rules is an ordered rule set. The first matching rule wins.
type Rules []Rule

// NewRules builds the rule set for the given excluded first segments.
// An empty list selects DefaultExcludedSegments.
//
// Exclusion rules come first, so a reserved segment wins over a locale tag
// with the same name.
func NewRules(excluded []string) Rules {
	if len(excluded) == 0 {
		excluded = DefaultExcludedSegments
	}

	segments := slices.Clone(excluded)

	return Rules{
		{Class: Excluded, Match: func(p string) bool {
			return slices.Contains(segments, strings.ToLower(i18n.FirstSegment(p)))
		}},
		{Class: Excluded, Match: isFilePath},
		{Class: Localized, Match: func(p string) bool {
			_, ok := i18n.ParseLocale(i18n.FirstSegment(p))

			return ok
		}},
	}
}

// Classify returns the class of the first rule matching path, or Unlocalized.
func (rs Rules) Classify(path string) Class {
	for _, rule := range rs {
		if rule.Match(path) {
			return rule.Class
		}
	}

	return Unlocalized
}

// isFilePath reports whether the last segment of p looks like a file name,
// e.g. /robots.txt or /favicon.ico.
func isFilePath(p string) bool {
	last := p[strings.LastIndex(p, "/")+1:]

	return strings.Contains(last, ".")
}
