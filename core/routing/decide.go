// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routing

import "codeberg.org/mikyai/website/i18n"

// Action tells the middleware what to do with a request.
type Action int

const (
	// PassThrough leaves the path untouched.
	PassThrough Action = iota
	// Serve passes through a path that already carries a non-default locale.
	Serve
	// Unmark redirects /en/... to the unprefixed path.
	Unmark
	// Rewrite changes the internal path to /en/... without a redirect.
	Rewrite
	// Redirect sends the client to the resolved locale's prefixed path.
	Redirect
)

func (a Action) String() string {
	switch a {
	case Serve:
		return "serve"
	case Unmark:
		return "unmark"
	case Rewrite:
		return "rewrite"
	case Redirect:
		return "redirect"
	default:
		return "pass"
	}
}

// Decision is the outcome of Decide.
type Decision struct {
	Action Action
	// Locale is the locale the response is rendered in.
	Locale i18n.Locale
	// Target is the internal path for Serve, Rewrite and PassThrough,
	// and the Location path for Unmark and Redirect.
	Target string
}

// Persist reports whether the locale should be written to the preference cookie.
func (d Decision) Persist() bool {
	return d.Action == Serve || d.Action == Unmark
}

// Redirects reports whether the client should be sent to Target.
func (d Decision) Redirects() bool {
	return d.Action == Unmark || d.Action == Redirect
}

var defaultRules = NewRules(nil)

// Decide applies the default rule set. See [Rules.Decide].
func Decide(path string, resolve func() i18n.Locale) Decision {
	return defaultRules.Decide(path, resolve)
}

// Decide classifies path and returns what to do with it.
//
// resolve is only called when the path itself does not name the locale.
func (rs Rules) Decide(path string, resolve func() i18n.Locale) Decision {
	switch rs.Classify(path) {
	case Excluded:
		return Decision{Action: PassThrough, Locale: resolve(), Target: path}

	case Localized:
		l, _ := i18n.ParseLocale(i18n.FirstSegment(path))
		if l.IsDefault() {
			return Decision{Action: Unmark, Locale: l, Target: i18n.StripLocale(path)}
		}

		return Decision{Action: Serve, Locale: l, Target: path}
	}

	l := resolve()
	if l.IsDefault() {
		return Decision{Action: Rewrite, Locale: l, Target: l.ExplicitPath(path)}
	}

	return Decision{Action: Redirect, Locale: l, Target: l.Path(path)}
}
