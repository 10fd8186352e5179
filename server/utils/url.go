// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package utils

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ParseURL parses an absolute http(s) URL from the configuration.
//
// what names the setting in error messages. A trailing slash on the path is
// removed so that callers can append paths with a leading slash.
func ParseURL(raw, what string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s URL: %w", what, err)
	}

	if u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("%s URL %q must be absolute, e.g. https://miky.ai", what, raw)
	}

	u.Path = strings.TrimSuffix(u.Path, "/")

	return u, nil
}

// GetQueryParam returns the trimmed value of query parameter name.
func GetQueryParam(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

// GetFormValue returns form field name from a POST body or the query.
// A body that cannot be parsed reads as empty.
func GetFormValue(r *http.Request, name string) string {
	if err := r.ParseForm(); err != nil {
		return ""
	}

	return r.FormValue(name)
}

// SanitizeReturnPath returns s when it is a path on this origin, "" otherwise.
func SanitizeReturnPath(s string) string {
	s = strings.TrimSpace(s)

	switch {
	case !strings.HasPrefix(s, "/"), strings.HasPrefix(s, "//"), strings.HasPrefix(s, "/\\"):
		return ""
	case strings.Contains(s, "://"):
		return ""
	}

	return s
}
