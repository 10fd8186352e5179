// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"bytes"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdownOnce sync.Once
	markdown     goldmark.Markdown
	htmlPolicy   *bluemonday.Policy
)

func initMarkdown() {
	markdown = goldmark.New(goldmark.WithExtensions(extension.Linkify))

	htmlPolicy = bluemonday.NewPolicy()
	htmlPolicy.AllowElements("p", "strong", "em", "ul", "ol", "li", "br", "code")
	htmlPolicy.AllowStandardURLs()
	htmlPolicy.AllowAttrs("href").OnElements("a")
	htmlPolicy.RequireNoFollowOnLinks(true)
}

// renderMarkdown converts catalog copy to HTML. Raw HTML in the source is
// dropped by goldmark and whatever remains is filtered by the allowlist.
func renderMarkdown(src string) string {
	markdownOnce.Do(initMarkdown)

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		Logger.Warn().Err(err).Msg("Failed to render markdown")

		return htmlPolicy.Sanitize(src)
	}

	return strings.TrimSpace(htmlPolicy.Sanitize(buf.String()))
}
