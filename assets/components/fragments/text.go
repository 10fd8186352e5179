// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package fragments

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"

	"codeberg.org/mikyai/website/i18n"
	"codeberg.org/mikyai/website/server/template"
)

// StringOf resolves key in the catalog of the request's locale.
func StringOf(ctx context.Context, key i18n.Key, kv ...any) string {
	return i18n.M(ctx).T(string(key), kv...)
}

// TextOf is StringOf as an escaped text node.
func TextOf(ctx context.Context, key i18n.Key, kv ...any) g.Node {
	return g.Text(StringOf(ctx, key, kv...))
}

// MarkdownOf renders the Markdown copy under key as sanitized HTML.
func MarkdownOf(ctx context.Context, key i18n.Key, kv ...any) g.Node {
	return g.Raw(i18n.M(ctx).HTML(string(key), kv...))
}

// Icon inlines a vetted SVG from img/icons.
func Icon(name string, class ...string) g.Node {
	return g.Raw(template.RenderIcon(name, class...))
}

// Component adapts a context-aware gomponents tree to templ.Component, the
// interface route handlers render.
func Component(build func(ctx context.Context) g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return build(ctx).Render(w)
	})
}
