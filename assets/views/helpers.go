// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint:revive

	f "codeberg.org/mikyai/website/assets/components/fragments"
	"codeberg.org/mikyai/website/i18n"
)

// indexed calls render for every element of the catalog array under prefix.
func indexed(ctx context.Context, prefix i18n.Key, render func(k i18n.Key, i int) g.Node) []g.Node {
	n := i18n.M(ctx).Len(string(prefix))

	nodes := make([]g.Node, 0, n)
	for i := range n {
		nodes = append(nodes, render(prefix.At(i), i))
	}

	return nodes
}

// bullets renders the catalog array under prefix as a list.
func bullets(ctx context.Context, prefix i18n.Key, icon string) g.Node {
	return Ul(
		g.Group(indexed(ctx, prefix, func(k i18n.Key, _ int) g.Node {
			return Li(g.If(icon != "", f.Icon(icon)), Span(f.TextOf(ctx, k)))
		})),
	)
}

// pick returns names[i], or the last name when i is out of range.
func pick(names []string, i int) string {
	if i < len(names) {
		return names[i]
	}

	return names[len(names)-1]
}

// backLink returns to the home page.
func backLink(ctx context.Context, label i18n.Key) g.Node {
	return A(Class("btn"), Href(f.CommonData(ctx).Path("/")),
		f.Icon("arrow-left"),
		f.TextOf(ctx, label),
	)
}
