// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"context"
	"html"
	"io"
	"strconv"
)

// Key is a dotted message catalog key, e.g. "footer.tagline".
//
// Unlike [MsgKey], which is English source text for gettext, a Key names a slot in
// the YAML catalogs under assets/messages.
type Key string

// Tr resolves k in the catalog of the locale stored in ctx.
func (k Key) Tr(ctx context.Context) string {
	return M(ctx).T(string(k))
}

// Render writes the resolved text, HTML-escaped.
func (k Key) Render(ctx context.Context, w io.Writer) error {
	_, err := io.WriteString(w, html.EscapeString(k.Tr(ctx)))

	return err
}

// Sub returns the child key k.name.
func (k Key) Sub(name string) Key {
	return k + "." + Key(name)
}

// At returns the array element key k.i.
func (k Key) At(i int) Key {
	return k + "." + Key(strconv.Itoa(i))
}

// MsgKey is English interface text used as a gettext msgid, for strings
// declared away from the code that renders them.
type MsgKey string

// Tr is [Tr] for s.
func (s MsgKey) Tr(ctx context.Context) string {
	return Tr(ctx, string(s))
}

// Render writes the translated text, HTML-escaped.
func (s MsgKey) Render(ctx context.Context, w io.Writer) error {
	_, err := io.WriteString(w, html.EscapeString(s.Tr(ctx)))

	return err
}
