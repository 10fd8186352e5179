// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routing

import "context"

type visiblePathKeyType struct{}

var visiblePathKey = visiblePathKeyType{}

// WithVisiblePath records the path the client asked for, before any rewrite.
func WithVisiblePath(ctx context.Context, p string) context.Context {
	return context.WithValue(ctx, visiblePathKey, p)
}

// VisiblePathFrom returns the path stored by WithVisiblePath, or fallback.
func VisiblePathFrom(ctx context.Context, fallback string) string {
	if p, ok := ctx.Value(visiblePathKey).(string); ok {
		return p
	}

	return fallback
}
