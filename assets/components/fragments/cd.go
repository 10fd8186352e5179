// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package fragments holds the page chrome shared by every view: the document
layout, header, footer and the two modal forms.

Fragments are gomponents trees. They read per-request data from the request
context, so they must be rendered with the request's context.
*/
package fragments

import (
	"context"

	"codeberg.org/mikyai/website/server/request_context"
	"codeberg.org/mikyai/website/server/template/commondata"
)

// CommonData returns the page data populated by the request context middleware.
func CommonData(ctx context.Context) commondata.PageCommonData {
	return request_context.FromContext(ctx).CommonData
}
