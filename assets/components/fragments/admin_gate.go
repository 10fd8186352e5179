// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package fragments

import (
	"context"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint:revive
)

// AdminLoginPath is where the admin password is posted.
const AdminLoginPath = "/admin/login"

// AdminGateConfig configures the admin password form.
type AdminGateConfig struct {
	// Error is shown above the field, e.g. after a wrong password.
	Error string
	// NewWindow opens the admin panel in a new browsing context.
	NewWindow bool
	// Cancel adds a button that closes the surrounding dialog.
	Cancel bool
}

// AdminGate renders the admin password form. It is shared by the footer modal
// and the admin login page.
func AdminGate(ctx context.Context, cfg AdminGateConfig) g.Node {
	return Form(Class("form admin-gate"), Method("post"), Action(AdminLoginPath),
		g.If(cfg.NewWindow, Target("_blank")),
		g.If(cfg.Error != "", Div(Class("notice error"), Role("alert"), g.Text(cfg.Error))),
		Label(
			TextOf(ctx, "admin.passwordLabel"),
			Input(Name("password"), Type("password"), AutoComplete("current-password"), Required(),
				Placeholder(StringOf(ctx, "admin.passwordPlaceholder")),
				g.If(cfg.Error != "", Aria("invalid", "true")),
			),
		),
		Button(Class("btn btn-primary btn-block"), Type("submit"),
			Icon("lock"),
			TextOf(ctx, "admin.accessButton"),
		),
		g.If(cfg.Cancel, Button(Class("btn btn-block"), Type("button"), Data("dialog-close", ""),
			TextOf(ctx, "admin.cancel"),
		)),
	)
}
