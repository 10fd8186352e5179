// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package untrusted reads and writes the cookies a visitor sends us.

Every value here is under the visitor's control. They are preferences and
hints, such as the chosen locale or whether an account session exists. The
admin token is only carried here; package authenticated verifies it.
*/
package untrusted
