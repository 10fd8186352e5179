// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"runtime/debug"
	"strings"
)

// BuildVersion is the latest tagged release of the website.
const BuildVersion string = "v1.0.0"

// buildInfo is the VCS stamp the Go toolchain embeds in the binary.
type buildInfo struct {
	VcsRevision string
	VcsTime     string
	VcsModified bool
}

// Version returns the release this binary was built from.
func (b *buildInfo) Version() string {
	return BuildVersion
}

// Revision returns "<commit date>-<short hash>", suffixed "+dirty" for a
// modified tree, or "unknown" without a VCS stamp.
func (b *buildInfo) Revision() string {
	if b.VcsRevision == "" {
		return "unknown"
	}

	date, _, _ := strings.Cut(b.VcsTime, "T")
	rev := date + "-" + b.VcsRevision[:min(8, len(b.VcsRevision))]

	if b.VcsModified {
		rev += "+dirty"
	}

	return rev
}

func (b *buildInfo) load() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			b.VcsRevision = s.Value
		case "vcs.time":
			b.VcsTime = s.Value
		case "vcs.modified":
			b.VcsModified = s.Value == "true"
		}
	}
}
