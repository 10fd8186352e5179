// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package idgen

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	now := time.Now()

	assert.Equal(t, strings.ReplaceAll(now.Format("15:04:05"), ":", ""), maketime(now), "time part incorrect")

	id := makeAt(now)
	assert.Len(t, id, 10)
	assert.True(t, strings.HasPrefix(id, maketime(now)))
}

func TestTagged(t *testing.T) {
	t.Parallel()

	id := Tagged("ct")
	assert.True(t, strings.HasPrefix(id, "ct-"))
	assert.Len(t, id, len("ct-")+10)
	assert.NotEqual(t, Tagged("ct"), Tagged("ct"))
}
