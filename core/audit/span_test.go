// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package audit

import (
	"bytes"
	"context"
	"errors"
	"testing"

	servertiming "github.com/mitchellh/go-server-timing"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestServerTimingName(t *testing.T) {
	t.Parallel()

	span := Span{Destination: ToContact, Method: "post", URL: "https://example.com/contact"}
	assert.Equal(t, "contact-POST", span.ServerTimingName())
}

func TestSpanServerTiming(t *testing.T) {
	t.Parallel()

	var timing servertiming.Header

	span := Span{Destination: ToUser, Method: "GET", URL: "/es/pricing"}
	span.Begin(servertiming.NewContext(context.Background(), &timing))
	span.End()

	require.Len(t, timing.Metrics, 1)
	assert.Equal(t, "user-GET", timing.Metrics[0].Name)
	assert.Equal(t, "/es/pricing", timing.Metrics[0].Desc)
	assert.Equal(t, span.Duration(), timing.Metrics[0].Duration)
}

func TestSpanLog(t *testing.T) {
	var buf bytes.Buffer

	prev := log.Logger
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	t.Cleanup(func() { log.Logger = prev })

	span := Span{
		Destination: ToUser,
		RequestID:   "abc",
		Method:      "GET",
		URL:         "/es/pricing",
		Locale:      "es",
	}
	span.Begin(context.Background())
	span.StatusCode = 502
	span.Size = 2048
	span.Error = errors.New("upstream down")
	span.End()
	span.End()
	span.Log()

	line := buf.String()
	assert.Equal(t, "warn", gjson.Get(line, "level").String())
	assert.Equal(t, "http", gjson.Get(line, "sys").String())
	assert.Equal(t, "es", gjson.Get(line, "locale").String())
	assert.Equal(t, "2.0 KiB", gjson.Get(line, "len").String())
	assert.Equal(t, int64(502), gjson.Get(line, "status_code").Int())
	assert.Equal(t, "upstream down", gjson.Get(line, "error").String())
}
