// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package audit

import (
	"context"
	"runtime/trace"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	servertiming "github.com/mitchellh/go-server-timing"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TrafficDestination says who an HTTP exchange was with.
type TrafficDestination string

const (
	// ToUser is a page or API response served to a visitor.
	ToUser TrafficDestination = "user"
	// ToAdmin is a response served under /admin.
	ToAdmin TrafficDestination = "admin"
	// ToContact is a submission relayed to the contact endpoint.
	ToContact TrafficDestination = "contact"
)

// Span times one HTTP exchange, either one we serve or one we make, and
// logs it. It also shows up in the Server-Timing header and in runtime/trace
// when those are active.
type Span struct {
	Destination TrafficDestination
	RequestID   string
	Method      string
	URL         string
	Locale      string
	StatusCode  int
	Size        int
	Error       error

	start    time.Time
	duration time.Duration
	task     *trace.Task
	metric   *servertiming.Metric
}

// ServerTimingName is the metric name, e.g. "contact-POST". The URL goes in
// the metric description.
func (span Span) ServerTimingName() string {
	return string(span.Destination) + "-" + strings.ToUpper(span.Method)
}

// Begin starts the clock and returns ctx carrying the trace task.
func (span *Span) Begin(ctx context.Context) context.Context {
	span.start = time.Now()

	ctx, span.task = trace.NewTask(ctx, "http."+string(span.Destination))

	if timing := servertiming.FromContext(ctx); timing != nil {
		span.metric = timing.NewMetric(span.ServerTimingName()).WithDesc(span.URL)
	}

	return ctx
}

// End stops the clock. Only the first call counts.
func (span *Span) End() {
	if span.task == nil {
		return
	}

	span.duration = time.Since(span.start)
	span.task.End()
	span.task = nil

	if span.metric != nil {
		span.metric.Duration = span.duration
	}
}

// Duration is the time between Begin and End.
func (span Span) Duration() time.Duration {
	return span.duration
}

// Log writes the span as one "sys=http" event. Failed 5xx exchanges are
// warnings, contact relays info, everything else debug.
func (span Span) Log() {
	event := span.event()

	event.Str("sys", "http").
		Str("method", span.Method).
		Str("url", span.URL).
		Int("status_code", span.StatusCode).
		Str("len", humanize.IBytes(uint64(max(span.Size, 0)))).
		Dur("dur", span.duration).
		Str("destination", string(span.Destination)).
		Str("request_id", span.RequestID)

	if span.Locale != "" {
		event.Str("locale", span.Locale)
	}

	event.Err(span.Error).Send()
}

func (span Span) event() *zerolog.Event {
	switch {
	case span.Error != nil && span.StatusCode >= 500:
		return log.Warn()
	case span.Destination == ToContact:
		return log.Info()
	default:
		return log.Debug()
	}
}
