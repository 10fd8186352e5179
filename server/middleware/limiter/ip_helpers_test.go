// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remoteAddr string
		header     http.Header
		expected   string
	}{
		{
			name:       "X-Real-IP from loopback proxy",
			remoteAddr: "127.0.0.1:12345",
			header:     http.Header{"X-Real-Ip": {"2.2.2.2"}},
			expected:   "2.2.2.2",
		},
		{
			name:       "last X-Forwarded-For hop from private proxy",
			remoteAddr: "192.168.1.1:12345",
			header:     http.Header{"X-Forwarded-For": {"3.3.3.3, 4.4.4.4"}},
			expected:   "4.4.4.4",
		},
		{
			name:       "proxy headers ignored from public address",
			remoteAddr: "1.1.1.1:12345",
			header:     http.Header{"X-Real-Ip": {"2.2.2.2"}},
			expected:   "1.1.1.1",
		},
		{
			name:       "trusted proxy without headers",
			remoteAddr: "10.1.2.3:80",
			expected:   "10.1.2.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := &http.Request{RemoteAddr: tt.remoteAddr, Header: tt.header}

			assert.Equal(t, tt.expected, getClientIP(r))
		})
	}
}

func TestIPMatchesList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ip       string
		list     []string
		expected bool
	}{
		{"exact IPv4", "192.168.1.1", []string{"192.168.1.1"}, true},
		{"IPv4 CIDR", "192.168.1.1", []string{"192.168.1.0/24"}, true},
		{"outside CIDR", "192.168.2.1", []string{"192.168.1.0/24"}, false},
		{"IPv6 short form", "2001:db8::1", []string{"2001:0db8:0000::1"}, true},
		{"malformed entry", "192.168.1.1", []string{"not-an-ip", "300.0.0.0/8"}, false},
		{"empty list", "192.168.1.1", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, ipMatchesList(net.ParseIP(tt.ip), tt.list))
		})
	}
}

func TestGetNetwork(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ip       string
		v4, v6   int
		expected string
	}{
		{"192.168.1.77", 24, 64, "192.168.1.0/24"},
		{"192.168.1.77", 16, 64, "192.168.0.0/16"},
		{"2001:db8:aa:bb::1", 24, 48, "2001:db8:aa::/48"},
	}

	for _, tt := range tests {
		network := getNetwork(net.ParseIP(tt.ip), tt.v4, tt.v6)
		if assert.NotNil(t, network, tt.ip) {
			assert.Equal(t, tt.expected, network.String())
		}
	}

	assert.Nil(t, getNetwork(net.ParseIP("10.0.0.1"), 40, 64), "prefix longer than the address")
}
