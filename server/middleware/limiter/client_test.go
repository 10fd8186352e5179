// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/mikyai/website/config"
)

func newTestClient(t *testing.T, remoteAddr string) *ClientInfo {
	t.Helper()

	r := httptest.NewRequest(http.MethodPost, "http://localhost/contact", nil)
	r.RemoteAddr = remoteAddr

	c, err := newClientInfo(r)
	require.NoError(t, err)

	return c
}

func TestNewClientInfo(t *testing.T) {
	setupLimiterTest(t)

	c := newTestClient(t, "192.168.0.1:9999")
	assert.Equal(t, "192.168.0.1", c.ip.String())
	assert.Equal(t, "192.168.0.0/24", c.network.String())

	c = newTestClient(t, "[2001:db8:1:2::5]:443")
	assert.Equal(t, "2001:db8:1:2::/64", c.network.String())

	r := httptest.NewRequest(http.MethodPost, "http://localhost/contact", nil)
	r.RemoteAddr = "999.999.999.999:1234"

	_, err := newClientInfo(r)
	require.ErrorIs(t, err, errInvalidIPFormat)

	r.RemoteAddr = ""

	_, err = newClientInfo(r)
	require.ErrorIs(t, err, errMissingClientIP)
}

func TestListing(t *testing.T) {
	setupLimiterTest(t)

	tests := []struct {
		ip   string
		want listing
	}{
		{"127.0.0.1", passListed},
		{"10.0.0.1", blockListed},
		{"192.168.0.1", unlisted},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, newTestClient(t, tt.ip+":9999").listing(), tt.ip)
	}
}

func TestListingAcceptsCIDRs(t *testing.T) {
	setupLimiterTest(t)

	config.Global.Limiter.PassIPs = []string{"192.168.0.0/16"}
	config.Global.Limiter.BlockIPs = []string{"203.0.113.0/24", "192.168.44.3"}

	assert.Equal(t, passListed, newTestClient(t, "192.168.44.3:1").listing(), "pass list wins")
	assert.Equal(t, unlisted, newTestClient(t, "192.169.0.1:1").listing())
	assert.Equal(t, blockListed, newTestClient(t, "203.0.113.9:1").listing())
	assert.Equal(t, unlisted, newTestClient(t, "198.51.100.9:1").listing())
}
