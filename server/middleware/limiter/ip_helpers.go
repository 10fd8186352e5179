// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"net"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// IPv4 and IPv6 address lengths as measured in bits.
const (
	ipv4BitLength = 32
	ipv6BitLength = 128
)

// getClientIP returns the address of the visitor behind a request.
//
// X-Real-IP, then the last X-Forwarded-For hop, are honored only when the
// connection itself comes from a private or loopback address, i.e. a reverse
// proxy in front of the site.
func getClientIP(r *http.Request) string {
	remoteIP := r.RemoteAddr
	if host, _, err := net.SplitHostPort(remoteIP); err == nil {
		remoteIP = host
	}

	if !behindTrustedProxy(remoteIP) {
		if remoteIP == "" {
			log.Error().Msg("Could not determine client IP")
		}

		return remoteIP
	}

	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		hops := strings.Split(xff, ",")
		if last := strings.TrimSpace(hops[len(hops)-1]); last != "" {
			return last
		}
	}

	return remoteIP
}

func behindTrustedProxy(remoteIP string) bool {
	ip := net.ParseIP(remoteIP)

	return ip != nil && (ip.IsPrivate() || ip.IsLoopback())
}

// ipMatchesList reports whether ip equals, or falls within, any entry of list.
//
// Entries are plain addresses or CIDR blocks; malformed entries never match.
func ipMatchesList(ip net.IP, list []string) bool {
	for _, entry := range list {
		if strings.Contains(entry, "/") {
			if _, subnet, err := net.ParseCIDR(entry); err == nil && subnet.Contains(ip) {
				return true
			}

			continue
		}

		if other := net.ParseIP(entry); other != nil && other.Equal(ip) {
			return true
		}
	}

	return false
}

// getNetwork masks ip down to the configured prefix for its family.
func getNetwork(ip net.IP, ipv4Prefix, ipv6Prefix int) *net.IPNet {
	mask := net.CIDRMask(ipv6Prefix, ipv6BitLength)
	if ip.To4() != nil {
		mask = net.CIDRMask(ipv4Prefix, ipv4BitLength)
	}

	if mask == nil {
		return nil
	}

	return &net.IPNet{
		IP:   ip.Mask(mask),
		Mask: mask,
	}
}
