// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"errors"
	"net"
	"net/http"

	"codeberg.org/mikyai/website/config"
)

var (
	errMissingClientIP = errors.New("missing client IP")
	errInvalidIPFormat = errors.New("invalid IP format")
	errNilNetwork      = errors.New("could not determine network")
)

// listing is where a client stands with the configured IP lists.
type listing int

const (
	unlisted listing = iota
	passListed
	blockListed
)

// ClientInfo is the address and network of the client behind a single request.
type ClientInfo struct {
	ip      net.IP
	network net.IPNet
	bucket  *bucket
}

// newClientInfo identifies the client of r. Buckets are shared by every
// address in the client's network, sized by Limiter.IPv4Prefix and IPv6Prefix.
func newClientInfo(r *http.Request) (*ClientInfo, error) {
	raw := getClientIP(r)
	if raw == "" {
		return nil, errMissingClientIP
	}

	ip := net.ParseIP(raw)
	if ip == nil {
		return nil, errInvalidIPFormat
	}

	network := getNetwork(ip, config.Global.Limiter.IPv4Prefix, config.Global.Limiter.IPv6Prefix)
	if network == nil {
		return nil, errNilNetwork
	}

	return &ClientInfo{ip: ip, network: *network}, nil
}

// listing checks the pass list first, so an address on both lists passes.
func (c *ClientInfo) listing() listing {
	switch {
	case ipMatchesList(c.ip, config.Global.Limiter.PassIPs):
		return passListed
	case ipMatchesList(c.ip, config.Global.Limiter.BlockIPs):
		return blockListed
	default:
		return unlisted
	}
}
