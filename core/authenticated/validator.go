// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package authenticated holds the server-side secrets that turn untrusted
// request state into something we can trust: signed access tokens and the
// admin password check.
package authenticated

import (
	"errors"
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
)

// domain separation key. can be anything. if you change it, past tokens will become invalid.
const Implicit = "Miky.ai website admin access"

// AdminSubject is the subject of tokens issued by the admin login.
const AdminSubject = "admin"

// ErrNoKey is returned when signing or verifying before a key was loaded.
var ErrNoKey = errors.New("no paseto secret key loaded")

func NewSecretKeyHex() string {
	return paseto.NewV4AsymmetricSecretKey().ExportHex()
}

// v4.public validator
type Validator struct {
	SecretKey paseto.V4AsymmetricSecretKey
	loaded    bool
}

func (psk *Validator) LoadSecretKeyFromHex(hex string) (err error) {
	psk.SecretKey, err = paseto.NewV4AsymmetricSecretKeyFromHex(hex)
	if err != nil {
		return
	}
	// public key can be derived efficiently from SecretKey, so it's not calculated here
	psk.loaded = true

	return
}

// Generate installs a fresh random key. Tokens signed with it do not survive a restart.
func (psk *Validator) Generate() {
	psk.SecretKey = paseto.NewV4AsymmetricSecretKey()
	psk.loaded = true
}

// Loaded reports whether a key is available.
func (psk *Validator) Loaded() bool {
	return psk.loaded
}

// Sign issues a v4.public token for subject that expires after ttl.
func (psk *Validator) Sign(subject string, ttl time.Duration) (string, error) {
	if !psk.loaded {
		return "", ErrNoKey
	}

	now := time.Now()

	token := paseto.NewToken()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(ttl))
	token.SetSubject(subject)

	return token.V4Sign(psk.SecretKey, []byte(Implicit)), nil
}

// Verify checks that value is an unexpired token for subject signed by this key.
func (psk *Validator) Verify(value, subject string) error {
	if !psk.loaded {
		return ErrNoKey
	}

	parser := paseto.MakeParser([]paseto.Rule{
		paseto.NotExpired(),
		paseto.Subject(subject),
	})

	if _, err := parser.ParseV4Public(psk.SecretKey.Public(), value, []byte(Implicit)); err != nil {
		return fmt.Errorf("invalid %s token: %w", subject, err)
	}

	return nil
}
