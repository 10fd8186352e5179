// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package authenticated

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	t.Parallel()

	var v Validator
	require.NoError(t, v.LoadSecretKeyFromHex(NewSecretKeyHex()))

	token, err := v.Sign(AdminSubject, time.Hour)
	require.NoError(t, err)

	require.NoError(t, v.Verify(token, AdminSubject))
	require.Error(t, v.Verify(token, "someone else"))
	require.Error(t, v.Verify(token+"x", AdminSubject))
	require.Error(t, v.Verify("", AdminSubject))
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	var v Validator
	v.Generate()

	token, err := v.Sign(AdminSubject, -time.Minute)
	require.NoError(t, err)
	assert.Error(t, v.Verify(token, AdminSubject))
}

func TestVerifyOtherKey(t *testing.T) {
	t.Parallel()

	var a, b Validator
	a.Generate()
	b.Generate()

	token, err := a.Sign(AdminSubject, time.Hour)
	require.NoError(t, err)
	assert.Error(t, b.Verify(token, AdminSubject))
}

func TestNoKey(t *testing.T) {
	t.Parallel()

	var v Validator
	assert.False(t, v.Loaded())

	_, err := v.Sign(AdminSubject, time.Hour)
	require.ErrorIs(t, err, ErrNoKey)
	require.ErrorIs(t, v.Verify("v4.public.x", AdminSubject), ErrNoKey)

	require.Error(t, v.LoadSecretKeyFromHex("not hex"))
	assert.False(t, v.Loaded())
}

func TestPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "correct horse"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("", ""))
	assert.False(t, CheckPassword("not a hash", "correct horse"))
}
