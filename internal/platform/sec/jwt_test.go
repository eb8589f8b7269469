// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarchetti/fiscora/internal/platform/sec"
)

const (
	testSecret = "0123456789abcdef0123456789abcdef"
	testIssuer = "fiscora.test"
)

/*
TestNewTokenService_RejectsShortSecret verifies the HMAC key length guard.
*/
func TestNewTokenService_RejectsShortSecret(t *testing.T) {
	_, err := sec.NewTokenService("too-short", testIssuer)
	require.Error(t, err)
	assert.ErrorContains(t, err, "at least 32 bytes")
}

/*
TestTokenService_RoundTrip verifies that a generated token verifies and
carries the expected identity claims.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, testIssuer)
	require.NoError(t, err)

	token, err := service.GenerateSessionToken("user-42", "finance@fiscora.app", 24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-42", claims.Subject)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "finance@fiscora.app", claims.Email)
	assert.Equal(t, testIssuer, claims.Issuer)
}

/*
TestTokenService_ExpiryWindow verifies the token expires exactly the
requested duration after issuance.
*/
func TestTokenService_ExpiryWindow(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, testIssuer)
	require.NoError(t, err)

	before := time.Now()
	token, err := service.GenerateSessionToken("user-42", "finance@fiscora.app", 24*time.Hour)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)

	assert.WithinDuration(t, before.Add(24*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
	assert.Equal(t, 24*time.Hour, claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time))
}

/*
TestTokenService_RejectsExpiredToken verifies that a token past its
expiry no longer verifies.
*/
func TestTokenService_RejectsExpiredToken(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, testIssuer)
	require.NoError(t, err)

	token, err := service.GenerateSessionToken("user-42", "finance@fiscora.app", -1*time.Minute)
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestTokenService_RejectsTamperedToken verifies signature enforcement.
*/
func TestTokenService_RejectsTamperedToken(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, testIssuer)
	require.NoError(t, err)

	token, err := service.GenerateSessionToken("user-42", "finance@fiscora.app", time.Hour)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = service.VerifyToken(tampered)
	assert.Error(t, err)
}

/*
TestTokenService_RejectsForeignSignature verifies that a token signed
with a different secret is refused.
*/
func TestTokenService_RejectsForeignSignature(t *testing.T) {
	signer, err := sec.NewTokenService(testSecret, testIssuer)
	require.NoError(t, err)

	verifier, err := sec.NewTokenService("another-secret-entirely-0123456789ab", testIssuer)
	require.NoError(t, err)

	token, err := signer.GenerateSessionToken("user-42", "finance@fiscora.app", time.Hour)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}
