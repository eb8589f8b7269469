// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package sec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarchetti/fiscora/internal/platform/sec"
)

/*
TestHashPassword_RoundTrip verifies hashing and successful verification.
*/
func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := sec.HashPassword("hunter2-but-longer")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, sec.CheckPasswordHash("hunter2-but-longer", hash))
	assert.False(t, sec.CheckPasswordHash("wrong password", hash))
}

/*
TestHashPassword_SaltedHashesDiffer verifies that hashing the same input
twice yields distinct hashes (per-hash salt).
*/
func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, err := sec.HashPassword("same input")
	require.NoError(t, err)

	second, err := sec.HashPassword("same input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

/*
TestCheckPasswordHash_GarbageHash verifies that a malformed stored hash
fails closed instead of panicking.
*/
func TestCheckPasswordHash_GarbageHash(t *testing.T) {
	assert.False(t, sec.CheckPasswordHash("anything", "not-a-bcrypt-hash"))
	assert.False(t, sec.CheckPasswordHash("anything", ""))
}

/*
TestDecoyHash_IsRealBcryptHash verifies that the decoy hash is a genuine
bcrypt digest, so comparing against it costs the same as a real check,
and that it is stable across calls.
*/
func TestDecoyHash_IsRealBcryptHash(t *testing.T) {
	decoy := sec.DecoyHash()

	require.NotEmpty(t, decoy)
	assert.True(t, strings.HasPrefix(decoy, "$2a$"))
	assert.Equal(t, decoy, sec.DecoyHash())

	// No submitted password should ever verify against it in practice, and
	// the comparison must complete without error for arbitrary input.
	assert.False(t, sec.CheckPasswordHash("any password", decoy))
}
