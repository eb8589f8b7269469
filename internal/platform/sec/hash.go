// Copyright (c) 2026 Fiscora. All rights reserved.
// Author: d.marchetti.dev@gmail.com

package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// decoyPassword seeds the decoy hash. Its value is irrelevant; no real
// credential ever matches it because the compare result is discarded.
const decoyPassword = "fiscora-decoy-credential"

// decoyHash is computed once at startup so that every decoy comparison pays
// the same bcrypt cost as a real one.
var decoyHash = func() string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(decoyPassword), bcrypt.DefaultCost)
	if err != nil {
		panic("sec: failed to precompute decoy hash: " + err.Error())
	}
	return string(hashed)
}()

// HashPassword hashes a plain-text password using the bcrypt algorithm.
func HashPassword(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPasswordHash compares a plain-text password with its hashed version.
func CheckPasswordHash(plainTextPassword, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	return err == nil
}

// DecoyHash returns the fixed bogus hash used to equalize response latency
// when the claimed identity has no credential record.
//
// Comparing the submitted password against this hash makes the "user not
// found" path cost the same as the "wrong password" path, so an attacker
// cannot enumerate registered emails through timing differences.
func DecoyHash() string {
	return decoyHash
}
