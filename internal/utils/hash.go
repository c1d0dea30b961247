// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// bcryptPrefix is shared by every bcrypt variant ($2a$, $2b$, $2y$).
const bcryptPrefix = "$2"

// HashPassword returns the bcrypt hash of password at the given cost.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// IsPasswordHash reports whether stored looks like a bcrypt hash.
func IsPasswordHash(stored string) bool {
	return strings.HasPrefix(stored, bcryptPrefix)
}

// CheckPassword compares a login attempt against the stored credential.
//
// A stored value with the bcrypt prefix is checked with bcrypt. Anything
// else is a legacy plaintext credential and is compared in constant time.
// legacy reports which branch matched so callers can upgrade the record.
// An empty stored value never matches.
func CheckPassword(stored, password string) (ok bool, legacy bool, err error) {
	if stored == "" {
		return false, false, nil
	}

	if IsPasswordHash(stored) {
		err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
		switch {
		case err == nil:
			return true, false, nil
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, false, nil
		default:
			return false, false, fmt.Errorf("error comparing password hash: %w", err)
		}
	}

	match := subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
	return match, match, nil
}
