// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"
	"strings"
	"unicode"
)

var (
	ErrMissingEmail    = errors.New("email is required")
	ErrMissingPassword = errors.New("password is required")
	ErrInvalidPassword = errors.New("invalid system password")
)

// knownTechnicians maps the fixed company emails to display names.
// Any other email is accepted too - see DisplayName.
var knownTechnicians = map[string]string{
	"andrii@eurocode.ua": "Andrii Tekhnik",
	"sergii@eurocode.ua": "Serhii Maister",
	"maksym@eurocode.ua": "Maksym Spetsialist",
	"ivan@eurocode.ua":   "Ivan Tekhnik",
	"petro@eurocode.ua":  "Petro Remontnyk",
}

// ValidateCredentials checks the login input against the shared system
// password. The comparison is constant-time.
func ValidateCredentials(email, password, systemPassword string) error {
	if email == "" {
		return ErrMissingEmail
	}
	if password == "" {
		return ErrMissingPassword
	}
	if !hmac.Equal([]byte(password), []byte(systemPassword)) {
		return ErrInvalidPassword
	}
	return nil
}

// NormalizeEmail lowercases and trims an email so the same address
// always resolves to the same technician row.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// DisplayName resolves the name for a technician email: fixed names
// for the known company addresses, otherwise a name synthesized from
// the local part of the address.
func DisplayName(email string) string {
	if name, ok := knownTechnicians[email]; ok {
		return name
	}

	local := email
	if at := strings.IndexByte(email, '@'); at >= 0 {
		local = email[:at]
	}
	return capitalize(local) + " Technician"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
