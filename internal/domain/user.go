// Package domain contains entity without logic, just meta-data
package domain

import (
	"strings"
	"unicode/utf8"
)

const (
	MaxUserIDLen    = 64
	MaxUsernameLen  = 36
	DefaultUsername = "Guest"
)

type UserID string

// NormalizeUsername trims the name, falls back to DefaultUsername when blank
// and caps it at MaxUsernameLen runes.
func NormalizeUsername(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultUsername
	}
	if utf8.RuneCountInString(name) > MaxUsernameLen {
		name = string([]rune(name)[:MaxUsernameLen])
	}
	return name
}

// NormalizeUserID trims the id. Over-long ids are rejected rather than cut,
// an id is an identity and must compare exactly.
func NormalizeUserID(id string) (UserID, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrValidation
	}
	if len(id) > MaxUserIDLen {
		return "", ErrUserIDTooLong
	}
	return UserID(id), nil
}
