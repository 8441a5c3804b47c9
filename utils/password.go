package utils

import (
	"errors"
	"strings"
	"unicode"
)

// PasswordSymbols is the accepted special-character set.
const PasswordSymbols = `!@#$%^&*()_+-=[]{};:'"\|,.<>/?`

var (
	ErrPasswordTooShort = errors.New("Password must be at least 8 characters long")
	ErrPasswordNoUpper  = errors.New("Password must contain at least one uppercase letter")
	ErrPasswordNoLower  = errors.New("Password must contain at least one lowercase letter")
	ErrPasswordNoDigit  = errors.New("Password must contain at least one number")
	ErrPasswordNoSymbol = errors.New("Password must contain at least one special character")
)

// ValidatePassword enforces the registration password policy, reporting the
// first missing character class.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(PasswordSymbols, r):
			hasSymbol = true
		}
	}

	switch {
	case !hasUpper:
		return ErrPasswordNoUpper
	case !hasLower:
		return ErrPasswordNoLower
	case !hasDigit:
		return ErrPasswordNoDigit
	case !hasSymbol:
		return ErrPasswordNoSymbol
	}
	return nil
}
