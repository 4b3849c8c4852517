package auth

import (
	"strings"
	"unicode"

	"portal/config"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
)

// specialSymbols is the exact set of characters accepted as special symbols.
const specialSymbols = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?"

const defaultMinLength = 8

// passwordPolicy is the configurable implementation of the PasswordPolicy interface.
type passwordPolicy struct {
	minLength      int
	requireAlpha   bool
	requireNumbers bool
	requireSpecial bool
}

// NewPasswordPolicy builds a policy from configuration. With no configuration
// present every rule is enforced with the default minimum length.
func NewPasswordPolicy(cfg *config.Config) service.PasswordPolicy {
	policy := &passwordPolicy{
		minLength:      defaultMinLength,
		requireAlpha:   true,
		requireNumbers: true,
		requireSpecial: true,
	}

	if cfg.PasswordPolicy != nil {
		if cfg.PasswordPolicy.MinLength > 0 {
			policy.minLength = cfg.PasswordPolicy.MinLength
		}
		policy.requireAlpha = cfg.PasswordPolicy.RequireAlpha
		policy.requireNumbers = cfg.PasswordPolicy.RequireNumbers
		policy.requireSpecial = cfg.PasswordPolicy.RequireSpecial
	}

	return policy
}

// Validate checks the password against every configured rule. Any violation
// returns the same combined error so clients never learn which rule tripped.
func (p *passwordPolicy) Validate(password string) error {
	if len(password) < p.minLength {
		return domainerrors.ErrWeakPassword.WrapMessage("password too short")
	}
	if p.requireAlpha && !hasAlpha(password) {
		return domainerrors.ErrWeakPassword.WrapMessage("password missing letter")
	}
	if p.requireNumbers && !hasDigit(password) {
		return domainerrors.ErrWeakPassword.WrapMessage("password missing number")
	}
	if p.requireSpecial && !hasSpecial(password) {
		return domainerrors.ErrWeakPassword.WrapMessage("password missing special symbol")
	}

	return nil
}

func hasAlpha(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}

	return false
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}

	return false
}

func hasSpecial(s string) bool {
	return strings.ContainsAny(s, specialSymbols)
}
