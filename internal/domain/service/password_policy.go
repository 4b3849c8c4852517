package service

// PasswordPolicy validates password strength at registration time.
// Login never re-applies strength rules; presence is the only check there.
type PasswordPolicy interface {
	// Validate returns nil when the password satisfies every configured rule.
	// Any violation yields one fixed combined error, never a per-rule message.
	Validate(password string) error
}
