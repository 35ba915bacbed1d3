package domain

import "time"

// OTPEntry is a live sign-in challenge, keyed by email.
// Secret is a base32 TOTP secret; the 6-digit code is derived from it,
// never stored. ExpiresAt is the absolute cutoff used by the registry
// sweep and by expiry detection during verification.
type OTPEntry struct {
	Email     string
	Secret    string
	ExpiresAt time.Time
}
