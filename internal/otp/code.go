package otp

import (
	"crypto/rand"
	"encoding/base32"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// Codes are 6 digits and valid for one 600-second step. The validity
// window is a property of the derivation itself; expiry of the registry
// entry is tracked separately for the sweep.
const codePeriod = 600

var codeOpts = totp.ValidateOpts{
	Period:    codePeriod,
	Skew:      0,
	Digits:    otp.DigitsSix,
	Algorithm: otp.AlgorithmSHA1,
}

// NewSecret returns a fresh base32-encoded 160-bit secret.
func NewSecret() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base32.StdEncoding.EncodeToString(buf), nil
}

// GenerateCode derives the 6-digit code for the given secret at time t.
func GenerateCode(secret string, t time.Time) (string, error) {
	return totp.GenerateCodeCustom(secret, t, codeOpts)
}

// ValidateCode reports whether code matches the secret's code at time t.
func ValidateCode(code, secret string, t time.Time) (bool, error) {
	return totp.ValidateCustom(code, secret, t, codeOpts)
}
