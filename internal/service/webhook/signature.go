package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SecretSource returns the signing secret for a profile, or "" if none.
type SecretSource interface {
	WebhookSecret(profile string) string
}

type Verifier struct {
	secrets SecretSource
}

func NewVerifier(secrets SecretSource) *Verifier {
	return &Verifier{secrets: secrets}
}

// Verify checks signature against the raw body for profile. The secret is
// checked before the signature so an unconfigured profile always fails closed.
// The comparison is exact: signature must be the lowercase hex digest.
func (v *Verifier) Verify(profile string, body []byte, signature string) error {
	secret := v.secrets.WebhookSecret(profile)
	if secret == "" {
		return ErrSecretNotConfigured
	}
	if signature == "" {
		return ErrMissingSignature
	}

	expected := Sign(body, secret)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}

// Sign returns the lowercase hex HMAC-SHA256 of body keyed by secret.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
