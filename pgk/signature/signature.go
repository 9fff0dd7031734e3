// Package signature implements webhook body authentication: an HMAC-SHA256
// digest of the exact raw request bytes, hex-encoded, compared in constant
// time. Verification must run on the untouched byte stream; hashing a
// re-serialized payload produces a different digest than the sender computed.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sign returns the lowercase hex HMAC-SHA256 digest of body under secret.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signatureHex is the valid digest of body under
// secret. Comparison is constant-time.
func Verify(body []byte, signatureHex, secret string) bool {
	if secret == "" || signatureHex == "" {
		return false
	}

	got, err := hex.DecodeString(signatureHex)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	return hmac.Equal(got, mac.Sum(nil))
}
