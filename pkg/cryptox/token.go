package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// Token sizes in bytes of entropy, before encoding.
const (
	TokenSize128 = 16 // 22 chars base64url
	TokenSize256 = 32 // 43 chars base64url
)

// redactKeep is how many leading characters of a token survive redaction.
const redactKeep = 10

// GenerateToken returns size bytes from crypto/rand encoded as unpadded
// base64url, safe to drop into a URL path.
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// RedactToken keeps the first few characters of a bearer token so it can be
// correlated in logs and responses without being usable.
func RedactToken(token string) string {
	if len(token) <= redactKeep {
		return "..."
	}
	return token[:redactKeep] + "..."
}
