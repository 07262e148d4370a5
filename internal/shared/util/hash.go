package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashContent returns a stable hex fingerprint for an uploaded payload.
func HashContent(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
