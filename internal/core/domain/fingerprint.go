package domain

import (
	"crypto/md5" //nolint:gosec // identifier only, not a security boundary
	"encoding/hex"
)

// FingerprintLength is the number of hex characters in a fingerprint.
const FingerprintLength = 8

// Fingerprint derives the short index key for a filename: the first
// FingerprintLength lowercase hex characters of the MD5 digest of the name.
// It is deterministic across runs and independent of file content.
// Distinct names may collide; the later insert wins.
func Fingerprint(name string) string {
	sum := md5.Sum([]byte(name)) //nolint:gosec // see import
	return hex.EncodeToString(sum[:])[:FingerprintLength]
}

// IsFingerprint reports whether s has the shape of a fingerprint.
func IsFingerprint(s string) bool {
	if len(s) != FingerprintLength {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
