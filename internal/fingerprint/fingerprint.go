// Package fingerprint computes the content digest used for change detection.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
)

// Size is the length of a Fingerprint in bytes.
const Size = sha256.Size

// Fingerprint is the SHA-256 digest of one fetch of a page.
type Fingerprint [Size]byte

// Compute returns the fingerprint of data. Empty input is valid.
func Compute(data []byte) Fingerprint {
	return Fingerprint(sha256.Sum256(data))
}

// Bytes returns the raw digest, as stored in a record file.
func (f Fingerprint) Bytes() []byte {
	return f[:]
}

// String returns the lowercase hex form for logs.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// FromBytes copies a raw digest. ok is false when b is not Size bytes long.
func FromBytes(b []byte) (f Fingerprint, ok bool) {
	if len(b) != Size {
		return f, false
	}
	copy(f[:], b)
	return f, true
}
