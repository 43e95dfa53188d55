package datastore

import (
	"crypto/sha256"
	"encoding/hex"
)

// hashedKeyPrefix marks record names derived from a digest of the URL
// rather than its reversible encoding.
const hashedKeyPrefix = "sha256-"

// URLHashGenerator handles URL hash generation
type URLHashGenerator struct {
	hashLength int
}

// NewURLHashGenerator creates a new URL hash generator. Lengths outside
// 1..64 select the full hex digest.
func NewURLHashGenerator(hashLength int) *URLHashGenerator {
	if hashLength <= 0 || hashLength > sha256.Size*2 {
		hashLength = sha256.Size * 2
	}
	return &URLHashGenerator{
		hashLength: hashLength,
	}
}

// GenerateHash creates a hex hash for the URL
func (uhg *URLHashGenerator) GenerateHash(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])[:uhg.hashLength]
}
