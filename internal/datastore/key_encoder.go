package datastore

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"

	"github.com/aleister1102/webwatcher/internal/common"
)

// maxFileNameLength is the common per-component limit (ext4, APFS, NTFS).
const maxFileNameLength = 255

// KeyEncoder turns a URL into the variable part of a record file name.
// Implementations must be deterministic, injective, and must never produce
// a path separator.
type KeyEncoder interface {
	Encode(url string) string
}

// Base64KeyEncoder encodes URLs with padded URL-safe base64, which uses
// '-' and '_' where standard base64 would use '+' and '/'.
//
// When prefix plus encoding would exceed the file name limit it falls back
// to "sha256-<hex>". That form is 71 characters long and so can never equal
// a padded base64 string, whose length is always a multiple of 4.
type Base64KeyEncoder struct {
	// MaxNameLength bounds prefix+encoding; 0 means maxFileNameLength.
	MaxNameLength int
	// PrefixLength is reserved out of MaxNameLength for the record prefix.
	PrefixLength int

	hasher *URLHashGenerator
}

// NewBase64KeyEncoder creates an encoder that leaves room for prefix.
func NewBase64KeyEncoder(prefix string) *Base64KeyEncoder {
	return &Base64KeyEncoder{
		MaxNameLength: maxFileNameLength,
		PrefixLength:  len(prefix),
		hasher:        NewURLHashGenerator(0),
	}
}

// Encode implements KeyEncoder.
func (e *Base64KeyEncoder) Encode(url string) string {
	encoded := base64.URLEncoding.EncodeToString([]byte(url))

	limit := e.MaxNameLength
	if limit <= 0 {
		limit = maxFileNameLength
	}
	if e.PrefixLength+len(encoded) <= limit {
		return encoded
	}

	hasher := e.hasher
	if hasher == nil {
		hasher = NewURLHashGenerator(0)
	}
	return hashedKeyPrefix + hasher.GenerateHash(url)
}

// Decode reverses Encode for base64 names. Hashed names cannot be reversed.
func (e *Base64KeyEncoder) Decode(key string) (string, error) {
	if len(key) == len(hashedKeyPrefix)+sha256.Size*2 && strings.HasPrefix(key, hashedKeyPrefix) {
		return "", common.NewValidationError("key", key, "hashed record names are not reversible")
	}
	raw, err := base64.URLEncoding.DecodeString(key)
	if err != nil {
		return "", common.WrapErrorf(err, "decoding record key %q", key)
	}
	return string(raw), nil
}
