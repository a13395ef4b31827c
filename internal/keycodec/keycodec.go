// Package keycodec generates opaque API keys and computes their storage
// hash and display prefix. Raw key material is never persisted — only the
// hash and a short display prefix are stored (see internal/model.ApiKey).
package keycodec

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

const (
	// keyPrefix is prepended to every generated raw key.
	keyPrefix = "gm_"

	// rawKeyBytes is the number of random bytes drawn from the cryptographic
	// source before base-32 encoding.
	rawKeyBytes = 16

	// displayPrefixLen is the number of leading characters of the raw key
	// shown back to the caller for recognition purposes (ApiKey.KeyPrefix).
	displayPrefixLen = 8
)

// base32NoPad is unpadded standard (upper-case) base-32; Generate
// lower-cases its output to meet the lower-case, no-padding key format of
// spec §4.2.
var base32NoPad = base32.StdEncoding.WithPadding(base32.NoPadding)

// Generated holds everything produced by a single key generation: the raw
// key (shown to the caller exactly once), its storage hash, and its display
// prefix.
type Generated struct {
	RawKey       string
	StorageHash  [32]byte
	DisplayPrefix string
}

// Generate draws 16 cryptographically random bytes, encodes them as
// lower-case unpadded base-32, and prepends the "gm_" literal prefix.
func Generate() (Generated, error) {
	buf := make([]byte, rawKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return Generated{}, fmt.Errorf("keycodec: reading random source: %w", err)
	}

	raw := keyPrefix + strings.ToLower(base32NoPad.EncodeToString(buf))

	hash, err := Verify(raw)
	if err != nil {
		// Cannot happen: raw was just constructed with the correct prefix.
		return Generated{}, fmt.Errorf("keycodec: hashing freshly generated key: %w", err)
	}

	return Generated{
		RawKey:        raw,
		StorageHash:   hash,
		DisplayPrefix: displayPrefix(raw),
	}, nil
}

// Verify validates the format of a raw key and returns its storage hash
// (SHA3-256 of the full "gm_…" string). Used by the principal resolver to
// compute the hash for lookup, and by Generate to derive the stored hash.
func Verify(rawKey string) ([32]byte, error) {
	if !IsValidFormat(rawKey) {
		return [32]byte{}, fmt.Errorf("keycodec: malformed key: must begin with %q", keyPrefix)
	}
	return sha3.Sum256([]byte(rawKey)), nil
}

// IsValidFormat reports whether rawKey has the expected "gm_" prefix.
func IsValidFormat(rawKey string) bool {
	return strings.HasPrefix(rawKey, keyPrefix) && len(rawKey) > len(keyPrefix)
}

// displayPrefix returns the first displayPrefixLen characters of rawKey,
// clamped to the key's actual length.
func displayPrefix(rawKey string) string {
	if len(rawKey) <= displayPrefixLen {
		return rawKey
	}
	return rawKey[:displayPrefixLen]
}
