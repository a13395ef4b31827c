package model

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"database/sql/driver"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

// encryptionKey is the package-level AES-256 key used by EncryptedCredentials.
// It must be initialized once at startup via InitEncryption before any
// database operation touching Embedder.Credentials.
var encryptionKey []byte

// InitEncryption sets the AES-256 key used to encrypt and decrypt Embedder
// credentials at rest (spec §3: "credentials are encrypted at rest"). key
// must be exactly 32 bytes.
//
// Call this once during application startup, before opening the database:
//
//	if err := model.InitEncryption(keyBytes); err != nil {
//	    log.Fatal(err)
//	}
func InitEncryption(key []byte) error {
	if len(key) != 32 {
		return fmt.Errorf("model: encryption key must be exactly 32 bytes, got %d", len(key))
	}
	encryptionKey = make([]byte, 32)
	copy(encryptionKey, key)
	return nil
}

// EncryptedCredentials is an opaque credential blob (spec: Embedder.credentials)
// that is transparently encrypted with AES-256-GCM before being written to
// the database and decrypted after being read. It is never returned in list
// responses (spec §3) — callers are responsible for zeroing it out of any
// response view before serialization.
//
// The value stored in the database is base64(nonce + ciphertext). An empty
// value is stored as an empty string without encryption.
type EncryptedCredentials string

// Value implements driver.Valuer.
func (e EncryptedCredentials) Value() (driver.Value, error) {
	if e == "" {
		return "", nil
	}
	if encryptionKey == nil {
		return nil, errors.New("model: encryption key not initialized, call model.InitEncryption first")
	}

	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, fmt.Errorf("model: creating AES cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("model: creating GCM: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("model: generating nonce: %w", err)
	}

	ciphertext := gcm.Seal(nonce, nonce, []byte(e), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Scan implements sql.Scanner.
func (e *EncryptedCredentials) Scan(value any) error {
	if value == nil {
		*e = ""
		return nil
	}

	str, ok := value.(string)
	if !ok {
		if b, ok := value.([]byte); ok {
			str = string(b)
		} else {
			return fmt.Errorf("model: EncryptedCredentials.Scan: expected string, got %T", value)
		}
	}
	if str == "" {
		*e = ""
		return nil
	}
	if encryptionKey == nil {
		return errors.New("model: encryption key not initialized, call model.InitEncryption first")
	}

	data, err := base64.StdEncoding.DecodeString(str)
	if err != nil {
		return fmt.Errorf("model: decoding base64: %w", err)
	}

	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return fmt.Errorf("model: creating AES cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return fmt.Errorf("model: creating GCM: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(data) < nonceSize {
		return errors.New("model: encrypted data too short to contain nonce")
	}

	nonce, ciphertext := data[:nonceSize], data[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return fmt.Errorf("model: decrypting value: %w", err)
	}

	*e = EncryptedCredentials(plaintext)
	return nil
}
