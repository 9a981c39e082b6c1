package crypto

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// DefaultKeySize is 32 bytes, i.e. 256 bits of entropy.
	DefaultKeySize = 32
	MaxKeySize     = 1024
)

var (
	ErrInvalidKeySize  = errors.New("key size must not be negative")
	ErrKeySizeTooLarge = errors.New("key size must be at most 1024 bytes")
)

var urlSafeReplacer = strings.NewReplacer("+", "-", "/", "_")

// GenerateKey creates a random key of byteSize bytes from crypto/rand.
func GenerateKey(byteSize int, urlFriendly bool) (string, error) {
	return defaultGenerator.Key(byteSize, urlFriendly)
}

// Key draws byteSize random bytes and encodes them as padded standard Base64,
// or as unpadded Base64URL when urlFriendly is set.
func (g *Generator) Key(byteSize int, urlFriendly bool) (string, error) {
	if byteSize < 0 {
		return "", ErrInvalidKeySize
	}
	if byteSize > MaxKeySize {
		return "", ErrKeySizeTooLarge
	}

	raw := make([]byte, byteSize)
	if _, err := io.ReadFull(g.random, raw); err != nil {
		return "", fmt.Errorf("reading random source: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(raw)
	if urlFriendly {
		encoded = URLSafe(encoded)
	}
	return encoded, nil
}

// URLSafe rewrites standard Base64 text into the unpadded URL-safe alphabet.
func URLSafe(encoded string) string {
	return strings.TrimRight(urlSafeReplacer.Replace(encoded), "=")
}
