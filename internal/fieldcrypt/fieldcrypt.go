// Package fieldcrypt encrypts individual PII columns (tenant names,
// phone numbers) with AES-256-GCM before they reach the database.
// Decrypt returns a typed error instead of substituting a placeholder
// string; the caller decides whether to degrade to "N/A" or to
// propagate the failure.
package fieldcrypt

import (
    "crypto/aes"
    "crypto/cipher"
    "crypto/rand"
    "encoding/base64"
    "encoding/hex"
    "errors"
    "fmt"
)

// ErrDecrypt wraps every decryption failure (bad ciphertext, wrong
// key, truncated payload) so callers can test with errors.Is without
// caring about the underlying cause.
var ErrDecrypt = errors.New("fieldcrypt: decryption failed")

// ErrKeySize is returned by New when the key is not 32 bytes.
var ErrKeySize = errors.New("fieldcrypt: key must be 32 bytes (64 hex chars)")

// Cipher encrypts and decrypts short string fields.  It is safe for
// concurrent use; the underlying AEAD is stateless apart from the key.
type Cipher struct {
    aead cipher.AEAD
}

// New builds a Cipher from a hex-encoded 256-bit key, as supplied by
// the ENCRYPTION_KEY environment variable.
func New(hexKey string) (*Cipher, error) {
    key, err := hex.DecodeString(hexKey)
    if err != nil {
        return nil, fmt.Errorf("fieldcrypt: invalid hex key: %w", err)
    }
    if len(key) != 32 {
        return nil, ErrKeySize
    }
    block, err := aes.NewCipher(key)
    if err != nil {
        return nil, err
    }
    aead, err := cipher.NewGCM(block)
    if err != nil {
        return nil, err
    }
    return &Cipher{aead: aead}, nil
}

// EncryptString seals a plaintext field and returns a base64 string
// of nonce||ciphertext suitable for a VARCHAR column.  A fresh random
// nonce is used for every call, so encrypting the same value twice
// yields different ciphertexts.
func (c *Cipher) EncryptString(plain string) (string, error) {
    nonce := make([]byte, c.aead.NonceSize())
    if _, err := rand.Read(nonce); err != nil {
        return "", err
    }
    sealed := c.aead.Seal(nonce, nonce, []byte(plain), nil)
    return base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptString opens a value produced by EncryptString.  Any failure
// is reported as an error wrapping ErrDecrypt; the plaintext result
// is only valid when the error is nil.
func (c *Cipher) DecryptString(encoded string) (string, error) {
    raw, err := base64.StdEncoding.DecodeString(encoded)
    if err != nil {
        return "", fmt.Errorf("%w: %v", ErrDecrypt, err)
    }
    ns := c.aead.NonceSize()
    if len(raw) < ns {
        return "", fmt.Errorf("%w: ciphertext shorter than nonce", ErrDecrypt)
    }
    plain, err := c.aead.Open(nil, raw[:ns], raw[ns:], nil)
    if err != nil {
        return "", fmt.Errorf("%w: %v", ErrDecrypt, err)
    }
    return string(plain), nil
}
