package fieldcrypt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestNewRejectsBadKeys(t *testing.T) {
	_, err := New("not-hex")
	assert.Error(t, err)

	_, err = New("abcd")
	assert.ErrorIs(t, err, ErrKeySize)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	c, err := New(testKey)
	require.NoError(t, err)

	for _, plain := range []string{"", "Jane Doe", "+31 6 1234 5678", strings.Repeat("x", 500)} {
		enc, err := c.EncryptString(plain)
		require.NoError(t, err)
		assert.NotEqual(t, plain, enc)

		got, err := c.DecryptString(enc)
		require.NoError(t, err)
		assert.Equal(t, plain, got)
	}
}

func TestEncryptUsesFreshNonces(t *testing.T) {
	c, err := New(testKey)
	require.NoError(t, err)

	a, err := c.EncryptString("Jane Doe")
	require.NoError(t, err)
	b, err := c.EncryptString("Jane Doe")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestDecryptFailuresAreTyped(t *testing.T) {
	c, err := New(testKey)
	require.NoError(t, err)

	// Not base64 at all.
	_, err = c.DecryptString("%%%")
	assert.ErrorIs(t, err, ErrDecrypt)

	// Valid base64 but shorter than a nonce.
	_, err = c.DecryptString("YWJj")
	assert.ErrorIs(t, err, ErrDecrypt)

	// Tampered ciphertext must not decrypt.
	enc, err := c.EncryptString("Jane Doe")
	require.NoError(t, err)
	raw := []byte(enc)
	raw[len(raw)-5] ^= 1
	_, err = c.DecryptString(string(raw))
	assert.ErrorIs(t, err, ErrDecrypt)

	// A different key must not decrypt.
	other, err := New(strings.Repeat("ff", 32))
	require.NoError(t, err)
	_, err = other.DecryptString(enc)
	assert.ErrorIs(t, err, ErrDecrypt)
}
