package encryption

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	salt := filepath.Join(t.TempDir(), "salt")
	enc, err := NewEncryptor("correct horse", salt)
	require.NoError(t, err)

	sealed, err := enc.Encrypt("j'ai peur de ne pas être à la hauteur")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "peur")

	plain, err := enc.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "j'ai peur de ne pas être à la hauteur", plain)

	again, err := enc.Encrypt("j'ai peur de ne pas être à la hauteur")
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again, "nonces must differ")
}

func TestSaltIsReused(t *testing.T) {
	salt := filepath.Join(t.TempDir(), "nested", "salt")
	first, err := NewEncryptor("pw", salt)
	require.NoError(t, err)

	info, err := os.Stat(salt)
	require.NoError(t, err)
	assert.Equal(t, int64(SaltSize), info.Size())

	second, err := NewEncryptor("pw", salt)
	require.NoError(t, err)

	sealed, err := first.Encrypt("secret")
	require.NoError(t, err)
	plain, err := second.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "secret", plain)
}

func TestWrongPassphraseFails(t *testing.T) {
	salt := filepath.Join(t.TempDir(), "salt")
	good, err := NewEncryptor("good", salt)
	require.NoError(t, err)
	bad, err := NewEncryptor("bad", salt)
	require.NoError(t, err)

	sealed, err := good.Encrypt("secret")
	require.NoError(t, err)
	_, err = bad.Decrypt(sealed)
	require.Error(t, err)
}

func TestEmptyInputs(t *testing.T) {
	_, err := NewEncryptor("", filepath.Join(t.TempDir(), "salt"))
	require.ErrorIs(t, err, ErrNoPassphrase)

	enc, err := NewEncryptor("pw", filepath.Join(t.TempDir(), "salt"))
	require.NoError(t, err)
	out, err := enc.Encrypt("")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = enc.Decrypt("AAAA")
	require.Error(t, err)
}
