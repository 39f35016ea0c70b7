package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey() []byte {
	key := make([]byte, KeySize)
	for i := range key {
		key[i] = byte(i)
	}
	return key
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key := testKey()
	plaintext := []byte("opaque-bearer-token")

	encrypted, err := Encrypt(plaintext, key)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, encrypted)
	// nonce + ciphertext + 16 byte tag
	assert.Len(t, encrypted, NonceSize+len(plaintext)+16)

	decrypted, err := Decrypt(encrypted, key)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestEncrypt_Validation(t *testing.T) {
	_, err := Encrypt(nil, testKey())
	assert.Error(t, err)

	_, err = Encrypt([]byte("data"), []byte("short-key"))
	assert.Error(t, err)
}

func TestDecrypt_WrongKey(t *testing.T) {
	encrypted, err := Encrypt([]byte("data"), testKey())
	require.NoError(t, err)

	wrongKey := testKey()
	wrongKey[0] ^= 0xff

	_, err = Decrypt(encrypted, wrongKey)
	assert.Error(t, err)
}

func TestDecrypt_TamperedCiphertext(t *testing.T) {
	key := testKey()
	encrypted, err := Encrypt([]byte("data"), key)
	require.NoError(t, err)

	encrypted[len(encrypted)-1] ^= 0xff

	_, err = Decrypt(encrypted, key)
	assert.Error(t, err)
}

func TestBase64_RoundTrip(t *testing.T) {
	key := testKey()

	encoded, err := EncryptToBase64([]byte("token"), key)
	require.NoError(t, err)

	decoded, err := DecryptFromBase64(encoded, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("token"), decoded)

	_, err = DecryptFromBase64("not-base64!!!", key)
	assert.Error(t, err)
}
