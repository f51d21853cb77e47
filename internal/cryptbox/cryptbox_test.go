package cryptbox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	plaintext := []byte("a secret message that needs confidentiality")
	blob, err := Encrypt(plaintext, "mypassword")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(blob), MinEncryptedLength)

	out, err := Decrypt(blob, "mypassword")
	require.NoError(t, err)
	require.Equal(t, plaintext, out)
}

func TestWrongPasswordYieldsGarbage(t *testing.T) {
	plaintext := []byte("a secret message that needs confidentiality")
	blob, err := Encrypt(plaintext, "mypassword")
	require.NoError(t, err)

	out, err := Decrypt(blob, "not the password")
	require.NoError(t, err) // decryption itself never fails; only the result is garbage
	require.NotEqual(t, plaintext, out)
}

func TestDifferentPasswordsYieldDifferentCiphertexts(t *testing.T) {
	plaintext := []byte("identical input")
	a, err := Encrypt(plaintext, "password-a")
	require.NoError(t, err)
	b, err := Encrypt(plaintext, "password-b")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestTooShortBlobFails(t *testing.T) {
	_, err := Decrypt(make([]byte, MinEncryptedLength-1), "pw")
	require.Error(t, err)
	var tooShort ErrEncryptedTooShort
	require.ErrorAs(t, err, &tooShort)
}

func TestFreshSaltAndCounterEachEncode(t *testing.T) {
	plaintext := []byte("same input twice")
	a, err := Encrypt(plaintext, "pw")
	require.NoError(t, err)
	b, err := Encrypt(plaintext, "pw")
	require.NoError(t, err)
	require.NotEqual(t, a, b, "salt+counter must be fresh per encode")
}
