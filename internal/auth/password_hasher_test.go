package auth

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(MinHashIterations)

	encoded, err := hasher.Hash("Pass@123")
	assert.NoError(t, err)
	assert.NotEmpty(t, encoded)
	assert.NotEqual(t, "Pass@123", encoded)

	ok, err := hasher.Verify(encoded, "Pass@123")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify(encoded, "Pass@124")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordHasher_SaltsDiffer(t *testing.T) {
	hasher := NewPasswordHasher(MinHashIterations)

	first, err := hasher.Hash("same-password")
	assert.NoError(t, err)
	second, err := hasher.Hash("same-password")
	assert.NoError(t, err)

	// Fresh salts make repeated hashes of the same plaintext distinct,
	// yet both must still verify.
	assert.NotEqual(t, first, second)

	ok, err := hasher.Verify(first, "same-password")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify(second, "same-password")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestPasswordHasher_EncodedLength(t *testing.T) {
	hasher := NewPasswordHasher(MinHashIterations)

	encoded, err := hasher.Hash("Pass@123")
	assert.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(encoded)
	assert.NoError(t, err)
	assert.Len(t, raw, saltLength+keyLength)
}

func TestPasswordHasher_MalformedCredential(t *testing.T) {
	hasher := NewPasswordHasher(MinHashIterations)

	tests := []struct {
		name    string
		encoded string
	}{
		{name: "not base64", encoded: "%%%not-base64%%%"},
		{name: "empty", encoded: ""},
		{name: "too short", encoded: base64.StdEncoding.EncodeToString([]byte("short"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := hasher.Verify(tt.encoded, "whatever")
			assert.ErrorIs(t, err, ErrMalformedCredential)
			assert.False(t, ok)
		})
	}
}

func TestNewPasswordHasher_ClampsIterations(t *testing.T) {
	hasher := NewPasswordHasher(1)
	assert.Equal(t, MinHashIterations, hasher.iterations)
}
