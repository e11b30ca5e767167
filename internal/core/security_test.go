// AngelaMos | 2026
// security_test.go

package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_ProducesVerifiableHash(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	valid, err := VerifyPassword("secret1", hash)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	first, err := HashPassword("secret1")
	require.NoError(t, err)

	second, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	valid, err := VerifyPassword("not-the-password", hash)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	_, err := VerifyPassword("secret1", "not-a-hash")
	assert.Error(t, err)
}

func TestVerifyPasswordTimingSafe_UnknownUser(t *testing.T) {
	valid, rehash, err := VerifyPasswordTimingSafe("secret1", nil)
	require.NoError(t, err)
	assert.False(t, valid)
	assert.Empty(t, rehash)

	empty := ""
	valid, _, err = VerifyPasswordTimingSafe("secret1", &empty)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestVerifyPasswordTimingSafe_KnownUser(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	valid, rehash, err := VerifyPasswordTimingSafe("secret1", &hash)
	require.NoError(t, err)
	assert.True(t, valid)
	assert.Empty(t, rehash, "current params should not trigger a rehash")
}
