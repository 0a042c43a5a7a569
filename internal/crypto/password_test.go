package crypto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hafiizherdian/mini-e-commerce/internal/crypto"
)

func TestHashPassword(t *testing.T) {
	t.Run("digest is self-describing argon2id", func(t *testing.T) {
		digest, err := crypto.HashPassword("s3cret")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(digest, "$argon2id$"))
		assert.NotContains(t, digest, "s3cret")
	})

	t.Run("same password hashes differently each time", func(t *testing.T) {
		first, err := crypto.HashPassword("s3cret")
		require.NoError(t, err)
		second, err := crypto.HashPassword("s3cret")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.True(t, crypto.VerifyPassword("s3cret", first))
		assert.True(t, crypto.VerifyPassword("s3cret", second))
	})

	t.Run("empty password is accepted", func(t *testing.T) {
		digest, err := crypto.HashPassword("")
		require.NoError(t, err)
		assert.True(t, crypto.VerifyPassword("", digest))
		assert.False(t, crypto.VerifyPassword("not-empty", digest))
	})
}

func TestVerifyPassword(t *testing.T) {
	digest, err := crypto.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	t.Run("correct password matches", func(t *testing.T) {
		assert.True(t, crypto.VerifyPassword("correct horse battery staple", digest))
	})

	t.Run("wrong password does not match", func(t *testing.T) {
		assert.False(t, crypto.VerifyPassword("wrong password", digest))
	})

	t.Run("malformed digest never matches", func(t *testing.T) {
		for _, bad := range []string{
			"",
			"plaintext",
			"$argon2id$v=19$m=65536,t=1,p=4$onlysalt",
			"$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
			"$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA",
		} {
			assert.False(t, crypto.VerifyPassword("anything", bad), "digest %q", bad)
		}
	})
}
