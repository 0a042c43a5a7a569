package token_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hafiizherdian/mini-e-commerce/internal/models"
	"github.com/Hafiizherdian/mini-e-commerce/internal/token"
)

const testSecret = "test-secret-key"

func newCodec(t *testing.T) *token.Codec {
	t.Helper()
	codec, err := token.NewCodec(testSecret, 15*time.Minute)
	require.NoError(t, err)
	return codec
}

func TestNewCodec(t *testing.T) {
	t.Run("empty secret is rejected", func(t *testing.T) {
		_, err := token.NewCodec("", 15*time.Minute)
		assert.Error(t, err)
	})
}

func TestCodec_RoundTrip(t *testing.T) {
	codec := newCodec(t)

	t.Run("subject and roles survive issue and verify", func(t *testing.T) {
		tokenString, err := codec.IssueWithTTL("alice", []string{"user", "admin"}, time.Hour)
		require.NoError(t, err)

		claims, err := codec.Verify(tokenString)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Subject)
		assert.Equal(t, []string{"user", "admin"}, claims.Roles)
	})

	t.Run("empty roles are preserved", func(t *testing.T) {
		tokenString, err := codec.IssueWithTTL("bob", []string{}, time.Hour)
		require.NoError(t, err)

		claims, err := codec.Verify(tokenString)
		require.NoError(t, err)
		assert.Equal(t, "bob", claims.Subject)
		assert.Empty(t, claims.Roles)
	})

	t.Run("default TTL applies when caller does not choose one", func(t *testing.T) {
		tokenString, err := codec.Issue("carol", []string{"user"})
		require.NoError(t, err)

		claims, err := codec.Verify(tokenString)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
	})
}

func TestCodec_Expiry(t *testing.T) {
	codec := newCodec(t)

	t.Run("zero TTL token is already expired", func(t *testing.T) {
		tokenString, err := codec.IssueWithTTL("alice", []string{"user"}, 0)
		require.NoError(t, err)

		_, err = codec.Verify(tokenString)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("past expiry is rejected", func(t *testing.T) {
		tokenString, err := codec.IssueWithTTL("alice", []string{"user"}, -time.Minute)
		require.NoError(t, err)

		_, err = codec.Verify(tokenString)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})
}

func TestCodec_Tampering(t *testing.T) {
	codec := newCodec(t)

	t.Run("modified signature is rejected", func(t *testing.T) {
		tokenString, err := codec.IssueWithTTL("alice", []string{"user"}, time.Hour)
		require.NoError(t, err)

		parts := strings.Split(tokenString, ".")
		require.Len(t, parts, 3)

		sig := []byte(parts[2])
		if sig[0] == 'A' {
			sig[0] = 'B'
		} else {
			sig[0] = 'A'
		}
		tampered := parts[0] + "." + parts[1] + "." + string(sig)

		_, err = codec.Verify(tampered)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("modified claims are rejected", func(t *testing.T) {
		tokenString, err := codec.IssueWithTTL("alice", []string{"user"}, time.Hour)
		require.NoError(t, err)

		other, err := codec.IssueWithTTL("mallory", []string{"admin"}, time.Hour)
		require.NoError(t, err)

		parts := strings.Split(tokenString, ".")
		otherParts := strings.Split(other, ".")
		spliced := parts[0] + "." + otherParts[1] + "." + parts[2]

		_, err = codec.Verify(spliced)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("token signed with a different secret is rejected", func(t *testing.T) {
		otherCodec, err := token.NewCodec("a-different-secret", 15*time.Minute)
		require.NoError(t, err)

		tokenString, err := otherCodec.IssueWithTTL("alice", []string{"user"}, time.Hour)
		require.NoError(t, err)

		_, err = codec.Verify(tokenString)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("malformed token is rejected", func(t *testing.T) {
		for _, bad := range []string{"", "garbage", "a.b", "a.b.c.d"} {
			_, err := codec.Verify(bad)
			assert.ErrorIs(t, err, token.ErrInvalidToken)
		}
	})
}

func TestCodec_AlgorithmConfusion(t *testing.T) {
	codec := newCodec(t)

	claims := &models.Claims{
		Roles: []string{"admin"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "mallory",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	t.Run("HS384 token is rejected even with the right secret", func(t *testing.T) {
		tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = codec.Verify(tokenString)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("unsigned token is rejected", func(t *testing.T) {
		tokenString, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = codec.Verify(tokenString)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})
}
