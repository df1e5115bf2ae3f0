package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIssuer(t *testing.T) {
	t.Run("rejects empty secret", func(t *testing.T) {
		_, err := NewIssuer("", time.Hour)
		require.Error(t, err)
	})

	t.Run("rejects non-positive ttl", func(t *testing.T) {
		_, err := NewIssuer("secret", 0)
		require.Error(t, err)
	})
}

func TestIssuer_IssueAndVerify(t *testing.T) {
	issuer, err := NewIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	now := time.Now()

	t.Run("round trip returns the issued subject", func(t *testing.T) {
		token, err := issuer.Issue(42, now)
		require.NoError(t, err)

		userId, err := issuer.Verify(token, now.Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 42, userId)
	})

	t.Run("accepts a Bearer prefix", func(t *testing.T) {
		token, err := issuer.Issue(7, now)
		require.NoError(t, err)

		userId, err := issuer.Verify("Bearer "+token, now)
		require.NoError(t, err)
		assert.Equal(t, 7, userId)
	})

	t.Run("valid until just before expiry", func(t *testing.T) {
		token, err := issuer.Issue(1, now)
		require.NoError(t, err)

		_, err = issuer.Verify(token, now.Add(time.Hour-time.Second))
		assert.NoError(t, err)
	})

	t.Run("expired exactly at expiry", func(t *testing.T) {
		token, err := issuer.Issue(1, now)
		require.NoError(t, err)

		_, err = issuer.Verify(token, now.Add(time.Hour))
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("expired after expiry", func(t *testing.T) {
		token, err := issuer.Issue(1, now)
		require.NoError(t, err)

		_, err = issuer.Verify(token, now.Add(2*time.Hour))
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other, err := NewIssuer("other-secret", time.Hour)
		require.NoError(t, err)

		token, err := other.Issue(42, now)
		require.NoError(t, err)

		_, err = issuer.Verify(token, now)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("rejects garbage input without panicking", func(t *testing.T) {
		for _, raw := range []string{"", "not-a-token", "a.b.c", "Bearer", "Bearer  "} {
			_, err := issuer.Verify(raw, now)
			assert.ErrorIs(t, err, ErrTokenInvalid, "input: %q", raw)
		}
	})

	t.Run("rejects a non-numeric subject", func(t *testing.T) {
		// Token minted by hand with a bad subject claim
		otherIssuer, _ := NewIssuer("test-secret", time.Hour)
		token, err := otherIssuer.Issue(-5, now)
		require.NoError(t, err)

		_, err = issuer.Verify(token, now)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}
