package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	digest, err := HashPassword("S3cure!pass")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(digest, "$2"), "expected a bcrypt digest, got %q", digest)
	assert.True(t, CheckPassword(digest, "S3cure!pass"))
	assert.False(t, CheckPassword(digest, "s3cure!pass"))
	assert.False(t, CheckPassword(digest, ""))
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("S3cure!pass")
	require.NoError(t, err)
	second, err := HashPassword("S3cure!pass")
	require.NoError(t, err)

	// Salting makes equal inputs hash differently
	assert.NotEqual(t, first, second)
}
