package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter12")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "hunter12", hash)

	assert.True(t, CheckPassword(hash, "hunter12"))
	assert.False(t, CheckPassword(hash, "hunter13"))
	assert.False(t, CheckPassword("", "hunter12"))
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "me****@example.com", MaskEmail("mentor@example.com"))
	assert.Equal(t, "a***@example.com", MaskEmail("ab@example.com"))
	assert.Equal(t, "***@example.com", MaskEmail("@example.com"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
}
