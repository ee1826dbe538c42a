package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hash, err := hashPassword("secret123")

	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, verifyPassword("secret123", hash))
}

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := hashPassword("secret123")
	assert.NoError(t, err)

	second, err := hashPassword("secret123")
	assert.NoError(t, err)

	// a fresh salt per call means the digests differ, but both verify
	assert.NotEqual(t, first, second)
	assert.True(t, verifyPassword("secret123", first))
	assert.True(t, verifyPassword("secret123", second))
}

func TestVerifyPasswordWrongPassword(t *testing.T) {
	hash, err := hashPassword("secret123")
	assert.NoError(t, err)

	assert.False(t, verifyPassword("wrong-password", hash))
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	assert.False(t, verifyPassword("secret123", "not-a-bcrypt-hash"))
	assert.False(t, verifyPassword("secret123", ""))
}
