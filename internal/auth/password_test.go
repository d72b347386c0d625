package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, VerifyPassword(hash, "correct horse battery staple"))
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("pw1")
	assert.NoError(t, err)

	assert.Error(t, VerifyPassword(hash, "pw2"))
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("same password")
	assert.NoError(t, err)
	h2, err := HashPassword("same password")
	assert.NoError(t, err)

	// bcrypt embeds a random salt, so two hashes of the same input differ
	assert.NotEqual(t, h1, h2)
}
