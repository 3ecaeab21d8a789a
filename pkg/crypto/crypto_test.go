package crypto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Password123!")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	assert.True(t, CheckPassword("Password123!", hash))
	assert.False(t, CheckPassword("WrongPass", hash))
}

func TestHashPassword_Error(t *testing.T) {
	orig := bcryptGenerateFromPassword
	t.Cleanup(func() { bcryptGenerateFromPassword = orig })

	bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	_, err := HashPassword("whatever")
	assert.Error(t, err)
}
