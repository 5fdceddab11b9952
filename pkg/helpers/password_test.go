package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cretpass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cretpass", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cretpass")))

	// 40 runes but 80 bytes.
	_, err = HashPassword(strings.Repeat("é", 40))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}
