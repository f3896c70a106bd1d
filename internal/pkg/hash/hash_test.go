package hash_test

import (
	"testing"

	"pizzaria/internal/pkg/hash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run("hash verifies against original password", func(t *testing.T) {
		hashed, err := hash.HashPassword("minhaSenha123")

		require.NoError(t, err)
		require.NotEmpty(t, hashed)
		assert.NotEqual(t, "minhaSenha123", hashed)
		assert.True(t, hash.CheckPassword(hashed, "minhaSenha123"))
	})

	t.Run("wrong password does not verify", func(t *testing.T) {
		hashed, err := hash.HashPassword("minhaSenha123")

		require.NoError(t, err)
		assert.False(t, hash.CheckPassword(hashed, "outraSenha"))
	})

	t.Run("garbage hash does not verify", func(t *testing.T) {
		assert.False(t, hash.CheckPassword("not-a-bcrypt-hash", "minhaSenha123"))
	})
}
