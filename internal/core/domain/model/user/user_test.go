package user_test

import (
	"testing"

	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/core/domain/model/user"
	"pizzaria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create an active non-admin user", func(t *testing.T) {
		u, err := user.NewUser(validID, "Maria", "maria@pizzaria.dev", "$2a$10$hash", false)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.True(t, u.ID().IsEqual(validID))
		assert.Equal(t, "Maria", u.Name())
		assert.Equal(t, "maria@pizzaria.dev", u.Email())
		assert.Equal(t, "$2a$10$hash", u.PasswordHash())
		assert.True(t, u.IsActive())
		assert.False(t, u.IsAdmin())
	})

	t.Run("should grant admin when requested", func(t *testing.T) {
		u, err := user.NewUser(validID, "Admin", "admin@pizzaria.dev", "$2a$10$hash", true)

		require.NoError(t, err)
		assert.True(t, u.IsAdmin())
	})

	t.Run("should lowercase and trim the email", func(t *testing.T) {
		u, err := user.NewUser(validID, "Maria", "  Maria@Pizzaria.DEV ", "$2a$10$hash", false)

		require.NoError(t, err)
		assert.Equal(t, "maria@pizzaria.dev", u.Email())
	})

	t.Run("should fail with an empty name", func(t *testing.T) {
		u, err := user.NewUser(validID, "  ", "maria@pizzaria.dev", "$2a$10$hash", false)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, u)
	})

	t.Run("should fail with a malformed email", func(t *testing.T) {
		for _, email := range []string{"", "plainaddress", "@pizzaria.dev", "maria@"} {
			u, err := user.NewUser(validID, "Maria", email, "$2a$10$hash", false)

			require.Error(t, err)
			assert.Nil(t, u)
		}
	})

	t.Run("should fail with an empty password hash", func(t *testing.T) {
		u, err := user.NewUser(validID, "Maria", "maria@pizzaria.dev", "", false)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, u)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var emptyID kernel.UUID

		u, err := user.NewUser(emptyID, "", "", "", false)

		require.Error(t, err)
		assert.Nil(t, u)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "passwordHash")
	})
}

func TestRestoreUser(t *testing.T) {
	t.Run("should restore flags as persisted", func(t *testing.T) {
		u, err := user.RestoreUser(kernel.NewUUID(), "Maria", "maria@pizzaria.dev", "$2a$10$hash", false, true)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.False(t, u.IsActive())
		assert.True(t, u.IsAdmin())
	})
}

func TestUser_Deactivate(t *testing.T) {
	u, err := user.NewUser(kernel.NewUUID(), "Maria", "maria@pizzaria.dev", "$2a$10$hash", false)
	require.NoError(t, err)

	u.Deactivate()

	assert.False(t, u.IsActive())
}

func TestUser_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var u user.User

		require.Error(t, u.Validate())
	})

	t.Run("nil user fails validation", func(t *testing.T) {
		var u *user.User

		err := u.Validate()

		require.Error(t, err)
		assert.Equal(t, user.ErrUserIsNotConstructed, err)
	})
}
