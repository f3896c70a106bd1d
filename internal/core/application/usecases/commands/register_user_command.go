package commands

import (
	"errors"
	"strings"

	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/pkg/errs"
	"pizzaria/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a request to create an account. The
// password arrives already hashed; the HTTP layer owns the bcrypt work so
// plaintext never crosses the application boundary.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID       kernel.UUID
	name         string
	email        string
	passwordHash string
	isAdmin      bool

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new account.
func NewRegisterUserCommand(
	userID kernel.UUID,
	name, email, passwordHash string,
	isAdmin bool,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		isAdmin: isAdmin,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPasswordHash(passwordHash),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier for the new account.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the display name.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Email returns the login email as supplied; the aggregate normalizes it.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// PasswordHash returns the bcrypt hash of the password.
func (c RegisterUserCommand) PasswordHash() string {
	return c.passwordHash
}

// IsAdmin reports whether the account is registered with admin access.
func (c RegisterUserCommand) IsAdmin() bool {
	return c.isAdmin
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}

	c.passwordHash = passwordHash
	return nil
}
