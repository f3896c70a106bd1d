package user

import (
	"errors"
	"fmt"
	"strings"

	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/pkg/errs"
	"pizzaria/internal/pkg/guard"
)

// ErrUserIsNotConstructed indicates that a User was not created through the
// NewUser or RestoreUser factory functions.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is the account aggregate. It carries the normalized credentials and
// the two authorization flags the access policy relies on.
type User struct {
	// id is the unique identifier for the user
	id kernel.UUID

	// name is the display name, trimmed
	name string

	// email is the login identity, lowercase, unique across users
	email string

	// passwordHash is the bcrypt hash of the password, never the plaintext
	passwordHash string

	// isActive marks whether the account can authenticate
	isActive bool

	// isAdmin grants access to every user's orders
	isAdmin bool

	// guard ensures the user was created via a factory function
	guard guard.ConstructorGuard
}

// NewUser creates an account with the given credentials. New accounts start
// active; admin status is granted explicitly at registration time. The email
// is trimmed and lowercased, making it the canonical form for the uniqueness
// constraint enforced by the persistence layer.
func NewUser(id kernel.UUID, name, email, passwordHash string, isAdmin bool) (*User, error) {
	u := &User{
		isActive: true,
		isAdmin:  isAdmin,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User aggregate from persistent storage,
// preserving its stored activation and admin flags.
func RestoreUser(id kernel.UUID, name, email, passwordHash string, isActive, isAdmin bool) (*User, error) {
	u := &User{
		isActive: isActive,
		isAdmin:  isAdmin,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the lowercase login email.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// IsActive reports whether the account can authenticate.
func (u *User) IsActive() bool {
	return u.isActive
}

// IsAdmin reports whether the account has administrative access.
func (u *User) IsAdmin() bool {
	return u.isAdmin
}

// Deactivate marks the account as unable to authenticate.
func (u *User) Deactivate() {
	u.isActive = false
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	u.name = name
	return nil
}

// setEmail normalizes the email to its canonical lowercase form. Structural
// validation is intentionally shallow: the mailbox check belongs to delivery,
// not registration.
func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if at := strings.Index(email, "@"); at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"email",
			fmt.Errorf("%q is not a valid email address", email),
		)
	}

	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}

	u.passwordHash = passwordHash
	return nil
}
