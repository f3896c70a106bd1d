// Package user contains the User aggregate.
//
// A user owns orders and authenticates with an email and password pair. The
// email is normalized to lowercase on the way in and is unique across the
// system; the password is stored only as a bcrypt hash computed outside the
// domain model. Administrators may operate on any user's orders, regular
// users only on their own.
package user
