package services

import (
	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/pkg/errs"
)

// Actor is the authenticated principal performing an operation, extracted
// from the access token by the HTTP layer.
type Actor struct {
	// ID is the authenticated user's identifier
	ID kernel.UUID

	// IsAdmin grants access to every user's orders
	IsAdmin bool
}

// Validate checks that the actor carries a usable identity.
func (a Actor) Validate() error {
	if err := a.ID.Validate(); err != nil {
		return errs.NewAuthRequiredErrorWithCause(err)
	}
	return nil
}

// AccessPolicy decides which actor may perform which order operation.
//
// The rules are uniform: administrators may operate on any order, regular
// users only on orders they own. Finalizing and listing every order are
// admin-only. The policy returns a PermissionDeniedError on refusal; the
// distinction from a missing/invalid token (AuthRequired) is made earlier,
// by the HTTP auth middleware.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanCreateFor checks whether the actor may create an order owned by
// ownerID. Regular users may only create orders for themselves.
func (p AccessPolicy) CanCreateFor(actor Actor, ownerID kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if !actor.IsAdmin && !actor.ID.IsEqual(ownerID) {
		return errs.NewPermissionDeniedError("create an order for another user")
	}
	return nil
}

// CanAccess checks whether the actor may read or mutate the order owned by
// ownerID. Covers reading a single order, cancelling it, and adding or
// removing items.
func (p AccessPolicy) CanAccess(actor Actor, ownerID kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if !actor.IsAdmin && !actor.ID.IsEqual(ownerID) {
		return errs.NewPermissionDeniedError("access another user's order")
	}
	return nil
}

// CanFinalize checks whether the actor may finalize orders. Admin-only.
func (p AccessPolicy) CanFinalize(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if !actor.IsAdmin {
		return errs.NewPermissionDeniedError("finalize an order")
	}
	return nil
}

// CanListAll checks whether the actor may list every user's orders.
// Admin-only; regular users list their own orders instead.
func (p AccessPolicy) CanListAll(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if !actor.IsAdmin {
		return errs.NewPermissionDeniedError("list all orders")
	}
	return nil
}
