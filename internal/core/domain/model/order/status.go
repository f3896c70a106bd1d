package order

import (
	"fmt"
	"strings"

	"pizzaria/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Pendente ──┬──> Fechado
//	           ├──> Cancelado
//	Aberto   ──┬──> Fechado
//	           └──> Cancelado
//
// Fechado and Cancelado are terminal: no transition leaves them, and orders
// in those states no longer accept item changes.
//
// Status is a value object; all comparison and serialization goes through
// String and StatusFromString so the wire/database literal has exactly one
// normalization point.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pendente is the default initial status: the order is drafted but not
	// yet opened.
	Pendente

	// Aberto is an open order, actively accepting item changes.
	Aberto

	// Fechado is a finalized order. Terminal.
	Fechado

	// Cancelado is a cancelled order. Terminal.
	Cancelado
)

// getStatusStrings returns a map of Status values to their wire literals.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pendente:  "pendente",
		Aberto:    "aberto",
		Fechado:   "fechado",
		Cancelado: "cancelado",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pendente:  "pendente",
		Aberto:    "aberto",
		Fechado:   "fechado",
		Cancelado: "cancelado",
	}
}

// StatusFromString parses a status literal after trimming and case-folding.
// This is the single normalization point for statuses arriving from the API
// or from persistence. Returns a ValueIsInvalidError for unknown literals.
func StatusFromString(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of the four valid states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase literal of the status ("pendente", "aberto",
// "fechado", "cancelado"). Invalid values yield "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Fechado || s == Cancelado
}

// ValidateItemsMutable checks that the order still accepts item changes.
// Items may only be added or removed while the order is non-terminal.
func (s Status) ValidateItemsMutable() error {
	if s.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s order no longer accepts item changes", s),
		)
	}
	return s.Validate()
}

// Cancel transitions the status to Cancelado.
//
// Valid transitions:
//   - Pendente -> Cancelado
//   - Aberto -> Cancelado
//
// Returns an InvalidTransitionError when the order is already terminal.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Cancelado.String())
	}

	return Cancelado, nil
}

// Finalize transitions the status to Fechado.
//
// Valid transitions:
//   - Pendente -> Fechado
//   - Aberto -> Fechado
//
// Returns an InvalidTransitionError when the order is already terminal,
// including a finalize attempt on an already fechado order.
func (s Status) Finalize() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Fechado.String())
	}

	return Fechado, nil
}
