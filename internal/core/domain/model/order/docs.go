// Package order contains the Order aggregate of the pizzaria domain.
//
// Order is the aggregate root; it exclusively owns its line items and keeps
// the derived total price consistent with them across every mutation. The
// package also defines the Status value object implementing the order
// lifecycle state machine (pendente, aberto, fechado, cancelado).
//
// Invariants maintained by the aggregate:
//   - totalPrice always equals the sum of quantity * unitPrice over the
//     current line items, floored at zero
//   - line item quantities are always positive; a partial removal that would
//     drop a quantity to zero or below deletes the item instead
//   - items can only change while the order is in a non-terminal status
//   - no transition leaves fechado or cancelado
package order
