package order

import (
	"errors"
	"fmt"

	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/pkg/errs"
	"pizzaria/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a pizza order. It is the aggregate root that exclusively
// owns its line items and manages the order lifecycle from creation through
// finalization or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owner
//   - totalPrice always equals the sum of Subtotal() over current items,
//     floored at zero
//   - Status transitions follow the Status state machine
//   - Items can only change while the status is non-terminal
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated mutation methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// ownerID references the user the order belongs to, immutable after creation
	ownerID kernel.UUID

	// items are the line items exclusively owned by this order
	items []*Item

	// totalPrice is the derived sum of item subtotals, never negative
	totalPrice float64

	// status is the current state in the order lifecycle
	status Status

	// version supports optimistic locking in the persistence layer
	version int

	// guard ensures the order was created via a factory function
	guard guard.ConstructorGuard
}

// RemovedItem summarizes the outcome of a RemoveItem call: which item was
// matched, how many units came off, the amount subtracted from the total,
// and whether the line item was deleted outright.
type RemovedItem struct {
	Flavor            string
	Size              string
	Quantity          int
	UnitPrice         float64
	Amount            float64
	Deleted           bool
	RemainingQuantity int
}

// NewOrder creates a new Order for the given owner with an initial set of
// line items. The status must be a valid non-terminal state (orders are
// never born fechado or cancelado). The total price is computed from the
// items' captured unit prices.
func NewOrder(id, ownerID kernel.UUID, status Status, items []*Item) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setInitialStatus(status),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.RecomputeTotal()
	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// preserving its persisted status (possibly terminal), total price and
// optimistic-lock version. The restored order behaves identically to one
// built through normal domain operations.
func RestoreOrder(
	id, ownerID kernel.UUID,
	status Status,
	items []*Item,
	totalPrice float64,
	version int,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setStatus(status),
		o.setItems(items),
		o.setTotalPrice(totalPrice),
	); err != nil {
		return nil, err
	}

	o.version = version
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the identifier of the user who owns the order.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TotalPrice returns the derived order total.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// Version returns the optimistic-lock version loaded from storage.
// Zero for orders that have not been persisted yet.
func (o *Order) Version() int {
	return o.version
}

// Items returns the order's line items.
// The returned slice is a copy to prevent external modification.
func (o *Order) Items() []*Item {
	out := make([]*Item, len(o.items))
	copy(out, o.items)
	return out
}

// AddItem appends a line item to the order and increments the total by the
// item's subtotal. Fails if the order is in a terminal status.
func (o *Order) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if err := o.status.ValidateItemsMutable(); err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.totalPrice += item.Subtotal()
	return nil
}

// RemoveItem removes quantity units of the first line item matching
// (flavor, size) case-insensitively.
//
// If quantity is greater than or equal to the item's quantity, the item is
// deleted entirely; otherwise its quantity is decremented. The amount
// removed is subtracted from the total, which is floored at zero. Fails if
// the order is terminal, the quantity is non-positive, or no item matches.
func (o *Order) RemoveItem(flavor, size string, quantity int) (RemovedItem, error) {
	if quantity <= 0 {
		return RemovedItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if err := o.status.ValidateItemsMutable(); err != nil {
		return RemovedItem{}, err
	}

	idx := o.findItemIndex(flavor, size)
	if idx < 0 {
		return RemovedItem{}, errs.NewObjectNotFoundError("item", fmt.Sprintf("%s/%s", flavor, size))
	}

	item := o.items[idx]
	removed := RemovedItem{
		Flavor:    item.Flavor(),
		Size:      item.Size(),
		UnitPrice: item.UnitPrice(),
	}

	if quantity >= item.Quantity() {
		removed.Quantity = item.Quantity()
		removed.Amount = item.Subtotal()
		removed.Deleted = true
		o.items = append(o.items[:idx], o.items[idx+1:]...)
	} else {
		removed.Quantity = quantity
		removed.Amount = float64(quantity) * item.UnitPrice()
		item.reduceQuantity(quantity)
		removed.RemainingQuantity = item.Quantity()
	}

	o.totalPrice -= removed.Amount
	if o.totalPrice < 0 {
		o.totalPrice = 0
	}

	return removed, nil
}

// Cancel transitions the order to Cancelado.
// Fails with an InvalidTransitionError when the order is already terminal.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Finalize transitions the order to Fechado.
// Fails with an InvalidTransitionError when the order is already terminal.
func (o *Order) Finalize() error {
	newStatus, err := o.status.Finalize()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// RecomputeTotal recanonicalizes totalPrice as the sum of quantity *
// unitPrice over all current line items, and returns the new total. Used as
// a consistency fallback next to the incremental updates performed by
// AddItem and RemoveItem.
func (o *Order) RecomputeTotal() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Subtotal()
	}

	o.totalPrice = total
	return total
}

// findItemIndex returns the index of the first item matching (flavor, size)
// case-insensitively, or -1 when none matches.
func (o *Order) findItemIndex(flavor, size string) int {
	for i, item := range o.items {
		if item.Matches(flavor, size) {
			return i
		}
	}
	return -1
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerID", err)
	}
	o.ownerID = ownerID
	return nil
}

// setInitialStatus validates the status for order creation: it must be a
// valid, non-terminal state.
func (o *Order) setInitialStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("an order cannot be created in %s status", status),
		)
	}

	o.status = status
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []*Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]*Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTotalPrice(totalPrice float64) error {
	if totalPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalPrice",
			fmt.Errorf("%.2f is negative", totalPrice),
		)
	}
	o.totalPrice = totalPrice
	return nil
}
