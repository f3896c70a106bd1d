package order

import (
	"errors"
	"fmt"
	"strings"

	"pizzaria/internal/core/domain/model/kernel"
	"pizzaria/internal/pkg/errs"
	"pizzaria/internal/pkg/guard"
)

// ErrItemIsNotConstructed indicates that an Item was not created through the
// NewItem constructor.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line item owned exclusively by an Order. It captures the unit
// price at creation time, so historical orders are immune to later catalog
// price changes.
//
// Identity within an order is the (flavor, size) pair, matched
// case-insensitively. Multiple items with the same pair may coexist; removal
// matches the first one found.
type Item struct {
	// id uniquely identifies the line item
	id kernel.UUID

	// flavor is the pizza flavor, trimmed, matched case-insensitively
	flavor string

	// size is the pizza size, trimmed, matched case-insensitively
	size string

	// quantity is the number of units, always positive
	quantity int

	// unitPrice is the price per unit captured at creation, never negative
	unitPrice float64

	// guard ensures the item was properly constructed
	guard guard.ConstructorGuard
}

// NewItem creates a line item with the given flavor, size, quantity and
// captured unit price. All parameters are validated; validation errors are
// aggregated. Also used when restoring items from persistence, since an
// item carries no state beyond its constructor parameters.
func NewItem(id kernel.UUID, flavor, size string, quantity int, unitPrice float64) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setFlavor(flavor),
		item.setSize(size),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// Validate ensures the Item instance was properly constructed via NewItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Flavor returns the pizza flavor.
func (i *Item) Flavor() string {
	return i.flavor
}

// Size returns the pizza size.
func (i *Item) Size() string {
	return i.size
}

// Quantity returns the number of units. Always positive.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the unit price captured when the item was created.
func (i *Item) UnitPrice() float64 {
	return i.unitPrice
}

// Subtotal returns quantity * unitPrice, re-derived on every call.
func (i *Item) Subtotal() float64 {
	return float64(i.quantity) * i.unitPrice
}

// Matches reports whether the item's (flavor, size) pair equals the given
// pair, compared case-insensitively after trimming.
func (i *Item) Matches(flavor, size string) bool {
	return strings.EqualFold(i.flavor, strings.TrimSpace(flavor)) &&
		strings.EqualFold(i.size, strings.TrimSpace(size))
}

// reduceQuantity decrements the quantity by the given amount.
// The caller (the owning Order) guarantees 0 < by < quantity; an item whose
// quantity would drop to zero or below is deleted by the aggregate instead.
func (i *Item) reduceQuantity(by int) {
	i.quantity -= by
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	i.id = id
	return nil
}

func (i *Item) setFlavor(flavor string) error {
	flavor = strings.TrimSpace(flavor)
	if flavor == "" {
		return errs.NewValueIsRequiredError("flavor")
	}

	i.flavor = flavor
	return nil
}

func (i *Item) setSize(size string) error {
	size = strings.TrimSpace(size)
	if size == "" {
		return errs.NewValueIsRequiredError("size")
	}

	i.size = size
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%.2f is negative", unitPrice),
		)
	}

	i.unitPrice = unitPrice
	return nil
}
