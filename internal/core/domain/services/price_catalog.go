package services

import (
	"errors"
	"fmt"
	"strings"

	"pizzaria/internal/pkg/errs"
	"pizzaria/internal/pkg/guard"
)

// ErrPriceCatalogIsNotConstructed indicates that a PriceCatalog was not
// created through the NewPriceCatalog or NewDefaultPriceCatalog factory
// functions.
var ErrPriceCatalogIsNotConstructed = errors.New("PriceCatalog must be created via NewPriceCatalog constructor")

// CatalogEntry is one priced (flavor, size) combination of the menu.
type CatalogEntry struct {
	Flavor string
	Size   string
	Price  float64
}

// PriceCatalog resolves the unit price for a (flavor, size) combination.
//
// The catalog is immutable after construction and is injected wherever item
// prices are captured, so every price an order records can be traced back to
// exactly one menu table. Lookups trim and case-fold both keys; an unknown
// combination is a client error, not a system failure.
type PriceCatalog struct {
	// prices maps the normalized "flavor/size" key to the unit price
	prices map[string]float64

	// guard ensures the catalog was created via a factory function
	guard guard.ConstructorGuard
}

// NewPriceCatalog creates a catalog from the given entries. Entries are
// validated and normalized; duplicate (flavor, size) combinations and
// negative prices are rejected.
func NewPriceCatalog(entries []CatalogEntry) (*PriceCatalog, error) {
	if len(entries) == 0 {
		return nil, errs.NewValueIsRequiredError("entries")
	}

	prices := make(map[string]float64, len(entries))
	for _, entry := range entries {
		flavor := strings.ToLower(strings.TrimSpace(entry.Flavor))
		size := strings.ToLower(strings.TrimSpace(entry.Size))

		if flavor == "" {
			return nil, errs.NewValueIsRequiredError("flavor")
		}
		if size == "" {
			return nil, errs.NewValueIsRequiredError("size")
		}
		if entry.Price < 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"price",
				fmt.Errorf("%.2f is negative", entry.Price),
			)
		}

		key := catalogKey(flavor, size)
		if _, exists := prices[key]; exists {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"entries",
				fmt.Errorf("duplicate entry for %s %s", flavor, size),
			)
		}

		prices[key] = entry.Price
	}

	return &PriceCatalog{
		prices: prices,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewDefaultPriceCatalog creates the standard menu.
func NewDefaultPriceCatalog() *PriceCatalog {
	catalog, err := NewPriceCatalog([]CatalogEntry{
		{Flavor: "calabresa", Size: "pequeno", Price: 28.0},
		{Flavor: "calabresa", Size: "medio", Price: 40.0},
		{Flavor: "calabresa", Size: "grande", Price: 50.0},
		{Flavor: "marguerita", Size: "pequeno", Price: 32.0},
		{Flavor: "marguerita", Size: "medio", Price: 44.0},
		{Flavor: "marguerita", Size: "grande", Price: 55.0},
		{Flavor: "portuguesa", Size: "pequeno", Price: 35.0},
		{Flavor: "portuguesa", Size: "medio", Price: 48.0},
		{Flavor: "portuguesa", Size: "grande", Price: 60.0},
		{Flavor: "quatro queijos", Size: "pequeno", Price: 38.0},
		{Flavor: "quatro queijos", Size: "medio", Price: 52.0},
		{Flavor: "quatro queijos", Size: "grande", Price: 65.0},
	})
	if err != nil {
		// The default menu is a compile-time constant; failing to build it
		// is a programming error.
		panic(err)
	}

	return catalog
}

// Validate ensures the catalog was properly constructed.
func (c *PriceCatalog) Validate() error {
	if c == nil {
		return ErrPriceCatalogIsNotConstructed
	}
	return c.guard.Validate(ErrPriceCatalogIsNotConstructed)
}

// PriceFor resolves the unit price for the given flavor and size, matched
// case-insensitively after trimming. An unknown combination returns a
// ValueIsInvalidError.
func (c *PriceCatalog) PriceFor(flavor, size string) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	key := catalogKey(
		strings.ToLower(strings.TrimSpace(flavor)),
		strings.ToLower(strings.TrimSpace(size)),
	)

	price, ok := c.prices[key]
	if !ok {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"item",
			fmt.Errorf("%s %s is not on the menu", strings.TrimSpace(flavor), strings.TrimSpace(size)),
		)
	}

	return price, nil
}

func catalogKey(flavor, size string) string {
	return flavor + "/" + size
}
