package core

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Category is one of the four fixed catalog groupings. Each category carries
// a fixed discount percentage and a display label; both are baked in at item
// creation and never change afterwards.
type Category string

const (
	Dairy           Category = "Dairy"
	FrozenVeggies   Category = "FrozenVeggies"
	Fruits          Category = "Fruits"
	CookingMaterial Category = "CookingMaterial"
)

// Categories returns the closed category set in menu order.
func Categories() []Category {
	return []Category{Dairy, FrozenVeggies, Fruits, CookingMaterial}
}

func (c Category) valid() bool {
	switch c {
	case Dairy, FrozenVeggies, Fruits, CookingMaterial:
		return true
	}
	return false
}

// Label is the category name as persisted and displayed.
func (c Category) Label() string {
	switch c {
	case FrozenVeggies:
		return "Frozen Veggies"
	case CookingMaterial:
		return "Cooking Material"
	}
	return string(c)
}

// DiscountPercent is the fixed discount rate for the category.
func (c Category) DiscountPercent() decimal.Decimal {
	switch c {
	case Dairy:
		return decimal.NewFromInt(10)
	case FrozenVeggies:
		return decimal.NewFromInt(15)
	case Fruits:
		return decimal.NewFromInt(5)
	case CookingMaterial:
		return decimal.NewFromInt(20)
	}
	return decimal.Zero
}

// ParseCategory resolves a persisted/displayed label to its category.
func ParseCategory(label string) (Category, error) {
	for _, c := range Categories() {
		if label == c.Label() {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", label)
}

// ErrNotFound is returned when no item with the requested id exists.
var ErrNotFound = errors.New("item not found")

// InsufficientStockError rejects a stock reduction larger than the current
// quantity on hand. The failed reduction leaves stock unchanged.
type InsufficientStockError struct {
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: requested %d, available %d", e.Requested, e.Available)
}

// Item is one stock-keeping unit of the catalog. ID uniqueness is not
// enforced; the store resolves duplicate ids to the first match.
type Item struct {
	ID       int
	Name     string
	Category Category
	Price    decimal.Decimal
	Quantity int
}

// NewItem builds an item, deriving the discount from the category.
// It fails only when the category is not one of the four recognized values.
func NewItem(id int, name string, price decimal.Decimal, qty int, category Category) (Item, error) {
	if !category.valid() {
		return Item{}, fmt.Errorf("invalid category %q", category)
	}
	return Item{ID: id, Name: name, Category: category, Price: price, Quantity: qty}, nil
}

// FinalPrice is the unit price after the category discount, before tax.
// No rounding is applied until display time.
func (i *Item) FinalPrice() decimal.Decimal {
	discount := i.Category.DiscountPercent().Div(decimal.NewFromInt(100))
	return i.Price.Mul(decimal.NewFromInt(1).Sub(discount))
}

// ReduceStock decrements the quantity on hand by qty. Reductions beyond the
// current stock fail with InsufficientStockError; callers normally pre-check
// availability and surface their own message.
func (i *Item) ReduceStock(qty int) error {
	if qty > i.Quantity {
		return &InsufficientStockError{Requested: qty, Available: i.Quantity}
	}
	i.Quantity -= qty
	return nil
}

// Edit replaces the three mutable fields. Category and discount are fixed
// for the life of the item.
func (i *Item) Edit(name string, price decimal.Decimal, qty int) {
	i.Name = name
	i.Price = price
	i.Quantity = qty
}
