package cart

import (
	"errors"
	"fmt"
)

const (
	MinQuantity = 1
	MaxQuantity = 10
)

var (
	ErrInvalidItem  = errors.New("invalid cart item")
	ErrItemNotFound = errors.New("cart item not found")
)

// Item is one cart entry. The JSON field names are the persisted format;
// MenuItemID is absent on entries written before checkout support.
type Item struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Price         int    `json:"price"`
	OriginalPrice int    `json:"originalPrice"`
	Quantity      int    `json:"quantity"`
	Image         string `json:"image"`
	MenuItemID    int    `json:"menuItemId,omitempty"`
}

func (i Item) Subtotal() int { return i.Price * i.Quantity }

func (i Item) Savings() int { return (i.OriginalPrice - i.Price) * i.Quantity }

func (i Item) validate() error {
	if i.Quantity < MinQuantity || i.Quantity > MaxQuantity {
		return fmt.Errorf("%w: quantity %d outside [%d,%d]", ErrInvalidItem, i.Quantity, MinQuantity, MaxQuantity)
	}
	if i.Price < 0 || i.Price > i.OriginalPrice {
		return fmt.Errorf("%w: price %d must be between 0 and original price %d", ErrInvalidItem, i.Price, i.OriginalPrice)
	}
	return nil
}

// Step applies delta to quantity. A result outside [MinQuantity, MaxQuantity]
// is rejected and the original quantity comes back with ok=false.
func Step(quantity, delta int) (int, bool) {
	next := quantity + delta
	if next < MinQuantity || next > MaxQuantity {
		return quantity, false
	}
	return next, true
}

func TotalCount(items []Item) int {
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return total
}

func TotalPrice(items []Item) int {
	total := 0
	for _, it := range items {
		total += it.Subtotal()
	}
	return total
}

func TotalSavings(items []Item) int {
	total := 0
	for _, it := range items {
		total += it.Savings()
	}
	return total
}
