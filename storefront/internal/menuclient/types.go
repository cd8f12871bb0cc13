package menuclient

import (
	"math"
	"strings"
	"time"

	"pavanxo/storefront/internal/cart"
)

const DiscountRate = 0.10

type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// Entry is a menu item ready to be shown and added to the cart.
type Entry struct {
	MenuItem
	DiscountedPrice int
}

func NewEntry(item MenuItem) Entry {
	return Entry{MenuItem: item, DiscountedPrice: Discount(item.Price)}
}

// Discount applies the flat menu discount, rounding halves up.
func Discount(price float64) int {
	return int(math.Round(price * (1 - DiscountRate)))
}

// CartItem hands the entry to the cart with the chosen quantity.
func (e Entry) CartItem(quantity int) cart.Item {
	return cart.Item{
		Name:          e.Name,
		Price:         e.DiscountedPrice,
		OriginalPrice: int(math.Round(e.Price)),
		Quantity:      quantity,
		Image:         e.Image,
		MenuItemID:    e.ID,
	}
}

// FilterCategory keeps entries whose category matches, ignoring case.
// "all" or an empty category keeps everything.
func FilterCategory(entries []Entry, category string) []Entry {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, "all") {
		return entries
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if strings.EqualFold(e.Category, category) {
			out = append(out, e)
		}
	}
	return out
}

type PopularItem struct {
	MenuItem
	Ordered int `json:"ordered"`
}

type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ContactReceipt struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type OrderLine struct {
	MenuItem int `json:"menuItem"`
	Quantity int `json:"quantity"`
}

type OrderRequest struct {
	Items       []OrderLine `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	Status      string      `json:"status"`
}

type OrderReceipt struct {
	ID          int         `json:"id"`
	Items       []OrderLine `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	Status      string      `json:"status"`
	QRCode      string      `json:"qrCode"`
	CreatedAt   time.Time   `json:"createdAt"`
}
