package domain

import "time"

const (
	OrderStatusPending  = "pending"
	OrderStatusReceived = "received"
)

type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// OrderLine references a menu item by id; MenuItemID travels as "menuItem".
type OrderLine struct {
	MenuItemID int `json:"menuItem"`
	Quantity   int `json:"quantity"`
}

type Order struct {
	ID          int         `json:"id"`
	Items       []OrderLine `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	Status      string      `json:"status"`
	QRCode      string      `json:"qrCode,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

type Contact struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type PopularItem struct {
	MenuItem
	Ordered int `json:"ordered"`
}

// DailyStats is the per-day order tally kept by agg-svc. Date is YYYY-MM-DD in UTC.
type DailyStats struct {
	Date    string  `json:"date"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type KafkaMessage struct {
	Type        string      `json:"type"`
	OrderID     int         `json:"order_id"`
	Items       []OrderLine `json:"items"`
	TotalAmount float64     `json:"total_amount"`
	Timestamp   time.Time   `json:"timestamp"`
}
