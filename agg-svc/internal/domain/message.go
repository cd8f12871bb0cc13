package domain

import "time"

const OrderCreated = "order_created"

type OrderLine struct {
	MenuItemID int `json:"menuItem"`
	Quantity   int `json:"quantity"`
}

// KafkaMessage mirrors the event menu-svc publishes after saving an order.
type KafkaMessage struct {
	Type        string      `json:"type"`
	OrderID     int         `json:"order_id"`
	Items       []OrderLine `json:"items"`
	TotalAmount float64     `json:"total_amount"`
	Timestamp   time.Time   `json:"timestamp"`
}
