package service

import (
	"context"

	"pavanxo/menu-svc/internal/domain"
)

type MenuRepository interface {
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	GetMenuItems(ctx context.Context, ids []int) (map[int]domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, orderID int) (*domain.Order, error)
	SaveQRCode(ctx context.Context, orderID int, qr []byte) error
	GetQRCode(ctx context.Context, orderID int) ([]byte, error)
}

type ContactRepository interface {
	CreateContact(ctx context.Context, contact *domain.Contact) error
}

type MenuCache interface {
	GetMenu(ctx context.Context) ([]domain.MenuItem, bool, error)
	SetMenu(ctx context.Context, items []domain.MenuItem) error
	InvalidateMenu(ctx context.Context) error
}

// PopularityReader reads the tallies agg-svc maintains. TopOrdered returns
// ranked menu item ids with only ID and Ordered set; an empty day selects
// the all-time tally.
type PopularityReader interface {
	TopOrdered(ctx context.Context, day string, limit int) ([]domain.PopularItem, error)
	DailyStats(ctx context.Context, day string) (domain.DailyStats, error)
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, msg domain.KafkaMessage) error
}

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

type MenuServiceInterface interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	Create(ctx context.Context, item *domain.MenuItem) error
	Popular(ctx context.Context, period string, limit int) ([]domain.PopularItem, error)
	DailyStats(ctx context.Context, date string) (domain.DailyStats, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, order *domain.Order) error
	Get(ctx context.Context, orderID int) (*domain.Order, error)
	GetQRCode(ctx context.Context, orderID int) ([]byte, error)
	QRLink(orderID int) string
}

type ContactServiceInterface interface {
	Submit(ctx context.Context, contact *domain.Contact) error
}

var (
	_ MenuServiceInterface    = (*MenuService)(nil)
	_ OrderServiceInterface   = (*OrderService)(nil)
	_ ContactServiceInterface = (*ContactService)(nil)
)
