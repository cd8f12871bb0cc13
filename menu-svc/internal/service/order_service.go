package service

import (
	"context"
	"fmt"
	"time"

	"pavanxo/menu-svc/internal/domain"

	"go.uber.org/zap"
)

type OrderService struct {
	repo      OrderRepository
	qrEncoder QRGenerator
	publisher OrderPublisher
	logger    *zap.Logger
}

func NewOrderService(repo OrderRepository, qr QRGenerator, publisher OrderPublisher, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{repo: repo, qrEncoder: qr, publisher: publisher, logger: logger}
}

func validateOrder(order *domain.Order) error {
	if len(order.Items) == 0 {
		return fmt.Errorf("%w: items are required", ErrInvalidOrder)
	}
	for i, line := range order.Items {
		if line.MenuItemID <= 0 {
			return fmt.Errorf("%w: items[%d].menuItem is required", ErrInvalidOrder, i)
		}
		if line.Quantity < 1 {
			return fmt.Errorf("%w: items[%d].quantity must be at least 1", ErrInvalidOrder, i)
		}
	}
	if order.TotalAmount <= 0 {
		return fmt.Errorf("%w: totalAmount must be positive", ErrInvalidOrder)
	}
	return nil
}

func (s *OrderService) Create(ctx context.Context, order *domain.Order) error {
	if err := validateOrder(order); err != nil {
		return err
	}
	if order.Status == "" {
		order.Status = domain.OrderStatusPending
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return fmt.Errorf("save order: %w", err)
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err != nil {
			s.logger.Warn("qr generation failed", zap.Int("order_id", order.ID), zap.Error(err))
		} else if err := s.repo.SaveQRCode(ctx, order.ID, qr); err != nil {
			s.logger.Warn("qr save failed", zap.Int("order_id", order.ID), zap.Error(err))
		}
	}

	if s.publisher != nil {
		msg := domain.KafkaMessage{
			Type:        "order_created",
			OrderID:     order.ID,
			Items:       order.Items,
			TotalAmount: order.TotalAmount,
			Timestamp:   time.Now().UTC(),
		}
		if err := s.publisher.PublishOrder(ctx, msg); err != nil {
			s.logger.Warn("order event not published", zap.Int("order_id", order.ID), zap.Error(err))
		}
	}

	return nil
}

func (s *OrderService) Get(ctx context.Context, orderID int) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.QRCode = s.QRLink(order.ID)
	return order, nil
}

// GetQRCode regenerates and stores the code when an order has none yet.
func (s *OrderService) GetQRCode(ctx context.Context, orderID int) ([]byte, error) {
	qr, err := s.repo.GetQRCode(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		regenerated, err := s.qrEncoder.Generate(orderID)
		if err != nil {
			return nil, fmt.Errorf("generate qr code: %w", err)
		}
		if err := s.repo.SaveQRCode(ctx, orderID, regenerated); err != nil {
			s.logger.Warn("qr save failed", zap.Int("order_id", orderID), zap.Error(err))
		}
		return regenerated, nil
	}
	return qr, nil
}

func (s *OrderService) QRLink(orderID int) string {
	return fmt.Sprintf("/api/orders/%d/qrcode", orderID)
}
