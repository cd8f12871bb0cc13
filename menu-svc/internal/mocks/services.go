package mocks

import (
	"context"

	"pavanxo/menu-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MenuServiceInterface struct {
	mock.Mock
}

func NewMenuServiceInterface(t testingT) *MenuServiceInterface {
	m := &MenuServiceInterface{}
	register(&m.Mock, t)
	return m
}

func (_m *MenuServiceInterface) List(ctx context.Context) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx)
	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuServiceInterface) Create(ctx context.Context, item *domain.MenuItem) error {
	ret := _m.Called(ctx, item)
	return ret.Error(0)
}

func (_m *MenuServiceInterface) Popular(ctx context.Context, period string, limit int) ([]domain.PopularItem, error) {
	ret := _m.Called(ctx, period, limit)
	var r0 []domain.PopularItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.PopularItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuServiceInterface) DailyStats(ctx context.Context, date string) (domain.DailyStats, error) {
	ret := _m.Called(ctx, date)
	return ret.Get(0).(domain.DailyStats), ret.Error(1)
}

type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t testingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	register(&m.Mock, t)
	return m
}

func (_m *OrderServiceInterface) Create(ctx context.Context, order *domain.Order) error {
	ret := _m.Called(ctx, order)
	return ret.Error(0)
}

func (_m *OrderServiceInterface) Get(ctx context.Context, orderID int) (*domain.Order, error) {
	ret := _m.Called(ctx, orderID)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) GetQRCode(ctx context.Context, orderID int) ([]byte, error) {
	ret := _m.Called(ctx, orderID)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) QRLink(orderID int) string {
	ret := _m.Called(orderID)
	return ret.String(0)
}

type ContactServiceInterface struct {
	mock.Mock
}

func NewContactServiceInterface(t testingT) *ContactServiceInterface {
	m := &ContactServiceInterface{}
	register(&m.Mock, t)
	return m
}

func (_m *ContactServiceInterface) Submit(ctx context.Context, contact *domain.Contact) error {
	ret := _m.Called(ctx, contact)
	return ret.Error(0)
}
