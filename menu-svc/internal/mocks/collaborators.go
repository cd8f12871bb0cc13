package mocks

import (
	"context"

	"pavanxo/menu-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MenuCache struct {
	mock.Mock
}

func NewMenuCache(t testingT) *MenuCache {
	m := &MenuCache{}
	register(&m.Mock, t)
	return m
}

func (_m *MenuCache) GetMenu(ctx context.Context) ([]domain.MenuItem, bool, error) {
	ret := _m.Called(ctx)
	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	return r0, ret.Bool(1), ret.Error(2)
}

func (_m *MenuCache) SetMenu(ctx context.Context, items []domain.MenuItem) error {
	ret := _m.Called(ctx, items)
	return ret.Error(0)
}

func (_m *MenuCache) InvalidateMenu(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

type PopularityReader struct {
	mock.Mock
}

func NewPopularityReader(t testingT) *PopularityReader {
	m := &PopularityReader{}
	register(&m.Mock, t)
	return m
}

func (_m *PopularityReader) TopOrdered(ctx context.Context, day string, limit int) ([]domain.PopularItem, error) {
	ret := _m.Called(ctx, day, limit)
	var r0 []domain.PopularItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.PopularItem)
	}
	return r0, ret.Error(1)
}

func (_m *PopularityReader) DailyStats(ctx context.Context, day string) (domain.DailyStats, error) {
	ret := _m.Called(ctx, day)
	return ret.Get(0).(domain.DailyStats), ret.Error(1)
}

type OrderPublisher struct {
	mock.Mock
}

func NewOrderPublisher(t testingT) *OrderPublisher {
	m := &OrderPublisher{}
	register(&m.Mock, t)
	return m
}

func (_m *OrderPublisher) PublishOrder(ctx context.Context, msg domain.KafkaMessage) error {
	ret := _m.Called(ctx, msg)
	return ret.Error(0)
}

type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	register(&m.Mock, t)
	return m
}

func (_m *QRGenerator) Generate(orderID int) ([]byte, error) {
	ret := _m.Called(orderID)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}
