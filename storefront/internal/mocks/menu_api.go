// Package mocks holds testify mocks for the storefront's collaborators.
package mocks

import (
	"context"

	"pavanxo/storefront/internal/menuclient"

	"github.com/stretchr/testify/mock"
)

type MenuAPI struct {
	mock.Mock
}

func NewMenuAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuAPI {
	m := &MenuAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MenuAPI) FetchMenu(ctx context.Context) ([]menuclient.Entry, error) {
	ret := _m.Called(ctx)
	var r0 []menuclient.Entry
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]menuclient.Entry)
	}
	return r0, ret.Error(1)
}

func (_m *MenuAPI) FetchPopular(ctx context.Context, limit int) ([]menuclient.PopularItem, error) {
	ret := _m.Called(ctx, limit)
	var r0 []menuclient.PopularItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]menuclient.PopularItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuAPI) SubmitContact(ctx context.Context, contact menuclient.Contact) (*menuclient.ContactReceipt, error) {
	ret := _m.Called(ctx, contact)
	var r0 *menuclient.ContactReceipt
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*menuclient.ContactReceipt)
	}
	return r0, ret.Error(1)
}

func (_m *MenuAPI) PlaceOrder(ctx context.Context, order menuclient.OrderRequest) (*menuclient.OrderReceipt, error) {
	ret := _m.Called(ctx, order)
	var r0 *menuclient.OrderReceipt
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*menuclient.OrderReceipt)
	}
	return r0, ret.Error(1)
}
