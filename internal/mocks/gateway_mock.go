// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/cart-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) FetchCart(ctx context.Context) (*model.CartData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartData), args.Error(1)
}

func (m *MockGateway) AddItem(ctx context.Context, productID int64, quantity int) (*model.CartData, error) {
	args := m.Called(ctx, productID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartData), args.Error(1)
}

func (m *MockGateway) UpdateItem(ctx context.Context, lineID int64, quantity int) (*model.CartData, error) {
	args := m.Called(ctx, lineID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartData), args.Error(1)
}

func (m *MockGateway) RemoveItem(ctx context.Context, lineID int64) (*model.CartData, error) {
	args := m.Called(ctx, lineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartData), args.Error(1)
}
