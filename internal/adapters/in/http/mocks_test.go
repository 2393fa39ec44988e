package http_test

import (
	"context"

	"tableorders/internal/core/application/usecases/commands"
	"tableorders/internal/core/application/usecases/queries"
	"tableorders/internal/core/domain/model/order"
	"tableorders/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrderHandler struct {
	mock.Mock
}

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockUpdateOrderStatusHandler struct {
	mock.Mock
}

func (m *MockUpdateOrderStatusHandler) Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockConfirmOrderHandler struct {
	mock.Mock
}

func (m *MockConfirmOrderHandler) Handle(ctx context.Context, cmd commands.ConfirmOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockDeleteOrderHandler struct {
	mock.Mock
}

func (m *MockDeleteOrderHandler) Handle(ctx context.Context, cmd commands.DeleteOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrdersByStatusHandler struct {
	mock.Mock
}

func (m *MockOrdersByStatusHandler) Handle(ctx context.Context, query queries.GetOrdersByStatusQuery) ([]queries.OrderResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OrderResponse), args.Error(1)
}

type MockOrdersCreatedSinceHandler struct {
	mock.Mock
}

func (m *MockOrdersCreatedSinceHandler) Handle(ctx context.Context, query queries.GetOrdersCreatedSinceQuery) ([]queries.OrderResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OrderResponse), args.Error(1)
}

type MockIdentityVerifier struct {
	mock.Mock
}

func (m *MockIdentityVerifier) Verify(ctx context.Context, credential string) (ports.Principal, error) {
	args := m.Called(ctx, credential)
	return args.Get(0).(ports.Principal), args.Error(1)
}

type MockRoleAuthorizer struct {
	mock.Mock
}

func (m *MockRoleAuthorizer) AuthorizeStaff(principal ports.Principal) error {
	args := m.Called(principal)
	return args.Error(0)
}
