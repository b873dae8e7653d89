package mocks

import (
	"context"

	cDomain "github.com/ridloal/go-stock-manager/internal/cart/domain"

	"github.com/stretchr/testify/mock"
)

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) ListItems(ctx context.Context) ([]cDomain.CartItem, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]cDomain.CartItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartRepository) ReplaceItems(ctx context.Context, items []cDomain.CartItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}
