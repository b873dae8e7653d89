package service

import (
	"context"
	"testing"

	cDomain "github.com/ridloal/go-stock-manager/internal/cart/domain"
	cRepo "github.com/ridloal/go-stock-manager/internal/cart/repository"
	cartMocks "github.com/ridloal/go-stock-manager/internal/cart/repository/mocks"
	pDomain "github.com/ridloal/go-stock-manager/internal/catalog/domain"
	pRepo "github.com/ridloal/go-stock-manager/internal/catalog/repository"
	catalogMocks "github.com/ridloal/go-stock-manager/internal/catalog/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

var catalogFixture = []pDomain.Product{
	{ID: "1", Name: "Widget", Price: 2.5, Quantity: 10},
	{ID: "2", Name: "Gadget", Price: 9.99, Quantity: 3},
}

func TestCartService_CreateCart(t *testing.T) {
	ctx := context.TODO()
	mockCart := new(cartMocks.MockCartRepository)
	mockCatalog := new(catalogMocks.MockProductRepository)
	service := NewCartService(mockCart, mockCatalog)

	mockCart.On("ReplaceItems", ctx, []cDomain.CartItem{}).Return(nil).Once()

	err := service.CreateCart(ctx)

	assert.NoError(t, err)
	mockCart.AssertExpectations(t)
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.TODO()

	t.Run("Missing product id", func(t *testing.T) {
		mockCart := new(cartMocks.MockCartRepository)
		mockCatalog := new(catalogMocks.MockProductRepository)
		service := NewCartService(mockCart, mockCatalog)

		_, err := service.AddItem(ctx, AddItemRequest{Quantity: intPtr(1)})

		assert.ErrorIs(t, err, ErrMissingProductID)
	})

	t.Run("Missing quantity", func(t *testing.T) {
		mockCart := new(cartMocks.MockCartRepository)
		mockCatalog := new(catalogMocks.MockProductRepository)
		service := NewCartService(mockCart, mockCatalog)

		_, err := service.AddItem(ctx, AddItemRequest{ProductID: "1"})

		assert.ErrorIs(t, err, ErrMissingQuantity)
	})

	t.Run("Unknown product", func(t *testing.T) {
		mockCart := new(cartMocks.MockCartRepository)
		mockCatalog := new(catalogMocks.MockProductRepository)
		service := NewCartService(mockCart, mockCatalog)

		mockCatalog.On("ListProducts", ctx).Return(catalogFixture, nil).Once()

		_, err := service.AddItem(ctx, AddItemRequest{ProductID: "404", Quantity: intPtr(1)})

		assert.ErrorIs(t, err, pRepo.ErrProductNotFound)
		mockCart.AssertNotCalled(t, "ReplaceItems", mock.Anything, mock.Anything)
	})

	t.Run("Requesting exactly the available stock succeeds", func(t *testing.T) {
		mockCart := new(cartMocks.MockCartRepository)
		mockCatalog := new(catalogMocks.MockProductRepository)
		service := NewCartService(mockCart, mockCatalog)

		mockCatalog.On("ListProducts", ctx).Return(catalogFixture, nil).Once()
		mockCart.On("ListItems", ctx).Return([]cDomain.CartItem{}, nil).Once()
		mockCart.On("ReplaceItems", ctx, mock.MatchedBy(func(items []cDomain.CartItem) bool {
			return len(items) == 1 && items[0].ID == "2" && items[0].Quantity == 3
		})).Return(nil).Once()

		item, err := service.AddItem(ctx, AddItemRequest{ProductID: "2", Quantity: intPtr(3)})

		assert.NoError(t, err)
		assert.Equal(t, "Gadget", item.Name)
		mockCart.AssertExpectations(t)
	})

	t.Run("One more than available fails and cart is untouched", func(t *testing.T) {
		mockCart := new(cartMocks.MockCartRepository)
		mockCatalog := new(catalogMocks.MockProductRepository)
		service := NewCartService(mockCart, mockCatalog)

		mockCatalog.On("ListProducts", ctx).Return(catalogFixture, nil).Once()

		_, err := service.AddItem(ctx, AddItemRequest{ProductID: "2", Quantity: intPtr(4)})

		assert.ErrorIs(t, err, pRepo.ErrInsufficientStock)
		mockCart.AssertNotCalled(t, "ListItems", mock.Anything)
		mockCart.AssertNotCalled(t, "ReplaceItems", mock.Anything, mock.Anything)
	})

	t.Run("New item snapshots current product name and price", func(t *testing.T) {
		mockCart := new(cartMocks.MockCartRepository)
		mockCatalog := new(catalogMocks.MockProductRepository)
		service := NewCartService(mockCart, mockCatalog)

		mockCatalog.On("ListProducts", ctx).Return(catalogFixture, nil).Once()
		mockCart.On("ListItems", ctx).Return([]cDomain.CartItem{}, nil).Once()
		mockCart.On("ReplaceItems", ctx, mock.Anything).Return(nil).Once()

		item, err := service.AddItem(ctx, AddItemRequest{ProductID: "1", Quantity: intPtr(3)})

		require.NoError(t, err)
		assert.Equal(t, "Widget", item.Name)
		assert.Equal(t, 2.5, item.Price)
		assert.Equal(t, 3, item.Quantity)
	})

	t.Run("Duplicate id increments quantity without re-checking stock", func(t *testing.T) {
		mockCart := new(cartMocks.MockCartRepository)
		mockCatalog := new(catalogMocks.MockProductRepository)
		service := NewCartService(mockCart, mockCatalog)

		existing := []cDomain.CartItem{{ID: "2", Name: "Gadget", Price: 9.99, Quantity: 2}}
		mockCatalog.On("ListProducts", ctx).Return(catalogFixture, nil).Once()
		mockCart.On("ListItems", ctx).Return(existing, nil).Once()
		mockCart.On("ReplaceItems", ctx, mock.MatchedBy(func(items []cDomain.CartItem) bool {
			return len(items) == 1 && items[0].Quantity == 5
		})).Return(nil).Once()

		// 2 sudah di cart + 3 baru = 5, padahal stok cuma 3. Increment
		// memang tidak dicek ulang terhadap stok.
		item, err := service.AddItem(ctx, AddItemRequest{ProductID: "2", Quantity: intPtr(3)})

		require.NoError(t, err)
		assert.Equal(t, 5, item.Quantity)
		mockCart.AssertExpectations(t)
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	ctx := context.TODO()

	t.Run("Removes matching item", func(t *testing.T) {
		mockCart := new(cartMocks.MockCartRepository)
		mockCatalog := new(catalogMocks.MockProductRepository)
		service := NewCartService(mockCart, mockCatalog)

		items := []cDomain.CartItem{
			{ID: "1", Name: "Widget", Price: 2.5, Quantity: 3},
			{ID: "2", Name: "Gadget", Price: 9.99, Quantity: 1},
		}
		mockCart.On("ListItems", ctx).Return(items, nil).Once()
		mockCart.On("ReplaceItems", ctx, mock.MatchedBy(func(remaining []cDomain.CartItem) bool {
			return len(remaining) == 1 && remaining[0].ID == "2"
		})).Return(nil).Once()

		err := service.RemoveItem(ctx, "1")

		assert.NoError(t, err)
		mockCart.AssertExpectations(t)
	})

	t.Run("Second removal reports not found", func(t *testing.T) {
		mockCart := new(cartMocks.MockCartRepository)
		mockCatalog := new(catalogMocks.MockProductRepository)
		service := NewCartService(mockCart, mockCatalog)

		mockCart.On("ListItems", ctx).Return([]cDomain.CartItem{}, nil).Once()

		err := service.RemoveItem(ctx, "1")

		assert.ErrorIs(t, err, cRepo.ErrCartItemNotFound)
		mockCart.AssertNotCalled(t, "ReplaceItems", mock.Anything, mock.Anything)
	})

	t.Run("Missing id", func(t *testing.T) {
		mockCart := new(cartMocks.MockCartRepository)
		mockCatalog := new(catalogMocks.MockProductRepository)
		service := NewCartService(mockCart, mockCatalog)

		err := service.RemoveItem(ctx, "")

		assert.ErrorIs(t, err, ErrMissingProductID)
	})
}

func TestCartService_ViewCart(t *testing.T) {
	ctx := context.TODO()

	t.Run("Total is the sum of price times quantity", func(t *testing.T) {
		mockCart := new(cartMocks.MockCartRepository)
		mockCatalog := new(catalogMocks.MockProductRepository)
		service := NewCartService(mockCart, mockCatalog)

		items := []cDomain.CartItem{
			{ID: "1", Name: "Widget", Price: 2.5, Quantity: 3},
			{ID: "2", Name: "Gadget", Price: 9.99, Quantity: 2},
		}
		mockCart.On("ListItems", ctx).Return(items, nil).Once()

		view, err := service.ViewCart(ctx)

		require.NoError(t, err)
		assert.Equal(t, "27.48", view.Total.String())
		assert.Len(t, view.Items, 2)
	})

	t.Run("Empty cart views as zero total", func(t *testing.T) {
		mockCart := new(cartMocks.MockCartRepository)
		mockCatalog := new(catalogMocks.MockProductRepository)
		service := NewCartService(mockCart, mockCatalog)

		mockCart.On("ListItems", ctx).Return([]cDomain.CartItem{}, nil).Once()

		view, err := service.ViewCart(ctx)

		require.NoError(t, err)
		assert.Empty(t, view.Items)
		assert.True(t, view.Total.IsZero())
	})

	t.Run("Invalid items fail with every violation aggregated", func(t *testing.T) {
		mockCart := new(cartMocks.MockCartRepository)
		mockCatalog := new(catalogMocks.MockProductRepository)
		service := NewCartService(mockCart, mockCatalog)

		// Dokumen hasil edit tangan: price berupa string, quantity negatif.
		items := []cDomain.CartItem{
			{ID: "259", Name: "Dishwasing Liquid", Price: "price", Quantity: float64(-2)},
		}
		mockCart.On("ListItems", ctx).Return(items, nil).Once()

		_, err := service.ViewCart(ctx)

		var vErr *cDomain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, err.Error(), "invalid quantity of Dishwasing Liquid")
		assert.Contains(t, err.Error(), "invalid price of Dishwasing Liquid")
		assert.Len(t, vErr.Problems, 2)
	})
}
