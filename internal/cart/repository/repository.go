package repository

import (
	"context"
	"errors"

	"github.com/ridloal/go-stock-manager/internal/cart/domain"
)

var ErrCartItemNotFound = errors.New("item not found in the cart")

// CartRepository menyimpan cart sebagai satu koleksi utuh, pola yang sama
// dengan ProductRepository: load semua, ubah di memori, tulis ulang semua.
type CartRepository interface {
	ListItems(ctx context.Context) ([]domain.CartItem, error)
	ReplaceItems(ctx context.Context, items []domain.CartItem) error
}
