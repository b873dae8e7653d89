package repository

import (
	"context"
	"errors"

	"github.com/ridloal/go-stock-manager/internal/catalog/domain"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductConflict   = errors.New("product with this id already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository menyimpan katalog sebagai satu koleksi utuh.
// Semua mutasi mengikuti pola load seluruh koleksi, ubah di memori,
// tulis ulang seluruh koleksi (tidak ada partial update).
type ProductRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ReplaceProducts(ctx context.Context, products []domain.Product) error
}
