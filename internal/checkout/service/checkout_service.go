package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	cartDomain "github.com/ridloal/go-stock-manager/internal/cart/domain"
	cartRepo "github.com/ridloal/go-stock-manager/internal/cart/repository"
	catalogRepo "github.com/ridloal/go-stock-manager/internal/catalog/repository"
	"github.com/ridloal/go-stock-manager/internal/platform/logger"
)

var ErrEmptyCart = errors.New("cart is empty")

// Receipt adalah ringkasan hasil checkout: item-item cart sebelum di-reset
// dan total yang harus dibayar.
type Receipt struct {
	ID        string                `json:"id"`
	Items     []cartDomain.CartItem `json:"items"`
	Total     decimal.Decimal       `json:"total"`
	CreatedAt time.Time             `json:"created_at"`
}

type CheckoutService interface {
	Checkout(ctx context.Context) (*Receipt, error)
}

type checkoutServiceImpl struct {
	cartRepo    cartRepo.CartRepository
	productRepo catalogRepo.ProductRepository
}

func NewCheckoutService(cr cartRepo.CartRepository, pr catalogRepo.ProductRepository) CheckoutService {
	return &checkoutServiceImpl{cartRepo: cr, productRepo: pr}
}

// Checkout memotong stok katalog sesuai isi cart lalu mengosongkan cart.
//
// Dua dokumen dipersist berurutan: katalog dulu, baru cart. Tidak ada
// transaksi lintas dokumen; kalau proses mati di antara kedua save, stok
// sudah terpotong tapi cart belum kosong, dan checkout ulang akan memotong
// dua kali. Itu batasan model file yang diterima, bukan bug yang ditambal
// diam-diam di sini.
//
// Item yang produknya sudah hilang dari katalog tetap dihitung ke total,
// hanya pemotongan stoknya yang dilewati. Stok boleh jadi negatif; tidak
// ada floor di nol, hanya warning di log.
func (s *checkoutServiceImpl) Checkout(ctx context.Context) (*Receipt, error) {
	items, err := s.cartRepo.ListItems(ctx)
	if err != nil {
		logger.Error("Svc.Checkout: cart repo error", err)
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	if err := cartDomain.ValidateItems(items); err != nil {
		return nil, err
	}

	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		logger.Error("Svc.Checkout: product repo error", err)
		return nil, err
	}

	total := decimal.Zero
	for _, it := range items {
		count, err := it.Count()
		if err != nil {
			return nil, err
		}
		line, err := it.LineTotal()
		if err != nil {
			return nil, err
		}
		total = total.Add(line)

		found := false
		for i := range products {
			if products[i].ID == it.ID {
				products[i].Quantity -= count
				if products[i].Quantity < 0 {
					logger.Warn(fmt.Sprintf("Svc.Checkout: stock for product %s went negative (%d)", it.ID, products[i].Quantity))
				}
				found = true
				break
			}
		}
		if !found {
			logger.Warn(fmt.Sprintf("Svc.Checkout: product %s no longer in catalog, skipping stock deduction", it.ID))
		}
	}

	if err := s.productRepo.ReplaceProducts(ctx, products); err != nil {
		logger.Error("Svc.Checkout: failed to persist catalog", err)
		return nil, err
	}
	if err := s.cartRepo.ReplaceItems(ctx, []cartDomain.CartItem{}); err != nil {
		// Katalog sudah tersimpan: jendela non-atomik yang didokumentasikan.
		logger.Error("Svc.Checkout: failed to reset cart after catalog save", err)
		return nil, err
	}

	return &Receipt{
		ID:        uuid.NewString(),
		Items:     items,
		Total:     total.Round(2),
		CreatedAt: time.Now(),
	}, nil
}
