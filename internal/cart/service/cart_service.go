package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ridloal/go-stock-manager/internal/cart/domain"
	"github.com/ridloal/go-stock-manager/internal/cart/repository"
	catalogDomain "github.com/ridloal/go-stock-manager/internal/catalog/domain"
	catalogRepo "github.com/ridloal/go-stock-manager/internal/catalog/repository"
	"github.com/ridloal/go-stock-manager/internal/platform/logger"
)

var (
	ErrMissingProductID = errors.New("product id is needed")
	ErrMissingQuantity  = errors.New("required quantity is needed")
)

type AddItemRequest struct {
	ProductID string `json:"id" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"required"`
}

type CartView struct {
	Items []domain.CartItem `json:"items"`
	Total decimal.Decimal   `json:"total"`
}

type CartService interface {
	CreateCart(ctx context.Context) error
	AddItem(ctx context.Context, req AddItemRequest) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, productID string) error
	ViewCart(ctx context.Context) (*CartView, error)
}

type cartServiceImpl struct {
	cartRepo    repository.CartRepository
	productRepo catalogRepo.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo catalogRepo.ProductRepository) CartService {
	return &cartServiceImpl{cartRepo: cartRepo, productRepo: productRepo}
}

// CreateCart me-reset cart jadi kosong tanpa konfirmasi, menimpa cart lama.
func (s *cartServiceImpl) CreateCart(ctx context.Context) error {
	if err := s.cartRepo.ReplaceItems(ctx, []domain.CartItem{}); err != nil {
		logger.Error("Svc.CreateCart: failed to persist cart", err)
		return err
	}
	return nil
}

// AddItem memeriksa stok dengan strict greater-than: minta persis sejumlah
// stok yang tersedia masih boleh. Kalau item sudah ada di cart, kuantitasnya
// ditambah TANPA cek ulang stok untuk increment-nya; celah ini diketahui dan
// dibiarkan (lihat DESIGN.md).
func (s *cartServiceImpl) AddItem(ctx context.Context, req AddItemRequest) (*domain.CartItem, error) {
	if req.ProductID == "" {
		return nil, ErrMissingProductID
	}
	if req.Quantity == nil {
		return nil, ErrMissingQuantity
	}
	quantity := *req.Quantity

	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		logger.Error("Svc.AddItem: product repo error", err)
		return nil, err
	}

	var product *catalogDomain.Product
	for i := range products {
		if products[i].ID == req.ProductID {
			product = &products[i]
			break
		}
	}
	if product == nil {
		return nil, fmt.Errorf("%w: product ID %s was not found", catalogRepo.ErrProductNotFound, req.ProductID)
	}

	if quantity > product.Quantity {
		return nil, fmt.Errorf("%w: not enough stock for product ID %s, available: %d",
			catalogRepo.ErrInsufficientStock, req.ProductID, product.Quantity)
	}

	items, err := s.cartRepo.ListItems(ctx)
	if err != nil {
		logger.Error("Svc.AddItem: cart repo error", err)
		return nil, err
	}

	for i := range items {
		if items[i].ID != req.ProductID {
			continue
		}
		current, ok := items[i].NumericQuantity()
		if !ok {
			return nil, &domain.ValidationError{Problems: []string{
				fmt.Sprintf("invalid quantity of %s in cart: %v", items[i].Name, items[i].Quantity),
			}}
		}
		items[i].Quantity = current + quantity
		if err := s.cartRepo.ReplaceItems(ctx, items); err != nil {
			logger.Error("Svc.AddItem: failed to persist cart", err)
			return nil, err
		}
		updated := items[i]
		return &updated, nil
	}

	// Item baru: snapshot nama dan harga produk saat ini. Perubahan produk
	// setelah ini tidak merambat ke item cart yang sudah ada.
	item := domain.CartItem{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Quantity: quantity,
	}
	items = append(items, item)

	if err := s.cartRepo.ReplaceItems(ctx, items); err != nil {
		logger.Error("Svc.AddItem: failed to persist cart", err)
		return nil, err
	}
	return &item, nil
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, productID string) error {
	if productID == "" {
		return ErrMissingProductID
	}

	items, err := s.cartRepo.ListItems(ctx)
	if err != nil {
		logger.Error("Svc.RemoveItem: cart repo error", err)
		return err
	}

	remaining := make([]domain.CartItem, 0, len(items))
	found := false
	for _, it := range items {
		if !found && it.ID == productID {
			found = true
			continue
		}
		remaining = append(remaining, it)
	}

	if !found {
		return fmt.Errorf("%w: product with ID %s was not found in the cart", repository.ErrCartItemNotFound, productID)
	}

	if err := s.cartRepo.ReplaceItems(ctx, remaining); err != nil {
		logger.Error("Svc.RemoveItem: failed to persist cart", err)
		return err
	}
	return nil
}

// ViewCart memvalidasi semua item dulu; satu saja tidak valid, seluruh
// operasi gagal dengan error agregat, tidak ada hasil parsial.
func (s *cartServiceImpl) ViewCart(ctx context.Context) (*CartView, error) {
	items, err := s.cartRepo.ListItems(ctx)
	if err != nil {
		logger.Error("Svc.ViewCart: cart repo error", err)
		return nil, err
	}

	if err := domain.ValidateItems(items); err != nil {
		return nil, err
	}

	return &CartView{Items: items, Total: domain.Total(items)}, nil
}
