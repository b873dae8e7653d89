package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ridloal/go-stock-manager/internal/catalog/domain"
	"github.com/ridloal/go-stock-manager/internal/catalog/repository"
	"github.com/ridloal/go-stock-manager/internal/platform/logger"
)

var (
	ErrMissingField     = errors.New("all the fields regarding products (id, name, price, quantity) are needed to continue")
	ErrMissingProductID = errors.New("product id is not provided")
)

type CatalogService interface {
	AddProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, req domain.UpdateProductRequest) (*domain.Product, error)
	RemoveProduct(ctx context.Context, id string) error
}

type catalogServiceImpl struct {
	repo repository.ProductRepository
}

func NewCatalogService(repo repository.ProductRepository) CatalogService {
	return &catalogServiceImpl{repo: repo}
}

// AddProduct menolak request yang field-nya tidak lengkap. Price dan quantity
// boleh nol, tapi harus ada (pointer nil berarti tidak dikirim).
func (s *catalogServiceImpl) AddProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	if req.ID == "" || req.Name == "" || req.Price == nil || req.Quantity == nil {
		return nil, ErrMissingField
	}

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		logger.Error("Svc.AddProduct: repo error", err)
		return nil, err
	}

	// Cek duplikasi ID dengan linear scan, match pertama yang menang.
	for _, p := range products {
		if p.ID == req.ID {
			return nil, fmt.Errorf("%w: a product with the ID %s already exists", repository.ErrProductConflict, req.ID)
		}
	}

	product := domain.Product{
		ID:       req.ID,
		Name:     req.Name,
		Price:    *req.Price,
		Quantity: *req.Quantity,
	}
	products = append(products, product)

	if err := s.repo.ReplaceProducts(ctx, products); err != nil {
		logger.Error("Svc.AddProduct: failed to persist catalog", err)
		return nil, err
	}
	return &product, nil
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx)
}

// UpdateProduct menimpa hanya field yang dikirim. Nol eksplisit tetap
// dianggap "dikirim" karena request memakai pointer, bukan falsy-check.
func (s *catalogServiceImpl) UpdateProduct(ctx context.Context, req domain.UpdateProductRequest) (*domain.Product, error) {
	if req.ID == "" {
		return nil, ErrMissingProductID
	}

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		logger.Error("Svc.UpdateProduct: repo error", err)
		return nil, err
	}

	for i := range products {
		if products[i].ID != req.ID {
			continue
		}
		if req.Name != nil {
			products[i].Name = *req.Name
		}
		if req.Price != nil {
			products[i].Price = *req.Price
		}
		if req.Quantity != nil {
			products[i].Quantity = *req.Quantity
		}
		if err := s.repo.ReplaceProducts(ctx, products); err != nil {
			logger.Error("Svc.UpdateProduct: failed to persist catalog", err)
			return nil, err
		}
		updated := products[i]
		return &updated, nil
	}

	return nil, fmt.Errorf("%w: product with ID %s was not found", repository.ErrProductNotFound, req.ID)
}

func (s *catalogServiceImpl) RemoveProduct(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingProductID
	}

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		logger.Error("Svc.RemoveProduct: repo error", err)
		return err
	}

	remaining := make([]domain.Product, 0, len(products))
	found := false
	for _, p := range products {
		if !found && p.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, p)
	}

	if !found {
		return fmt.Errorf("%w: product with ID %s was not found", repository.ErrProductNotFound, id)
	}

	if err := s.repo.ReplaceProducts(ctx, remaining); err != nil {
		logger.Error("Svc.RemoveProduct: failed to persist catalog", err)
		return err
	}
	return nil
}
