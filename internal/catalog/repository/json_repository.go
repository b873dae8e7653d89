package repository

import (
	"context"

	"github.com/ridloal/go-stock-manager/internal/catalog/domain"
	"github.com/ridloal/go-stock-manager/internal/platform/jsonstore"
	"github.com/ridloal/go-stock-manager/internal/platform/logger"
)

type jsonProductRepository struct {
	store *jsonstore.Store
	doc   string
}

// NewJSONProductRepository menyimpan katalog di satu dokumen JSON
// (default products.json). Dokumen yang belum ada berarti katalog kosong.
func NewJSONProductRepository(store *jsonstore.Store, doc string) ProductRepository {
	return &jsonProductRepository{store: store, doc: doc}
}

func (r *jsonProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products := []domain.Product{}
	if err := r.store.Load(r.doc, &products); err != nil {
		logger.Error("ListProducts: load failed", err)
		return nil, err
	}
	return products, nil
}

func (r *jsonProductRepository) ReplaceProducts(ctx context.Context, products []domain.Product) error {
	if products == nil {
		products = []domain.Product{}
	}
	if err := r.store.Save(r.doc, products); err != nil {
		logger.Error("ReplaceProducts: save failed", err)
		return err
	}
	return nil
}
