package repository

import (
	"context"

	"github.com/ridloal/go-stock-manager/internal/cart/domain"
	"github.com/ridloal/go-stock-manager/internal/platform/jsonstore"
	"github.com/ridloal/go-stock-manager/internal/platform/logger"
)

type jsonCartRepository struct {
	store *jsonstore.Store
	doc   string
}

// NewJSONCartRepository menyimpan cart di satu dokumen JSON (default
// cart.json). Dokumen yang belum ada berarti cart kosong.
func NewJSONCartRepository(store *jsonstore.Store, doc string) CartRepository {
	return &jsonCartRepository{store: store, doc: doc}
}

func (r *jsonCartRepository) ListItems(ctx context.Context) ([]domain.CartItem, error) {
	items := []domain.CartItem{}
	if err := r.store.Load(r.doc, &items); err != nil {
		logger.Error("ListItems: load failed", err)
		return nil, err
	}
	return items, nil
}

func (r *jsonCartRepository) ReplaceItems(ctx context.Context, items []domain.CartItem) error {
	if items == nil {
		items = []domain.CartItem{}
	}
	if err := r.store.Save(r.doc, items); err != nil {
		logger.Error("ReplaceItems: save failed", err)
		return err
	}
	return nil
}
