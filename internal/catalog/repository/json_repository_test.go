package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ridloal/go-stock-manager/internal/catalog/domain"
	"github.com/ridloal/go-stock-manager/internal/platform/jsonstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONProductRepository_MissingDocumentIsEmptyCatalog(t *testing.T) {
	repo := NewJSONProductRepository(jsonstore.New(t.TempDir()), "products.json")

	products, err := repo.ListProducts(context.TODO())

	assert.NoError(t, err)
	assert.Empty(t, products)
}

func TestJSONProductRepository_RoundTripPreservesOrder(t *testing.T) {
	ctx := context.TODO()
	repo := NewJSONProductRepository(jsonstore.New(t.TempDir()), "products.json")

	in := []domain.Product{
		{ID: "b", Name: "Second", Price: 1.5, Quantity: 2},
		{ID: "a", Name: "First", Price: 0, Quantity: 0},
	}
	require.NoError(t, repo.ReplaceProducts(ctx, in))

	out, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestJSONProductRepository_MalformedDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"), []byte(`{"oops"`), 0o644))

	repo := NewJSONProductRepository(jsonstore.New(dir), "products.json")

	_, err := repo.ListProducts(context.TODO())
	assert.ErrorIs(t, err, jsonstore.ErrMalformedDocument)
}
