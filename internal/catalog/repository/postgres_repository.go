package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq" // Untuk pq.Error
	"github.com/ridloal/go-stock-manager/internal/catalog/domain"
	"github.com/ridloal/go-stock-manager/internal/platform/logger"
)

type postgresProductRepository struct {
	db *sql.DB
}

// NewPostgresProductRepository adalah backend alternatif di balik interface
// yang sama. Kontraknya tetap whole-collection replace, hanya dibungkus
// transaksi supaya pembaca tidak melihat katalog setengah ditulis.
func NewPostgresProductRepository(db *sql.DB) ProductRepository {
	return &postgresProductRepository{db: db}
}

// EnsureProductSchema membuat tabel products jika belum ada. Kolom position
// menjaga urutan insert, sama seperti urutan array di dokumen JSON.
func EnsureProductSchema(ctx context.Context, db *sql.DB) error {
	query := `CREATE TABLE IF NOT EXISTS products (
        position SERIAL,
        id TEXT PRIMARY KEY,
        name TEXT NOT NULL,
        price DOUBLE PRECISION NOT NULL,
        quantity INTEGER NOT NULL
    )`
	_, err := db.ExecContext(ctx, query)
	return err
}

func (r *postgresProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT id, name, price, quantity FROM products ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("ListProducts: query failed", err)
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity); err != nil {
			logger.Error("ListProducts: scan failed", err)
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		logger.Error("ListProducts: rows iteration error", err)
		return nil, err
	}
	return products, nil
}

func (r *postgresProductRepository) ReplaceProducts(ctx context.Context, products []domain.Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("ReplaceProducts: begin tx failed", err)
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM products`); err != nil {
		logger.Error("ReplaceProducts: delete failed", err)
		return err
	}

	insert := `INSERT INTO products (id, name, price, quantity) VALUES ($1, $2, $3, $4)`
	for _, p := range products {
		if _, err := tx.ExecContext(ctx, insert, p.ID, p.Name, p.Price, p.Quantity); err != nil {
			// Kode error '23505' adalah unique_violation
			if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
				logger.Error("ReplaceProducts: unique violation", err)
				return ErrProductConflict
			}
			logger.Error("ReplaceProducts: insert failed", err)
			return err
		}
	}

	return tx.Commit()
}
