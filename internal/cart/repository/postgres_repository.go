package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq" // Untuk pq.Error
	"github.com/ridloal/go-stock-manager/internal/cart/domain"
	"github.com/ridloal/go-stock-manager/internal/platform/logger"
)

type postgresCartRepository struct {
	db *sql.DB
}

// NewPostgresCartRepository menyimpan cart di tabel cart_items. Data dari
// database selalu bertipe benar, jadi validasi longgar di domain hanya
// relevan untuk backend JSON; kontrak interface-nya tetap sama.
func NewPostgresCartRepository(db *sql.DB) CartRepository {
	return &postgresCartRepository{db: db}
}

func EnsureCartSchema(ctx context.Context, db *sql.DB) error {
	query := `CREATE TABLE IF NOT EXISTS cart_items (
        position SERIAL,
        id TEXT PRIMARY KEY,
        name TEXT NOT NULL,
        price DOUBLE PRECISION NOT NULL,
        quantity INTEGER NOT NULL
    )`
	_, err := db.ExecContext(ctx, query)
	return err
}

func (r *postgresCartRepository) ListItems(ctx context.Context) ([]domain.CartItem, error) {
	query := `SELECT id, name, price, quantity FROM cart_items ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("ListItems: query failed", err)
		return nil, err
	}
	defer rows.Close()

	items := []domain.CartItem{}
	for rows.Next() {
		var (
			it       domain.CartItem
			price    float64
			quantity int
		)
		if err := rows.Scan(&it.ID, &it.Name, &price, &quantity); err != nil {
			logger.Error("ListItems: scan failed", err)
			return nil, err
		}
		it.Price = price
		it.Quantity = quantity
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		logger.Error("ListItems: rows iteration error", err)
		return nil, err
	}
	return items, nil
}

func (r *postgresCartRepository) ReplaceItems(ctx context.Context, items []domain.CartItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("ReplaceItems: begin tx failed", err)
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items`); err != nil {
		logger.Error("ReplaceItems: delete failed", err)
		return err
	}

	insert := `INSERT INTO cart_items (id, name, price, quantity) VALUES ($1, $2, $3, $4)`
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, insert, it.ID, it.Name, it.Price, it.Quantity); err != nil {
			// Kode error '23505' adalah unique_violation
			if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
				logger.Error("ReplaceItems: unique violation", err)
			} else {
				logger.Error("ReplaceItems: insert failed", err)
			}
			return err
		}
	}

	return tx.Commit()
}
