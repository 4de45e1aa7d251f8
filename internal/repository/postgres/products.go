package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/cashback-settlement/internal/domain"
	"github.com/jackc/pgx/v5"
)

// GetActiveProduct получает активный товар по ID
func (s *Store) GetActiveProduct(ctx context.Context, id int64) (*domain.Product, error) {
	product := &domain.Product{}

	err := s.db.QueryRow(ctx,
		`SELECT id, merchant_id, name, price, cashback_percent, stock, status, created_at
		 FROM products
		 WHERE id = $1 AND status = 'active'`,
		id,
	).Scan(&product.ID, &product.MerchantID, &product.Name, &product.Price,
		&product.CashbackPercent, &product.Stock, &product.Status, &product.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("repository: failed to get product by id %d: %w", id, err)
	}

	return product, nil
}

// DecrementStock атомарно уменьшает остаток товара условным обновлением.
// Две параллельные покупки последней единицы не могут обе пройти:
// проигравшая получит ErrInsufficientStock.
func (s *Store) DecrementStock(ctx context.Context, productID int64, quantity int32) error {
	result, err := s.db.Exec(ctx,
		`UPDATE products
		 SET stock = stock - $2
		 WHERE id = $1 AND status = 'active' AND stock >= $2`,
		productID, quantity,
	)

	if err != nil {
		return fmt.Errorf("repository: failed to decrement stock for product %d: %w", productID, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}

	return nil
}
