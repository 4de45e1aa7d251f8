package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/cashback-settlement/internal/domain"
	"github.com/jackc/pgx/v5"
)

const purchaseColumns = `id, consumer_id, merchant_id, product_id, quantity, total_amount, merchant_amount, consumer_cashback, platform_fee, consumer_referrer_fee, merchant_referrer_fee, status, tx_hash, fail_reason, created_at, completed_at`

// InsertPurchase вставляет новую покупку. Инвариант суммы проверяется
// перед записью и продублирован CHECK-ограничением таблицы: строка,
// нарушающая его, не может быть зафиксирована ни одним путем.
func (s *Store) InsertPurchase(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error) {
	if !purchase.Breakdown().Sum().Equal(purchase.TotalAmount) {
		return nil, fmt.Errorf("%w: components sum to %s, expected %s",
			domain.ErrInvalidBreakdown, purchase.Breakdown().Sum(), purchase.TotalAmount)
	}

	err := s.db.QueryRow(ctx,
		`INSERT INTO purchases (consumer_id, merchant_id, product_id, quantity, total_amount, merchant_amount, consumer_cashback, platform_fee, consumer_referrer_fee, merchant_referrer_fee, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, created_at`,
		purchase.ConsumerID, purchase.MerchantID, purchase.ProductID, purchase.Quantity,
		purchase.TotalAmount, purchase.MerchantAmount, purchase.ConsumerCashback,
		purchase.PlatformFee, purchase.ConsumerReferrerFee, purchase.MerchantReferrerFee,
		purchase.Status,
	).Scan(&purchase.ID, &purchase.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to insert purchase: %w", err)
	}

	return purchase, nil
}

// GetPurchase получает покупку по ID
func (s *Store) GetPurchase(ctx context.Context, id int64) (*domain.Purchase, error) {
	purchase := &domain.Purchase{}

	err := s.db.QueryRow(ctx,
		`SELECT `+purchaseColumns+`
		 FROM purchases
		 WHERE id = $1`,
		id,
	).Scan(scanTargets(purchase)...)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("repository: failed to get purchase by id %d: %w", id, err)
	}

	return purchase, nil
}

// UpdatePurchaseStatus выполняет условное обновление статуса одной строкой.
// Условие по текущему статусу защищает от двойного перехода при гонке:
// проигравший вызов получает ErrConcurrencyConflict, а не затирает чужой
// переход. Распределение суммы при переходах не изменяется.
func (s *Store) UpdatePurchaseStatus(ctx context.Context, id int64, from []domain.PurchaseStatus, to domain.PurchaseStatus, txHash, reason *string) (*domain.Purchase, error) {
	fromStatuses := make([]string, len(from))
	for i, st := range from {
		fromStatuses[i] = string(st)
	}

	purchase := &domain.Purchase{}
	err := s.db.QueryRow(ctx,
		`UPDATE purchases
		 SET status = $2,
		     tx_hash = COALESCE($3, tx_hash),
		     fail_reason = COALESCE($4, fail_reason),
		     completed_at = CASE WHEN $2 = 'completed' THEN now() ELSE completed_at END
		 WHERE id = $1 AND status = ANY($5)
		 RETURNING `+purchaseColumns,
		id, to, txHash, reason, fromStatuses,
	).Scan(scanTargets(purchase)...)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Строка есть, но статус уже изменился — проигранная гонка.
			// Строки нет вовсе — покупка не найдена.
			if _, getErr := s.GetPurchase(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, domain.ErrConcurrencyConflict
		}
		return nil, fmt.Errorf("repository: failed to update purchase %d status: %w", id, err)
	}

	return purchase, nil
}

// ListPurchasesByStatus получает покупки в указанных статусах,
// от старых к новым
func (s *Store) ListPurchasesByStatus(ctx context.Context, statuses ...domain.PurchaseStatus) ([]*domain.Purchase, error) {
	statusStrings := make([]string, len(statuses))
	for i, st := range statuses {
		statusStrings[i] = string(st)
	}

	rows, err := s.db.Query(ctx,
		`SELECT `+purchaseColumns+`
		 FROM purchases
		 WHERE status = ANY($1)
		 ORDER BY created_at ASC`,
		statusStrings,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to list purchases by status: %w", err)
	}
	defer rows.Close()

	var purchases []*domain.Purchase
	for rows.Next() {
		purchase := &domain.Purchase{}
		if err := rows.Scan(scanTargets(purchase)...); err != nil {
			return nil, fmt.Errorf("repository: failed to scan purchase: %w", err)
		}
		purchases = append(purchases, purchase)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating purchases: %w", err)
	}

	return purchases, nil
}

// scanTargets возвращает цели сканирования в порядке purchaseColumns
func scanTargets(p *domain.Purchase) []any {
	return []any{
		&p.ID, &p.ConsumerID, &p.MerchantID, &p.ProductID, &p.Quantity,
		&p.TotalAmount, &p.MerchantAmount, &p.ConsumerCashback,
		&p.PlatformFee, &p.ConsumerReferrerFee, &p.MerchantReferrerFee,
		&p.Status, &p.TxHash, &p.FailReason, &p.CreatedAt, &p.CompletedAt,
	}
}
