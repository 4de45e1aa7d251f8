package postgres

import (
	"context"
	"fmt"

	"github.com/avc/cashback-settlement/internal/domain"
)

// Store реализует domain.SettlementStore поверх PostgreSQL.
// Созданный поверх транзакции (через CreatePurchase) тот же тип
// служит реализацией domain.SettlementTx.
type Store struct {
	db DBTX
}

// NewStore создает новый Store
func NewStore(db DBTX) *Store {
	return &Store{db: db}
}

// CreatePurchase выполняет fn в одной транзакции БД. Все чтения fn видят
// согласованный снимок, ошибка откатывает транзакцию целиком — частичное
// распределение не сохраняется никогда.
func (s *Store) CreatePurchase(ctx context.Context, fn func(ctx context.Context, tx domain.SettlementTx) (*domain.Purchase, error)) (*domain.Purchase, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin settlement transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	purchase, err := fn(ctx, &Store{db: tx})
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit settlement transaction: %w", err)
	}

	return purchase, nil
}
