package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/cashback-settlement/internal/domain"
	"github.com/avc/cashback-settlement/internal/metrics"
	"go.uber.org/zap"
)

// Ledger владеет жизненным циклом покупки: создает запись с распределением
// суммы в одной транзакции и проводит ее через машину статусов
// pending → processing → completed, pending|processing → failed,
// completed → refunded. Терминальные статусы не покидаются.
type Ledger struct {
	store       domain.SettlementStore
	policy      *PolicyResolver
	referrals   *ReferralResolver
	idempotency domain.IdempotencyStore // Может быть nil — идемпотентность выключена
	logger      *zap.Logger
}

// NewLedger создает новый Ledger
func NewLedger(
	store domain.SettlementStore,
	policy *PolicyResolver,
	referrals *ReferralResolver,
	idempotency domain.IdempotencyStore,
	logger *zap.Logger,
) *Ledger {
	return &Ledger{
		store:       store,
		policy:      policy,
		referrals:   referrals,
		idempotency: idempotency,
		logger:      logger,
	}
}

// CreatePurchase валидирует запрос, рассчитывает распределение и атомарно
// сохраняет покупку в статусе pending. Либо фиксируется все — снятие остатка,
// снимок цены, полное распределение — либо ничего.
//
// Повторный вызов с тем же ключом идемпотентности возвращает уже созданную
// покупку вместо создания дубликата.
func (l *Ledger) CreatePurchase(ctx context.Context, req domain.PurchaseRequest) (*domain.Purchase, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if req.IdempotencyKey != "" && l.idempotency != nil {
		existingID, ok, err := l.idempotency.Reserve(ctx, req.IdempotencyKey)
		if err != nil {
			return nil, fmt.Errorf("ledger: failed to reserve idempotency key: %w", err)
		}
		if !ok {
			if existingID > 0 {
				return l.store.GetPurchase(ctx, existingID)
			}
			return nil, domain.ErrDuplicateRequest
		}
	}

	purchase, err := l.store.CreatePurchase(ctx, func(ctx context.Context, tx domain.SettlementTx) (*domain.Purchase, error) {
		return l.settle(ctx, tx, req)
	})
	if err != nil {
		if req.IdempotencyKey != "" && l.idempotency != nil {
			if relErr := l.idempotency.Release(ctx, req.IdempotencyKey); relErr != nil {
				l.logger.Warn("failed to release idempotency key",
					zap.String("key", req.IdempotencyKey),
					zap.Error(relErr),
				)
			}
		}
		return nil, err
	}

	if req.IdempotencyKey != "" && l.idempotency != nil {
		if err := l.idempotency.Bind(ctx, req.IdempotencyKey, purchase.ID); err != nil {
			l.logger.Warn("failed to bind idempotency key",
				zap.String("key", req.IdempotencyKey),
				zap.Int64("purchase_id", purchase.ID),
				zap.Error(err),
			)
		}
	}

	metrics.PurchasesCreated.Inc()
	l.logger.Info("purchase created",
		zap.Int64("purchase_id", purchase.ID),
		zap.Int64("consumer_id", purchase.ConsumerID),
		zap.Int64("merchant_id", purchase.MerchantID),
		zap.String("total_amount", purchase.TotalAmount.String()),
	)

	return purchase, nil
}

// settle выполняет расчет внутри транзакции: все чтения видят один снимок,
// ошибка на любом шаге откатывает транзакцию целиком
func (l *Ledger) settle(ctx context.Context, tx domain.SettlementTx, req domain.PurchaseRequest) (*domain.Purchase, error) {
	consumer, err := tx.GetActiveUser(ctx, req.ConsumerID)
	if err != nil {
		return nil, err
	}

	merchant, err := tx.GetActiveUser(ctx, req.MerchantID)
	if err != nil {
		return nil, err
	}

	product, err := tx.GetActiveProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if product.MerchantID != merchant.ID {
		return nil, fmt.Errorf("%w: product %d does not belong to merchant %d",
			domain.ErrValidation, product.ID, merchant.ID)
	}

	if err := tx.DecrementStock(ctx, product.ID, req.Quantity); err != nil {
		return nil, err
	}

	// Снимок цены на момент покупки: totalAmount считается от прочитанной
	// в этой же транзакции цены и больше никогда не перечитывается
	total := product.Price.MulInt(req.Quantity)
	if total.IsZero() {
		return nil, fmt.Errorf("%w: zero total amount", domain.ErrValidation)
	}

	referrals, err := l.referrals.Resolve(ctx, tx, consumer.ID, merchant.ID)
	if err != nil {
		return nil, err
	}

	policy, err := l.policy.Resolve(ctx, tx, consumer.ID, merchant.ID)
	if err != nil {
		return nil, err
	}

	breakdown, err := ComputeBreakdown(total, product.CashbackPercent, *policy, *referrals)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidBreakdown) {
			metrics.BreakdownFailures.Inc()
			// Полный контекст входа для аудита: распределение с отрицательной
			// компонентой — ошибка конфигурации, а не вызывающей стороны
			l.logger.Error("settlement breakdown rejected",
				zap.Int64("consumer_id", consumer.ID),
				zap.Int64("merchant_id", merchant.ID),
				zap.Int64("product_id", product.ID),
				zap.String("total_amount", total.String()),
				zap.String("product_percent", product.CashbackPercent.String()),
				zap.String("consumer_percent", policy.ConsumerPercent.String()),
				zap.String("consumer_referrer_percent", policy.ConsumerReferrerPercent.String()),
				zap.String("merchant_referrer_percent", policy.MerchantReferrerPercent.String()),
				zap.Error(err),
			)
		}
		return nil, err
	}

	purchase := &domain.Purchase{
		ConsumerID:          consumer.ID,
		MerchantID:          merchant.ID,
		ProductID:           product.ID,
		Quantity:            req.Quantity,
		TotalAmount:         total,
		MerchantAmount:      breakdown.MerchantAmount,
		ConsumerCashback:    breakdown.ConsumerCashback,
		PlatformFee:         breakdown.PlatformFee,
		ConsumerReferrerFee: breakdown.ConsumerReferrerFee,
		MerchantReferrerFee: breakdown.MerchantReferrerFee,
		Status:              domain.PurchaseStatusPending,
	}

	return tx.InsertPurchase(ctx, purchase)
}

// GetPurchase возвращает покупку по id
func (l *Ledger) GetPurchase(ctx context.Context, id int64) (*domain.Purchase, error) {
	return l.store.GetPurchase(ctx, id)
}

// MarkProcessing переводит покупку pending → processing.
// Повторный вызов для уже processing покупки — no-op без ошибки.
func (l *Ledger) MarkProcessing(ctx context.Context, id int64) (*domain.Purchase, error) {
	return l.transition(ctx, id, []domain.PurchaseStatus{domain.PurchaseStatusPending},
		domain.PurchaseStatusProcessing, nil, nil)
}

// Complete переводит покупку processing → completed и фиксирует completedAt
func (l *Ledger) Complete(ctx context.Context, id int64, txHash *string) (*domain.Purchase, error) {
	return l.transition(ctx, id, []domain.PurchaseStatus{domain.PurchaseStatusProcessing},
		domain.PurchaseStatusCompleted, txHash, nil)
}

// Fail переводит покупку pending|processing → failed.
// Никакие денежные эффекты за пределами записи покупки к этому моменту
// не применялись, поэтому откатывать нечего.
func (l *Ledger) Fail(ctx context.Context, id int64, reason string) (*domain.Purchase, error) {
	return l.transition(ctx, id,
		[]domain.PurchaseStatus{domain.PurchaseStatusPending, domain.PurchaseStatusProcessing},
		domain.PurchaseStatusFailed, nil, &reason)
}

// Refund переводит покупку completed → refunded. Сохраненное распределение
// не изменяется: фактический возврат средств ведет внешний реестр.
func (l *Ledger) Refund(ctx context.Context, id int64) (*domain.Purchase, error) {
	return l.transition(ctx, id, []domain.PurchaseStatus{domain.PurchaseStatusCompleted},
		domain.PurchaseStatusRefunded, nil, nil)
}

// transition выполняет переход через условное обновление одной строки.
// Проигранная гонка (статус изменился между чтением и обновлением)
// возвращает ErrConcurrencyConflict — вызывающая сторона может повторить
// со свежим состоянием.
func (l *Ledger) transition(ctx context.Context, id int64, from []domain.PurchaseStatus, to domain.PurchaseStatus, txHash, reason *string) (*domain.Purchase, error) {
	purchase, err := l.store.GetPurchase(ctx, id)
	if err != nil {
		return nil, err
	}

	// Идемпотентность markProcessing: повторный перевод в processing безопасен
	if purchase.Status == to && to == domain.PurchaseStatusProcessing {
		return purchase, nil
	}

	if !statusIn(purchase.Status, from) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, purchase.Status, to)
	}

	updated, err := l.store.UpdatePurchaseStatus(ctx, id, from, to, txHash, reason)
	if err != nil {
		if errors.Is(err, domain.ErrConcurrencyConflict) {
			metrics.ConcurrencyConflicts.Inc()
		}
		return nil, err
	}

	metrics.PurchaseTransitions.WithLabelValues(string(to)).Inc()
	l.logger.Info("purchase transitioned",
		zap.Int64("purchase_id", id),
		zap.String("from", string(purchase.Status)),
		zap.String("to", string(to)),
	)

	return updated, nil
}

// validateRequest проверяет запрос до обращения к хранилищу
func validateRequest(req domain.PurchaseRequest) error {
	if req.ConsumerID <= 0 || req.MerchantID <= 0 || req.ProductID <= 0 {
		return fmt.Errorf("%w: non-positive entity id", domain.ErrValidation)
	}
	if req.Quantity <= 0 {
		return fmt.Errorf("%w: non-positive quantity %d", domain.ErrValidation, req.Quantity)
	}
	if req.ConsumerID == req.MerchantID {
		return domain.ErrSelfPurchase
	}
	return nil
}

func statusIn(status domain.PurchaseStatus, set []domain.PurchaseStatus) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}
