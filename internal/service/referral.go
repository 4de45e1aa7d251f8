package service

import (
	"context"
	"fmt"

	"github.com/avc/cashback-settlement/internal/domain"
)

// ReferralResolver находит рефереров сторон покупки.
// Цепочка рефералов плоская: учитывается ровно один переход referred_by,
// реферер реферера не зарабатывает на покупках нижних уровней.
type ReferralResolver struct{}

// NewReferralResolver создает новый ReferralResolver
func NewReferralResolver() *ReferralResolver {
	return &ReferralResolver{}
}

// Resolve возвращает контекст рефералов для пары потребитель/мерчант.
// Неактивный или удаленный реферер молча считается отсутствующим:
// он теряет будущие комиссии, но не блокирует покупку.
func (r *ReferralResolver) Resolve(ctx context.Context, tx domain.SettlementTx, consumerID, merchantID int64) (*domain.ReferralContext, error) {
	result := &domain.ReferralContext{}

	consumerReferrer, err := tx.GetActiveReferrer(ctx, consumerID)
	if err != nil {
		return nil, fmt.Errorf("referral: failed to resolve consumer referrer for user %d: %w", consumerID, err)
	}
	if consumerReferrer != nil {
		result.ConsumerReferrerID = &consumerReferrer.ID
	}

	merchantReferrer, err := tx.GetActiveReferrer(ctx, merchantID)
	if err != nil {
		return nil, fmt.Errorf("referral: failed to resolve merchant referrer for user %d: %w", merchantID, err)
	}
	if merchantReferrer != nil {
		result.MerchantReferrerID = &merchantReferrer.ID
	}

	return result, nil
}
