package service

import (
	"context"
	"fmt"

	"github.com/avc/cashback-settlement/internal/domain"
)

// PolicyResolver определяет проценты распределения для конкретной покупки.
//
// Потребительские доли (ConsumerPercent, ClubPercent, ConsumerReferrerPercent)
// берутся из конфигурации потребителя, доля реферера мерчанта — из
// конфигурации мерчанта. Отсутствующая конфигурация заменяется платформенными
// значениями по умолчанию. Конфигурации читаются внутри транзакции расчета,
// поэтому изменение политики во время покупки не может дать распределение,
// несогласованное с сохраненной записью.
type PolicyResolver struct {
	defaults *domain.PolicySet
}

// NewPolicyResolver создает новый PolicyResolver.
// defaults == nil означает, что платформенная политика не сконфигурирована:
// каждый Resolve без индивидуальных конфигураций будет фатально падать.
func NewPolicyResolver(defaults *domain.PolicySet) *PolicyResolver {
	return &PolicyResolver{defaults: defaults}
}

// Resolve возвращает набор процентов для пары потребитель/мерчант
func (r *PolicyResolver) Resolve(ctx context.Context, tx domain.SettlementTx, consumerID, merchantID int64) (*domain.PolicySet, error) {
	consumerCfg, err := tx.GetCashbackConfig(ctx, consumerID)
	if err != nil {
		return nil, fmt.Errorf("policy: failed to get consumer config for user %d: %w", consumerID, err)
	}

	merchantCfg, err := tx.GetCashbackConfig(ctx, merchantID)
	if err != nil {
		return nil, fmt.Errorf("policy: failed to get merchant config for user %d: %w", merchantID, err)
	}

	// Без единой конфигурации и без дефолтов продолжать нельзя —
	// это фатальная ошибка развертывания, а не повод для ретрая
	if r.defaults == nil && (consumerCfg == nil || merchantCfg == nil) {
		return nil, domain.ErrPolicyNotFound
	}

	policy := &domain.PolicySet{}
	if consumerCfg != nil {
		policy.ConsumerPercent = consumerCfg.ConsumerPercent
		policy.ClubPercent = consumerCfg.ClubPercent
		policy.ConsumerReferrerPercent = consumerCfg.ConsumerReferrerPercent
	} else {
		policy.ConsumerPercent = r.defaults.ConsumerPercent
		policy.ClubPercent = r.defaults.ClubPercent
		policy.ConsumerReferrerPercent = r.defaults.ConsumerReferrerPercent
	}

	if merchantCfg != nil {
		policy.MerchantReferrerPercent = merchantCfg.MerchantReferrerPercent
	} else {
		policy.MerchantReferrerPercent = r.defaults.MerchantReferrerPercent
	}

	return policy, nil
}
