package service

import (
	"fmt"

	"github.com/avc/cashback-settlement/internal/domain"
	"github.com/avc/cashback-settlement/internal/money"
)

// ComputeBreakdown — чистая функция расчета распределения суммы покупки.
//
// Схема распределения:
//  1. Пул кэшбэка = totalAmount * cashbackPercent товара.
//  2. Кэшбэк потребителя — доля пула по ConsumerPercent политики.
//  3. Комиссия реферера потребителя — доля пула по ConsumerReferrerPercent,
//     только при активном реферере. Без реферера сумма не исчезает,
//     а остается в комиссии платформы.
//  4. Комиссия реферера мерчанта считается от заработка мерчанта
//     (totalAmount минус пул), не от пула кэшбэка, и вычитается
//     из выплаты мерчанту.
//  5. Комиссия платформы — точный остаток. Она никогда не вычисляется
//     независимо, поэтому сумма всех компонент равна totalAmount
//     с точностью до минорной единицы при любом округлении:
//     округление всегда абсорбирует платформа, не потребитель и не мерчант.
func ComputeBreakdown(
	total money.Amount,
	productPercent money.Percent,
	policy domain.PolicySet,
	referrals domain.ReferralContext,
) (*domain.SettlementBreakdown, error) {
	// Пул кэшбэка с полной внутренней точностью
	pool := productPercent.Of(total)

	consumerCashback := policy.ConsumerPercent.Of(pool).Round()

	consumerReferrerFee := money.Zero()
	if referrals.ConsumerReferrerID != nil {
		consumerReferrerFee = policy.ConsumerReferrerPercent.Of(pool).Round()
	}

	merchantEarned := total.Sub(pool)
	merchantReferrerFee := money.Zero()
	if referrals.MerchantReferrerID != nil {
		merchantReferrerFee = policy.MerchantReferrerPercent.Of(merchantEarned).Round()
	}

	merchantAmount := merchantEarned.Round().Sub(merchantReferrerFee)

	// Остаток достается платформе — так инвариант суммы держится точно
	platformFee := total.
		Sub(merchantAmount).
		Sub(consumerCashback).
		Sub(consumerReferrerFee).
		Sub(merchantReferrerFee)

	breakdown := &domain.SettlementBreakdown{
		MerchantAmount:      merchantAmount,
		ConsumerCashback:    consumerCashback,
		PlatformFee:         platformFee,
		ConsumerReferrerFee: consumerReferrerFee,
		MerchantReferrerFee: merchantReferrerFee,
	}

	if err := validateBreakdown(breakdown, total); err != nil {
		return nil, err
	}

	return breakdown, nil
}

// validateBreakdown проверяет неотрицательность компонент и инвариант суммы
func validateBreakdown(b *domain.SettlementBreakdown, total money.Amount) error {
	components := map[string]money.Amount{
		"merchant_amount":       b.MerchantAmount,
		"consumer_cashback":     b.ConsumerCashback,
		"platform_fee":          b.PlatformFee,
		"consumer_referrer_fee": b.ConsumerReferrerFee,
		"merchant_referrer_fee": b.MerchantReferrerFee,
	}
	for name, amount := range components {
		if amount.IsNegative() {
			return fmt.Errorf("%w: %s = %s", domain.ErrInvalidBreakdown, name, amount)
		}
	}

	if !b.Sum().Equal(total) {
		return fmt.Errorf("%w: components sum to %s, expected %s",
			domain.ErrInvalidBreakdown, b.Sum(), total)
	}

	return nil
}
