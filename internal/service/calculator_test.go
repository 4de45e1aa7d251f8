package service

import (
	"testing"

	"github.com/avc/cashback-settlement/internal/domain"
	"github.com/avc/cashback-settlement/internal/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amt(s string) money.Amount {
	return money.MustParseAmount(s)
}

func pct(s string) money.Percent {
	return money.MustParsePercent(s)
}

func TestComputeBreakdown(t *testing.T) {
	consumerReferrerID := int64(42)
	merchantReferrerID := int64(43)

	t.Run("No referrers", func(t *testing.T) {
		policy := domain.PolicySet{
			ConsumerPercent:         pct("70"),
			ConsumerReferrerPercent: pct("20"),
			MerchantReferrerPercent: pct("5"),
		}

		b, err := ComputeBreakdown(amt("100.00"), pct("10"), policy, domain.ReferralContext{})
		require.NoError(t, err)

		assert.Equal(t, "7.00", b.ConsumerCashback.String())
		assert.Equal(t, "90.00", b.MerchantAmount.String())
		assert.Equal(t, "3.00", b.PlatformFee.String())
		assert.True(t, b.ConsumerReferrerFee.IsZero())
		assert.True(t, b.MerchantReferrerFee.IsZero())
		assert.True(t, b.Sum().Equal(amt("100.00")))
	})

	t.Run("With consumer referrer", func(t *testing.T) {
		policy := domain.PolicySet{
			ConsumerPercent:         pct("70"),
			ConsumerReferrerPercent: pct("20"),
		}
		referrals := domain.ReferralContext{ConsumerReferrerID: &consumerReferrerID}

		b, err := ComputeBreakdown(amt("100.00"), pct("10"), policy, referrals)
		require.NoError(t, err)

		assert.Equal(t, "7.00", b.ConsumerCashback.String())
		assert.Equal(t, "2.00", b.ConsumerReferrerFee.String())
		assert.Equal(t, "90.00", b.MerchantAmount.String())
		assert.Equal(t, "1.00", b.PlatformFee.String())
		assert.True(t, b.Sum().Equal(amt("100.00")))
	})

	t.Run("With merchant referrer", func(t *testing.T) {
		policy := domain.PolicySet{
			ConsumerPercent:         pct("70"),
			MerchantReferrerPercent: pct("5"),
		}
		referrals := domain.ReferralContext{MerchantReferrerID: &merchantReferrerID}

		b, err := ComputeBreakdown(amt("100.00"), pct("10"), policy, referrals)
		require.NoError(t, err)

		// Комиссия реферера мерчанта считается от заработка мерчанта
		// и вычитается из его выплаты, платформа ее не платит
		assert.Equal(t, "4.50", b.MerchantReferrerFee.String())
		assert.Equal(t, "85.50", b.MerchantAmount.String())
		assert.Equal(t, "7.00", b.ConsumerCashback.String())
		assert.Equal(t, "3.00", b.PlatformFee.String())
		assert.True(t, b.Sum().Equal(amt("100.00")))
	})

	t.Run("Rounding dust goes to platform", func(t *testing.T) {
		policy := domain.PolicySet{ConsumerPercent: pct("70")}

		b, err := ComputeBreakdown(amt("10.01"), pct("10"), policy, domain.ReferralContext{})
		require.NoError(t, err)

		// pool = 1.001, доля потребителя 0.7007 -> 0.70,
		// заработок мерчанта 9.009 -> 9.01, остаток платформе
		assert.Equal(t, "0.70", b.ConsumerCashback.String())
		assert.Equal(t, "9.01", b.MerchantAmount.String())
		assert.Equal(t, "0.30", b.PlatformFee.String())
		assert.True(t, b.Sum().Equal(amt("10.01")))
	})

	t.Run("Half to even rounding", func(t *testing.T) {
		policy := domain.PolicySet{ConsumerPercent: pct("50")}

		b, err := ComputeBreakdown(amt("1.00"), pct("5"), policy, domain.ReferralContext{})
		require.NoError(t, err)

		// 0.025 округляется к четному: 0.02
		assert.Equal(t, "0.02", b.ConsumerCashback.String())
		assert.Equal(t, "0.95", b.MerchantAmount.String())
		assert.Equal(t, "0.03", b.PlatformFee.String())
		assert.True(t, b.Sum().Equal(amt("1.00")))
	})

	t.Run("Oversubscribed pool rejected", func(t *testing.T) {
		policy := domain.PolicySet{
			ConsumerPercent:         pct("90"),
			ConsumerReferrerPercent: pct("20"),
		}
		referrals := domain.ReferralContext{ConsumerReferrerID: &consumerReferrerID}

		b, err := ComputeBreakdown(amt("100.00"), pct("10"), policy, referrals)
		assert.ErrorIs(t, err, domain.ErrInvalidBreakdown)
		assert.Nil(t, b)
	})

	t.Run("Full pool to consumer", func(t *testing.T) {
		policy := domain.PolicySet{ConsumerPercent: pct("100")}

		b, err := ComputeBreakdown(amt("100.00"), pct("10"), policy, domain.ReferralContext{})
		require.NoError(t, err)

		assert.Equal(t, "10.00", b.ConsumerCashback.String())
		assert.Equal(t, "90.00", b.MerchantAmount.String())
		assert.True(t, b.PlatformFee.IsZero())
		assert.True(t, b.Sum().Equal(amt("100.00")))
	})

	t.Run("Zero cashback percent", func(t *testing.T) {
		policy := domain.PolicySet{ConsumerPercent: pct("70")}

		b, err := ComputeBreakdown(amt("50.00"), pct("0"), policy, domain.ReferralContext{})
		require.NoError(t, err)

		assert.True(t, b.ConsumerCashback.IsZero())
		assert.Equal(t, "50.00", b.MerchantAmount.String())
		assert.True(t, b.PlatformFee.IsZero())
		assert.True(t, b.Sum().Equal(amt("50.00")))
	})
}

func TestComputeBreakdown_SumInvariant(t *testing.T) {
	consumerReferrerID := int64(7)
	merchantReferrerID := int64(8)
	policy := domain.PolicySet{
		ConsumerPercent:         pct("66.5"),
		ConsumerReferrerPercent: pct("13.3"),
		MerchantReferrerPercent: pct("7.7"),
	}
	referrals := domain.ReferralContext{
		ConsumerReferrerID: &consumerReferrerID,
		MerchantReferrerID: &merchantReferrerID,
	}

	totals := []string{"0.01", "0.99", "1.00", "9.99", "33.33", "100.00", "12345.67", "99999.99"}
	for _, total := range totals {
		t.Run(total, func(t *testing.T) {
			b, err := ComputeBreakdown(amt(total), pct("12.5"), policy, referrals)
			require.NoError(t, err)
			assert.True(t, b.Sum().Equal(amt(total)),
				"components sum to %s, expected %s", b.Sum(), total)
		})
	}
}
