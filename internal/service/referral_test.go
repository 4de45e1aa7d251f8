package service

import (
	"context"
	"errors"
	"testing"

	"github.com/avc/cashback-settlement/internal/domain"
	domainmocks "github.com/avc/cashback-settlement/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReferralResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	resolver := NewReferralResolver()

	t.Run("Both referrers present", func(t *testing.T) {
		mockTx := domainmocks.NewSettlementTxMock(t)
		consumerReferrer := &domain.User{ID: 10, AccountStatus: domain.AccountStatusActive}
		merchantReferrer := &domain.User{ID: 20, AccountStatus: domain.AccountStatusActive}

		mockTx.EXPECT().GetActiveReferrer(mock.Anything, int64(1)).Return(consumerReferrer, nil).Once()
		mockTx.EXPECT().GetActiveReferrer(mock.Anything, int64(2)).Return(merchantReferrer, nil).Once()

		result, err := resolver.Resolve(ctx, mockTx, 1, 2)
		require.NoError(t, err)
		require.NotNil(t, result.ConsumerReferrerID)
		require.NotNil(t, result.MerchantReferrerID)
		assert.Equal(t, int64(10), *result.ConsumerReferrerID)
		assert.Equal(t, int64(20), *result.MerchantReferrerID)
	})

	t.Run("No referrers", func(t *testing.T) {
		mockTx := domainmocks.NewSettlementTxMock(t)

		mockTx.EXPECT().GetActiveReferrer(mock.Anything, int64(1)).Return(nil, nil).Once()
		mockTx.EXPECT().GetActiveReferrer(mock.Anything, int64(2)).Return(nil, nil).Once()

		result, err := resolver.Resolve(ctx, mockTx, 1, 2)
		require.NoError(t, err)
		assert.Nil(t, result.ConsumerReferrerID)
		assert.Nil(t, result.MerchantReferrerID)
	})

	t.Run("Consumer referrer only", func(t *testing.T) {
		mockTx := domainmocks.NewSettlementTxMock(t)
		consumerReferrer := &domain.User{ID: 10, AccountStatus: domain.AccountStatusActive}

		mockTx.EXPECT().GetActiveReferrer(mock.Anything, int64(1)).Return(consumerReferrer, nil).Once()
		mockTx.EXPECT().GetActiveReferrer(mock.Anything, int64(2)).Return(nil, nil).Once()

		result, err := resolver.Resolve(ctx, mockTx, 1, 2)
		require.NoError(t, err)
		require.NotNil(t, result.ConsumerReferrerID)
		assert.Nil(t, result.MerchantReferrerID)
	})

	t.Run("Database error", func(t *testing.T) {
		mockTx := domainmocks.NewSettlementTxMock(t)

		mockTx.EXPECT().GetActiveReferrer(mock.Anything, int64(1)).Return(nil, errors.New("db error")).Once()

		result, err := resolver.Resolve(ctx, mockTx, 1, 2)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
