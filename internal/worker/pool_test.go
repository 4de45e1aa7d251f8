package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/cashback-settlement/internal/domain"
	domainmocks "github.com/avc/cashback-settlement/internal/domain/mocks"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestPool(t *testing.T) (*Pool, *domainmocks.PurchaseServiceMock, *domainmocks.SettlementStoreMock, *domainmocks.GatewayClientMock) {
	mockPurchases := domainmocks.NewPurchaseServiceMock(t)
	mockStore := domainmocks.NewSettlementStoreMock(t)
	mockGateway := domainmocks.NewGatewayClientMock(t)
	logger, _ := zap.NewDevelopment()

	cfg := PoolConfig{Workers: 1, QueueSize: 10, ScanInterval: time.Second}
	pool := NewPool(cfg, mockPurchases, mockStore, mockGateway, logger)
	return pool, mockPurchases, mockStore, mockGateway
}

func TestPool_ProcessPurchase_Settled(t *testing.T) {
	pool, mockPurchases, _, mockGateway := newTestPool(t)
	ctx := context.Background()

	txHash := "0xabc"
	status := &domain.SettlementStatus{
		PurchaseID: 100,
		Status:     domain.GatewayStatusSettled,
		TxHash:     &txHash,
	}
	processing := &domain.Purchase{ID: 100, Status: domain.PurchaseStatusProcessing}
	completed := &domain.Purchase{ID: 100, Status: domain.PurchaseStatusCompleted, TxHash: &txHash}

	mockGateway.EXPECT().GetSettlementStatus(mock.Anything, int64(100)).Return(status, nil).Once()
	mockPurchases.EXPECT().MarkProcessing(mock.Anything, int64(100)).Return(processing, nil).Once()
	mockPurchases.EXPECT().Complete(mock.Anything, int64(100), &txHash).Return(completed, nil).Once()

	pool.processPurchase(ctx, 100)
}

func TestPool_ProcessPurchase_Registered(t *testing.T) {
	pool, mockPurchases, _, mockGateway := newTestPool(t)
	ctx := context.Background()

	status := &domain.SettlementStatus{
		PurchaseID: 100,
		Status:     domain.GatewayStatusRegistered,
	}
	processing := &domain.Purchase{ID: 100, Status: domain.PurchaseStatusProcessing}

	mockGateway.EXPECT().GetSettlementStatus(mock.Anything, int64(100)).Return(status, nil).Once()
	mockPurchases.EXPECT().MarkProcessing(mock.Anything, int64(100)).Return(processing, nil).Once()

	pool.processPurchase(ctx, 100)
}

func TestPool_ProcessPurchase_Failed(t *testing.T) {
	pool, mockPurchases, _, mockGateway := newTestPool(t)
	ctx := context.Background()

	reason := "card declined"
	status := &domain.SettlementStatus{
		PurchaseID: 100,
		Status:     domain.GatewayStatusFailed,
		Reason:     &reason,
	}
	failed := &domain.Purchase{ID: 100, Status: domain.PurchaseStatusFailed, FailReason: &reason}

	mockGateway.EXPECT().GetSettlementStatus(mock.Anything, int64(100)).Return(status, nil).Once()
	mockPurchases.EXPECT().Fail(mock.Anything, int64(100), reason).Return(failed, nil).Once()

	pool.processPurchase(ctx, 100)
}

func TestPool_ProcessPurchase_NotRegistered(t *testing.T) {
	pool, _, _, mockGateway := newTestPool(t)
	ctx := context.Background()

	// Покупка еще не зарегистрирована в шлюзе — переходов нет
	mockGateway.EXPECT().GetSettlementStatus(mock.Anything, int64(100)).Return(nil, nil).Once()

	pool.processPurchase(ctx, 100)
}

func TestPool_ProcessPurchase_LostRaceIsBenign(t *testing.T) {
	pool, mockPurchases, _, mockGateway := newTestPool(t)
	ctx := context.Background()

	status := &domain.SettlementStatus{
		PurchaseID: 100,
		Status:     domain.GatewayStatusRegistered,
	}

	// Параллельный воркер уже продвинул покупку — не ошибка
	mockGateway.EXPECT().GetSettlementStatus(mock.Anything, int64(100)).Return(status, nil).Once()
	mockPurchases.EXPECT().MarkProcessing(mock.Anything, int64(100)).Return(nil, domain.ErrConcurrencyConflict).Once()

	pool.processPurchase(ctx, 100)
}

func TestPool_ProcessPurchase_GatewayError(t *testing.T) {
	pool, _, _, mockGateway := newTestPool(t)
	ctx := context.Background()

	mockGateway.EXPECT().GetSettlementStatus(mock.Anything, int64(100)).Return(nil, errors.New("connection refused")).Once()

	pool.processPurchase(ctx, 100)
}

func TestPool_ScanUnsettled(t *testing.T) {
	pool, _, mockStore, _ := newTestPool(t)
	ctx := context.Background()

	unsettled := []*domain.Purchase{
		{ID: 1, Status: domain.PurchaseStatusPending},
		{ID: 2, Status: domain.PurchaseStatusProcessing},
	}

	mockStore.EXPECT().ListPurchasesByStatus(mock.Anything,
		domain.PurchaseStatusPending, domain.PurchaseStatusProcessing).Return(unsettled, nil).Once()

	pool.scanUnsettled(ctx)

	// Проверяем, что покупки добавлены в очередь
	for i := 0; i < 2; i++ {
		select {
		case id := <-pool.queue:
			if id != 1 && id != 2 {
				t.Errorf("unexpected purchase id in queue: %d", id)
			}
		case <-time.After(100 * time.Millisecond):
			t.Error("expected purchase in queue, got timeout")
		}
	}
}

func TestPool_ScanUnsettled_ListError(t *testing.T) {
	pool, _, mockStore, _ := newTestPool(t)
	ctx := context.Background()

	mockStore.EXPECT().ListPurchasesByStatus(mock.Anything,
		domain.PurchaseStatusPending, domain.PurchaseStatusProcessing).
		Return(nil, errors.New("database error")).Once()

	pool.scanUnsettled(ctx)

	select {
	case id := <-pool.queue:
		t.Errorf("queue must stay empty on scan error, got %d", id)
	default:
	}
}
