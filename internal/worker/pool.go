package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/avc/cashback-settlement/internal/domain"
	"github.com/avc/cashback-settlement/internal/service"
	"go.uber.org/zap"
)

// Pool представляет пул воркеров, продвигающих незавершенные покупки.
// Сканер периодически собирает pending/processing покупки, воркеры
// опрашивают шлюз расчетов и проводят переходы через движок.
type Pool struct {
	workers       int
	queue         chan int64
	purchases     domain.PurchaseService
	store         domain.SettlementStore
	gatewayClient domain.GatewayClient
	logger        *zap.Logger
	wg            sync.WaitGroup
	scanInterval  time.Duration
}

// PoolConfig содержит конфигурацию worker pool
type PoolConfig struct {
	Workers      int
	QueueSize    int
	ScanInterval time.Duration
}

// NewPool создает новый worker pool
func NewPool(
	cfg PoolConfig,
	purchases domain.PurchaseService,
	store domain.SettlementStore,
	gatewayClient domain.GatewayClient,
	logger *zap.Logger,
) *Pool {
	return &Pool{
		workers:       cfg.Workers,
		queue:         make(chan int64, cfg.QueueSize),
		purchases:     purchases,
		store:         store,
		gatewayClient: gatewayClient,
		logger:        logger,
		scanInterval:  cfg.ScanInterval,
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	// Запускаем воркеры
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	// Запускаем сканер незавершенных покупок
	p.wg.Add(1)
	go p.scanner(ctx)
}

// Stop останавливает worker pool
func (p *Pool) Stop() {
	close(p.queue)
	p.wg.Wait()
}

// worker обрабатывает покупки из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case purchaseID, ok := <-p.queue:
			if !ok {
				return
			}
			p.processPurchase(ctx, purchaseID)
		}
	}
}

// scanner периодически сканирует незавершенные покупки
func (p *Pool) scanner(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("scanner stopping")
			return
		case <-ticker.C:
			p.scanUnsettled(ctx)
		}
	}
}

// scanUnsettled сканирует и отправляет незавершенные покупки в очередь
func (p *Pool) scanUnsettled(ctx context.Context) {
	purchases, err := p.store.ListPurchasesByStatus(ctx,
		domain.PurchaseStatusPending, domain.PurchaseStatusProcessing)
	if err != nil {
		p.logger.Error("failed to list unsettled purchases", zap.Error(err))
		return
	}

	for _, purchase := range purchases {
		select {
		case p.queue <- purchase.ID:
			// Успешно добавлено в очередь
		case <-ctx.Done():
			return
		default:
			// Очередь заполнена, пропускаем
			p.logger.Warn("queue is full, skipping purchase", zap.Int64("purchase_id", purchase.ID))
		}
	}
}

// processPurchase обрабатывает одну покупку
func (p *Pool) processPurchase(ctx context.Context, purchaseID int64) {
	p.logger.Debug("processing purchase", zap.Int64("purchase_id", purchaseID))

	status, err := p.gatewayClient.GetSettlementStatus(ctx, purchaseID)
	if err != nil {
		// Обработка rate limiting
		var rateLimitErr *service.RateLimitError
		if errors.As(err, &rateLimitErr) {
			p.logger.Warn("rate limit exceeded",
				zap.Int64("purchase_id", purchaseID),
				zap.Duration("retry_after", rateLimitErr.RetryAfter),
			)
			time.Sleep(rateLimitErr.RetryAfter)
			return
		}

		p.logger.Error("failed to get settlement status",
			zap.Int64("purchase_id", purchaseID),
			zap.Error(err),
		)
		return
	}

	// Покупка еще не зарегистрирована в шлюзе — подождем следующего скана
	if status == nil {
		return
	}

	switch status.Status {
	case domain.GatewayStatusRegistered:
		p.applyTransition(ctx, purchaseID, func() error {
			_, err := p.purchases.MarkProcessing(ctx, purchaseID)
			return err
		})

	case domain.GatewayStatusSettled:
		// Шлюз мог рассчитать покупку до первого опроса: сначала
		// фиксируем processing, затем завершаем с tx hash
		p.applyTransition(ctx, purchaseID, func() error {
			if _, err := p.purchases.MarkProcessing(ctx, purchaseID); err != nil {
				return err
			}
			_, err := p.purchases.Complete(ctx, purchaseID, status.TxHash)
			return err
		})

	case domain.GatewayStatusFailed:
		reason := "settlement gateway reported failure"
		if status.Reason != nil {
			reason = *status.Reason
		}
		p.applyTransition(ctx, purchaseID, func() error {
			_, err := p.purchases.Fail(ctx, purchaseID, reason)
			return err
		})

	default:
		p.logger.Warn("unknown gateway status",
			zap.Int64("purchase_id", purchaseID),
			zap.String("status", status.Status),
		)
	}
}

// applyTransition выполняет переход, не считая проигранную гонку ошибкой:
// покупку уже продвинул параллельный воркер или вебхук, следующий скан
// увидит свежий статус
func (p *Pool) applyTransition(ctx context.Context, purchaseID int64, fn func() error) {
	err := fn()
	if err == nil {
		return
	}

	if errors.Is(err, domain.ErrConcurrencyConflict) || errors.Is(err, domain.ErrInvalidTransition) {
		p.logger.Debug("transition skipped",
			zap.Int64("purchase_id", purchaseID),
			zap.Error(err),
		)
		return
	}

	p.logger.Error("failed to transition purchase",
		zap.Int64("purchase_id", purchaseID),
		zap.Error(err),
	)
}
