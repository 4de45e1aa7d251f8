package app

import (
	"github.com/avc/cashback-settlement/internal/config"
	"github.com/avc/cashback-settlement/internal/domain"
	"github.com/avc/cashback-settlement/internal/handlers"
	"github.com/avc/cashback-settlement/internal/repository/postgres"
	redisrepo "github.com/avc/cashback-settlement/internal/repository/redis"
	"github.com/avc/cashback-settlement/internal/service"
	"github.com/avc/cashback-settlement/internal/utils/jwt"
	"github.com/avc/cashback-settlement/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	purchases *handlers.PurchasesHandler
	health    *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	store      domain.SettlementStore
	ledger     *service.Ledger
	handlers   *handlerSet
	jwtManager *jwt.Manager
	workerPool *worker.Pool
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) (*dependencies, error) {
	// Хранилище покупок
	store := postgres.NewStore(dbPool)

	// Хранилище ключей идемпотентности — опционально
	var idempotency domain.IdempotencyStore
	if cfg.RedisAddress != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
		idempotency = redisrepo.NewIdempotencyStore(rdb, cfg.IdempotencyTTL)
		logger.Info("idempotency store enabled", zap.String("redis", cfg.RedisAddress))
	} else {
		logger.Warn("idempotency store disabled: no redis address configured")
	}

	// Движок расчетов
	ledger := service.NewLedger(
		store,
		service.NewPolicyResolver(cfg.DefaultPolicy),
		service.NewReferralResolver(),
		idempotency,
		logger,
	)

	// Клиент шлюза расчетов
	gatewayClient := service.NewGatewayClient(cfg.GatewayAddress)

	// Сервисные токены
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	// Создание handlers
	hdlrs := &handlerSet{
		purchases: handlers.NewPurchasesHandler(ledger, logger),
		health:    handlers.NewHealthHandler(dbPool, logger),
	}

	// Создание worker pool
	workerPoolConfig := worker.PoolConfig{
		Workers:      cfg.WorkerPoolSize,
		QueueSize:    cfg.WorkerQueueSize,
		ScanInterval: cfg.WorkerScanInterval,
	}
	workerPool := worker.NewPool(workerPoolConfig, ledger, store, gatewayClient, logger)

	return &dependencies{
		store:      store,
		ledger:     ledger,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		workerPool: workerPool,
	}, nil
}
