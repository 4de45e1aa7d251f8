package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/avc/cashback-settlement/internal/domain"
	"github.com/avc/cashback-settlement/internal/money"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress     string        // Адрес и порт запуска сервиса
	DatabaseURI    string        // URI подключения к БД
	GatewayAddress string        // Адрес внешнего шлюза расчетов
	RedisAddress   string        // Адрес Redis; пусто — идемпотентность выключена
	JWTSecret      string        // Секретный ключ сервисных токенов
	JWTTokenTTL    time.Duration // Время жизни сервисного токена
	LogLevel       string        // Уровень логирования

	// Worker Pool конфигурация
	WorkerPoolSize     int           // Количество воркеров
	WorkerQueueSize    int           // Размер очереди покупок
	WorkerScanInterval time.Duration // Интервал сканирования незавершенных покупок

	// Платформенная политика распределения по умолчанию,
	// применяется при отсутствии индивидуальной конфигурации пользователя
	DefaultPolicy *domain.PolicySet

	// TTL ключей идемпотентности
	IdempotencyTTL time.Duration
}

// Load загружает конфигурацию из переменных окружения и флагов
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	cfg := &Config{
		JWTTokenTTL:        24 * time.Hour,
		LogLevel:           "info",
		WorkerPoolSize:     3,
		WorkerQueueSize:    100,
		WorkerScanInterval: 10 * time.Second,
		IdempotencyTTL:     24 * time.Hour,
	}

	// Определяем флаги
	flag.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flag.StringVar(&cfg.GatewayAddress, "g", "", "settlement gateway address")
	flag.StringVar(&cfg.RedisAddress, "r", "", "redis address for idempotency keys")
	flag.Parse()

	// Переменные окружения имеют приоритет над флагами
	if envRunAddr, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = envRunAddr
	}

	if envDBURI, ok := os.LookupEnv("DATABASE_URI"); ok {
		cfg.DatabaseURI = envDBURI
	}

	if envGatewayAddr, ok := os.LookupEnv("SETTLEMENT_GATEWAY_ADDRESS"); ok {
		cfg.GatewayAddress = envGatewayAddr
	}

	if envRedisAddr, ok := os.LookupEnv("REDIS_ADDRESS"); ok {
		cfg.RedisAddress = envRedisAddr
	}

	// JWT секрет (только из env, не из флагов для безопасности)
	if envJWTSecret, ok := os.LookupEnv("JWT_SECRET"); ok {
		cfg.JWTSecret = envJWTSecret
	} else {
		cfg.JWTSecret = "default-secret-key-change-in-production"
	}

	// Уровень логирования
	if envLogLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = envLogLevel
	}

	// Worker Pool конфигурация из env
	if envWorkerPoolSize, ok := os.LookupEnv("WORKER_POOL_SIZE"); ok {
		if size, err := strconv.Atoi(envWorkerPoolSize); err == nil && size > 0 {
			cfg.WorkerPoolSize = size
		}
	}

	if envWorkerQueueSize, ok := os.LookupEnv("WORKER_QUEUE_SIZE"); ok {
		if size, err := strconv.Atoi(envWorkerQueueSize); err == nil && size > 0 {
			cfg.WorkerQueueSize = size
		}
	}

	if envScanInterval, ok := os.LookupEnv("WORKER_SCAN_INTERVAL"); ok {
		if interval, err := time.ParseDuration(envScanInterval); err == nil && interval > 0 {
			cfg.WorkerScanInterval = interval
		}
	}

	if envIdempotencyTTL, ok := os.LookupEnv("IDEMPOTENCY_TTL"); ok {
		if ttl, err := time.ParseDuration(envIdempotencyTTL); err == nil && ttl > 0 {
			cfg.IdempotencyTTL = ttl
		}
	}

	// Платформенная политика по умолчанию
	policy, err := loadDefaultPolicy()
	if err != nil {
		return nil, err
	}
	cfg.DefaultPolicy = policy

	// Валидация обязательных параметров
	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	if cfg.GatewayAddress == "" {
		return nil, fmt.Errorf("settlement gateway address is required (use -g flag or SETTLEMENT_GATEWAY_ADDRESS env)")
	}

	return cfg, nil
}

// loadDefaultPolicy читает платформенные проценты из окружения.
// Ни одна переменная не задана — политика по умолчанию отсутствует,
// и покупки пользователей без индивидуальной конфигурации будут отклоняться.
func loadDefaultPolicy() (*domain.PolicySet, error) {
	values := map[string]string{
		"DEFAULT_CONSUMER_PERCENT":          "70",
		"DEFAULT_CLUB_PERCENT":              "0",
		"DEFAULT_CONSUMER_REFERRER_PERCENT": "0",
		"DEFAULT_MERCHANT_REFERRER_PERCENT": "0",
	}

	anySet := false
	for name := range values {
		if env, ok := os.LookupEnv(name); ok {
			values[name] = env
			anySet = true
		}
	}

	// Явное отключение платформенной политики
	if env, ok := os.LookupEnv("DEFAULT_POLICY_ENABLED"); ok && env == "false" {
		if anySet {
			return nil, fmt.Errorf("DEFAULT_POLICY_ENABLED=false conflicts with DEFAULT_*_PERCENT variables")
		}
		return nil, nil
	}

	policy := &domain.PolicySet{}
	assignments := []struct {
		name   string
		target *money.Percent
	}{
		{"DEFAULT_CONSUMER_PERCENT", &policy.ConsumerPercent},
		{"DEFAULT_CLUB_PERCENT", &policy.ClubPercent},
		{"DEFAULT_CONSUMER_REFERRER_PERCENT", &policy.ConsumerReferrerPercent},
		{"DEFAULT_MERCHANT_REFERRER_PERCENT", &policy.MerchantReferrerPercent},
	}
	for _, a := range assignments {
		percent, err := money.ParsePercent(values[a.name])
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", a.name, err)
		}
		*a.target = percent
	}

	// Потребительские доли пула не могут превышать 100%
	sum := policy.ConsumerPercent.Add(policy.ClubPercent).Add(policy.ConsumerReferrerPercent)
	if sum.GreaterThan(money.MustParsePercent("100")) {
		return nil, fmt.Errorf("default consumer-side percentages sum above 100")
	}

	return policy, nil
}
