// Package redis содержит Redis-хранилище ключей идемпотентности.
// CreatePurchase не идемпотентен сам по себе: сетевой ретрай без ключа
// создал бы дубликат покупки. Ключ резервируется до создания и привязывается
// к покупке после — повторный запрос возвращает уже созданную запись.
package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Значение ключа между Reserve и Bind
const reservedMarker = "reserved"

// IdempotencyStore реализует domain.IdempotencyStore поверх Redis
type IdempotencyStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewIdempotencyStore создает новое хранилище ключей идемпотентности
func NewIdempotencyStore(rdb *redis.Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{
		rdb: rdb,
		ttl: ttl,
	}
}

func (s *IdempotencyStore) key(key string) string {
	return "idempotency:" + key
}

// Reserve атомарно резервирует ключ через SETNX.
// Ключ свободен — ok=true, можно создавать покупку.
// Ключ уже привязан к покупке — возвращается ее id.
// Ключ зарезервирован, но не привязан — параллельный запрос еще в полете.
func (s *IdempotencyStore) Reserve(ctx context.Context, key string) (int64, bool, error) {
	ok, err := s.rdb.SetNX(ctx, s.key(key), reservedMarker, s.ttl).Result()
	if err != nil {
		return 0, false, fmt.Errorf("idempotency: failed to reserve key %q: %w", key, err)
	}
	if ok {
		return 0, true, nil
	}

	value, err := s.rdb.Get(ctx, s.key(key)).Result()
	if err != nil {
		// Ключ истек между SetNX и Get — считаем запрос дубликатом в полете,
		// вызывающая сторона повторит позже
		if err == redis.Nil {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("idempotency: failed to read key %q: %w", key, err)
	}

	if value == reservedMarker {
		return 0, false, nil
	}

	purchaseID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("idempotency: malformed purchase id %q for key %q: %w", value, key, err)
	}

	return purchaseID, false, nil
}

// Bind привязывает созданную покупку к ключу
func (s *IdempotencyStore) Bind(ctx context.Context, key string, purchaseID int64) error {
	err := s.rdb.Set(ctx, s.key(key), strconv.FormatInt(purchaseID, 10), s.ttl).Err()
	if err != nil {
		return fmt.Errorf("idempotency: failed to bind key %q: %w", key, err)
	}
	return nil
}

// Release освобождает ключ после неудачного создания покупки,
// чтобы ретрай вызывающей стороны не застрял до истечения TTL
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("idempotency: failed to release key %q: %w", key, err)
	}
	return nil
}
