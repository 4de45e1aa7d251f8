package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/cashback-settlement/internal/domain"
	"github.com/jackc/pgx/v5"
)

// GetActiveUser получает активного пользователя по ID
func (s *Store) GetActiveUser(ctx context.Context, id int64) (*domain.User, error) {
	user := &domain.User{}

	err := s.db.QueryRow(ctx,
		`SELECT id, login, account_status, referred_by, created_at
		 FROM users
		 WHERE id = $1 AND account_status = $2`,
		id, domain.AccountStatusActive,
	).Scan(&user.ID, &user.Login, &user.AccountStatus, &user.ReferredBy, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get user by id %d: %w", id, err)
	}

	return user, nil
}

// GetActiveReferrer получает активного реферера пользователя.
// Ровно один переход referred_by. Возвращает nil без ошибки, если реферера
// нет или его аккаунт неактивен — неактивный реферер теряет комиссию,
// но не блокирует покупку.
func (s *Store) GetActiveReferrer(ctx context.Context, userID int64) (*domain.User, error) {
	referrer := &domain.User{}

	err := s.db.QueryRow(ctx,
		`SELECT r.id, r.login, r.account_status, r.referred_by, r.created_at
		 FROM users u
		 JOIN users r ON r.id = u.referred_by
		 WHERE u.id = $1 AND r.account_status = $2`,
		userID, domain.AccountStatusActive,
	).Scan(&referrer.ID, &referrer.Login, &referrer.AccountStatus, &referrer.ReferredBy, &referrer.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to get referrer for user %d: %w", userID, err)
	}

	return referrer, nil
}

// GetCashbackConfig получает конфигурацию процентов пользователя.
// Возвращает nil без ошибки, если индивидуальной конфигурации нет —
// тогда применяются платформенные значения по умолчанию.
func (s *Store) GetCashbackConfig(ctx context.Context, userID int64) (*domain.CashbackConfig, error) {
	cfg := &domain.CashbackConfig{}

	err := s.db.QueryRow(ctx,
		`SELECT id, user_id, consumer_percent, club_percent, consumer_referrer_percent, merchant_referrer_percent, reason, configured_by, configured_at
		 FROM cashback_configs
		 WHERE user_id = $1`,
		userID,
	).Scan(&cfg.ID, &cfg.UserID, &cfg.ConsumerPercent, &cfg.ClubPercent,
		&cfg.ConsumerReferrerPercent, &cfg.MerchantReferrerPercent,
		&cfg.Reason, &cfg.ConfiguredBy, &cfg.ConfiguredAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to get cashback config for user %d: %w", userID, err)
	}

	return cfg, nil
}
