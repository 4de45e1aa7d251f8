package domain

import (
	"time"

	"github.com/avc/cashback-settlement/internal/money"
)

// AccountStatus представляет статус аккаунта пользователя
type AccountStatus string

const (
	AccountStatusActive  AccountStatus = "active"
	AccountStatusBlocked AccountStatus = "blocked"
	AccountStatusDeleted AccountStatus = "deleted"
)

// PurchaseStatus представляет статус покупки
type PurchaseStatus string

const (
	PurchaseStatusPending    PurchaseStatus = "pending"
	PurchaseStatusProcessing PurchaseStatus = "processing"
	PurchaseStatusCompleted  PurchaseStatus = "completed"
	PurchaseStatusFailed     PurchaseStatus = "failed"
	PurchaseStatusRefunded   PurchaseStatus = "refunded"
)

// Terminal сообщает, является ли статус терминальным
func (s PurchaseStatus) Terminal() bool {
	return s == PurchaseStatusFailed || s == PurchaseStatusRefunded
}

// TransitionEvent представляет событие перехода покупки между статусами
type TransitionEvent string

const (
	EventMarkProcessing TransitionEvent = "mark_processing"
	EventComplete       TransitionEvent = "complete"
	EventFail           TransitionEvent = "fail"
	EventRefund         TransitionEvent = "refund"
)

// User представляет пользователя платформы (потребитель или мерчант)
type User struct {
	ID            int64         `json:"id"`
	Login         string        `json:"login"`
	AccountStatus AccountStatus `json:"account_status"`
	ReferredBy    *int64        `json:"referred_by,omitempty"` // Может быть null
	CreatedAt     time.Time     `json:"created_at"`
}

// Product представляет товар мерчанта.
// Цена и процент кэшбэка фиксируются в покупке на момент создания —
// последующие изменения товара не влияют на уже созданные покупки.
type Product struct {
	ID              int64         `json:"id"`
	MerchantID      int64         `json:"merchant_id"`
	Name            string        `json:"name"`
	Price           money.Amount  `json:"price"`
	CashbackPercent money.Percent `json:"cashback_percent"`
	Stock           int32         `json:"stock"`
	Status          string        `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
}

// CashbackConfig представляет индивидуальную конфигурацию процентов
// для пользователя. Не более одной активной конфигурации на пользователя.
// Движок расчетов читает конфигурацию, но никогда не изменяет ее.
type CashbackConfig struct {
	ID                      int64         `json:"id"`
	UserID                  int64         `json:"user_id"`
	ConsumerPercent         money.Percent `json:"consumer_percent"`
	ClubPercent             money.Percent `json:"club_percent"`
	ConsumerReferrerPercent money.Percent `json:"consumer_referrer_percent"`
	MerchantReferrerPercent money.Percent `json:"merchant_referrer_percent"`
	Reason                  string        `json:"reason"`
	ConfiguredBy            string        `json:"configured_by"`
	ConfiguredAt            time.Time     `json:"configured_at"`
}

// PolicySet представляет набор процентов, применимый к конкретной покупке
type PolicySet struct {
	ConsumerPercent         money.Percent
	ClubPercent             money.Percent
	ConsumerReferrerPercent money.Percent
	MerchantReferrerPercent money.Percent
}

// ReferralContext содержит рефереров сторон покупки.
// Nil означает отсутствие активного реферера — комиссия не начисляется.
type ReferralContext struct {
	ConsumerReferrerID *int64
	MerchantReferrerID *int64
}

// SettlementBreakdown представляет пятистороннее распределение суммы покупки
type SettlementBreakdown struct {
	MerchantAmount      money.Amount `json:"merchant_amount"`
	ConsumerCashback    money.Amount `json:"consumer_cashback"`
	PlatformFee         money.Amount `json:"platform_fee"`
	ConsumerReferrerFee money.Amount `json:"consumer_referrer_fee"`
	MerchantReferrerFee money.Amount `json:"merchant_referrer_fee"`
}

// Sum возвращает сумму всех компонент распределения
func (b *SettlementBreakdown) Sum() money.Amount {
	return b.MerchantAmount.
		Add(b.ConsumerCashback).
		Add(b.PlatformFee).
		Add(b.ConsumerReferrerFee).
		Add(b.MerchantReferrerFee)
}

// PurchaseRequest представляет запрос на создание покупки
type PurchaseRequest struct {
	ConsumerID     int64  `json:"consumer_id"`
	MerchantID     int64  `json:"merchant_id"`
	ProductID      int64  `json:"product_id"`
	Quantity       int32  `json:"quantity"`
	IdempotencyKey string `json:"-"` // Опционально, из заголовка запроса
}

// Purchase представляет покупку с зафиксированным распределением суммы.
// Запись создается движком расчетов и никогда не удаляется:
// refunded — терминальный статус, а не удаление.
type Purchase struct {
	ID                  int64          `json:"id"`
	ConsumerID          int64          `json:"consumer_id"`
	MerchantID          int64          `json:"merchant_id"`
	ProductID           int64          `json:"product_id"`
	Quantity            int32          `json:"quantity"`
	TotalAmount         money.Amount   `json:"total_amount"`
	MerchantAmount      money.Amount   `json:"merchant_amount"`
	ConsumerCashback    money.Amount   `json:"consumer_cashback"`
	PlatformFee         money.Amount   `json:"platform_fee"`
	ConsumerReferrerFee money.Amount   `json:"consumer_referrer_fee"`
	MerchantReferrerFee money.Amount   `json:"merchant_referrer_fee"`
	Status              PurchaseStatus `json:"status"`
	TxHash              *string        `json:"tx_hash,omitempty"`     // Может быть null
	FailReason          *string        `json:"fail_reason,omitempty"` // Может быть null
	CreatedAt           time.Time      `json:"created_at"`
	CompletedAt         *time.Time     `json:"completed_at,omitempty"`
}

// Breakdown возвращает распределение суммы покупки
func (p *Purchase) Breakdown() *SettlementBreakdown {
	return &SettlementBreakdown{
		MerchantAmount:      p.MerchantAmount,
		ConsumerCashback:    p.ConsumerCashback,
		PlatformFee:         p.PlatformFee,
		ConsumerReferrerFee: p.ConsumerReferrerFee,
		MerchantReferrerFee: p.MerchantReferrerFee,
	}
}

// SettlementStatus представляет ответ внешнего шлюза расчетов
type SettlementStatus struct {
	PurchaseID int64   `json:"purchase_id"`
	Status     string  `json:"status"` // "registered", "settled", "failed"
	TxHash     *string `json:"tx_hash,omitempty"`
	Reason     *string `json:"reason,omitempty"`
}

// Статусы внешнего шлюза расчетов
const (
	GatewayStatusRegistered = "registered"
	GatewayStatusSettled    = "settled"
	GatewayStatusFailed     = "failed"
)
