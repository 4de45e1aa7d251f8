package domain

import "errors"

// Ошибки валидации запроса (вина вызывающей стороны, не ретраятся)
var (
	ErrValidation        = errors.New("invalid purchase request")
	ErrUserNotFound      = errors.New("user not found or inactive")
	ErrProductNotFound   = errors.New("product not found or inactive")
	ErrSelfPurchase      = errors.New("consumer and merchant must differ")
	ErrInsufficientStock = errors.New("insufficient product stock")
)

// Фатальные ошибки конфигурации и расчета
var (
	ErrPolicyNotFound   = errors.New("no cashback policy configured")
	ErrInvalidBreakdown = errors.New("settlement breakdown has negative component")
)

// Ошибки жизненного цикла покупки
var (
	ErrPurchaseNotFound    = errors.New("purchase not found")
	ErrInvalidTransition   = errors.New("invalid purchase status transition")
	ErrConcurrencyConflict = errors.New("purchase was modified concurrently")
	ErrDuplicateRequest    = errors.New("duplicate purchase request in flight")
)
