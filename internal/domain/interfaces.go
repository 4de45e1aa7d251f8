package domain

import "context"

// SettlementTx определяет чтения и записи, доступные внутри одной
// транзакции расчета. Все методы видят согласованный снимок данных:
// конфигурации и рефереры читаются в той же транзакции, что и вставка покупки.
type SettlementTx interface {
	// GetActiveUser возвращает активного пользователя или ErrUserNotFound
	GetActiveUser(ctx context.Context, id int64) (*User, error)
	// GetActiveProduct возвращает активный товар или ErrProductNotFound
	GetActiveProduct(ctx context.Context, id int64) (*Product, error)
	// GetCashbackConfig возвращает конфигурацию пользователя, nil без ошибки если ее нет
	GetCashbackConfig(ctx context.Context, userID int64) (*CashbackConfig, error)
	// GetActiveReferrer возвращает активного реферера пользователя, nil без ошибки если его нет
	GetActiveReferrer(ctx context.Context, userID int64) (*User, error)
	// DecrementStock атомарно уменьшает остаток товара или возвращает ErrInsufficientStock
	DecrementStock(ctx context.Context, productID int64, quantity int32) error
	// InsertPurchase вставляет новую покупку и возвращает ее с id и created_at
	InsertPurchase(ctx context.Context, purchase *Purchase) (*Purchase, error)
}

// SettlementStore определяет методы для работы с покупками
type SettlementStore interface {
	// CreatePurchase выполняет fn внутри одной транзакции БД.
	// Ошибка fn откатывает транзакцию целиком — частичное состояние не сохраняется.
	CreatePurchase(ctx context.Context, fn func(ctx context.Context, tx SettlementTx) (*Purchase, error)) (*Purchase, error)
	GetPurchase(ctx context.Context, id int64) (*Purchase, error)
	// UpdatePurchaseStatus выполняет условное обновление статуса одной строкой.
	// Возвращает ErrConcurrencyConflict, если статус уже не входит в from.
	UpdatePurchaseStatus(ctx context.Context, id int64, from []PurchaseStatus, to PurchaseStatus, txHash, reason *string) (*Purchase, error)
	ListPurchasesByStatus(ctx context.Context, statuses ...PurchaseStatus) ([]*Purchase, error)
}

// IdempotencyStore определяет хранилище ключей идемпотентности для CreatePurchase
type IdempotencyStore interface {
	// Reserve резервирует ключ. ok=true — ключ новый, можно создавать покупку.
	// ok=false и purchaseID>0 — покупка уже создана этим ключом.
	// ok=false и purchaseID==0 — параллельный запрос с тем же ключом еще в полете.
	Reserve(ctx context.Context, key string) (purchaseID int64, ok bool, err error)
	// Bind привязывает созданную покупку к ключу
	Bind(ctx context.Context, key string, purchaseID int64) error
	// Release освобождает ключ после неудачного создания
	Release(ctx context.Context, key string) error
}

// PurchaseService определяет операции жизненного цикла покупки
type PurchaseService interface {
	CreatePurchase(ctx context.Context, req PurchaseRequest) (*Purchase, error)
	GetPurchase(ctx context.Context, id int64) (*Purchase, error)
	MarkProcessing(ctx context.Context, id int64) (*Purchase, error)
	Complete(ctx context.Context, id int64, txHash *string) (*Purchase, error)
	Fail(ctx context.Context, id int64, reason string) (*Purchase, error)
	Refund(ctx context.Context, id int64) (*Purchase, error)
}

// GatewayClient определяет методы взаимодействия с внешним шлюзом расчетов
type GatewayClient interface {
	GetSettlementStatus(ctx context.Context, purchaseID int64) (*SettlementStatus, error)
}
