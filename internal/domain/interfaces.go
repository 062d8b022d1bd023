package domain

import (
	"context"
	"time"
)

// OrderRepository определяет методы для работы с заказами
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order, items []OrderItem) (*Order, error)
	GetOrderByID(ctx context.Context, id int64) (*Order, error)
	GetOrderByNumber(ctx context.Context, number string) (*Order, error)
	GetOrdersByUserID(ctx context.Context, userID int64) ([]*Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status OrderStatus, version int64) error
	SoftDeleteOrder(ctx context.Context, id int64) error
}

// LedgerRepository определяет методы для работы с журналом баллов
type LedgerRepository interface {
	InsertEarn(ctx context.Context, userID, amount int64, sourceType SourceType, sourceRef string, expiresAt *time.Time) (*LedgerEntry, error)
	UseWithLock(ctx context.Context, userID, amount int64, sourceType SourceType, sourceRef string) (*LedgerEntry, error)
	ExpireDueForUser(ctx context.Context, userID int64, now time.Time) ([]*LedgerEntry, error)
	UsersWithExpired(ctx context.Context, now time.Time) ([]int64, error)
	CancelBySource(ctx context.Context, userID int64, sourceType SourceType, sourceRef string) ([]*LedgerEntry, error)
	GetBalance(ctx context.Context, userID int64) (*Balance, error)
	GetEntriesByUser(ctx context.Context, userID int64) ([]*LedgerEntry, error)
}

// SettlementRepository применяет смену статуса заказа вместе со
// связанными операциями журнала баллов в одной транзакции: либо
// фиксируется и статус, и расчёт, либо ничего.
type SettlementRepository interface {
	SettleTransition(ctx context.Context, order *Order, target OrderStatus, earnExpiresAt *time.Time) error
}

// RewardRepository определяет методы для работы с событиями вознаграждений
type RewardRepository interface {
	CreateEvent(ctx context.Context, event *RewardEvent) (*RewardEvent, error)
	GetEventByID(ctx context.Context, id int64) (*RewardEvent, error)
	FindBySource(ctx context.Context, relatedType RelatedType, relatedID int64, rewardType RewardType) (*RewardEvent, error)
	ListDue(ctx context.Context, maxRetries int, staleBefore time.Time, limit int) ([]*RewardEvent, error)
	ClaimEvent(ctx context.Context, id int64, staleBefore time.Time, maxRetries int) (bool, error)
	MarkProcessed(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64, message string) error
	ResetForRetry(ctx context.Context, id int64) error
}

// ProductPricer определяет методы получения цен от каталога товаров
type ProductPricer interface {
	PriceItems(ctx context.Context, items []OrderItemRequest) ([]PricedItem, error)
}

// Notifier определяет методы отправки уведомлений.
// Ошибки отправки логируются вызывающей стороной и не прерывают операцию.
type Notifier interface {
	OrderStatusChanged(ctx context.Context, order *Order) error
	RewardGranted(ctx context.Context, event *RewardEvent) error
}

// BalanceCache определяет методы кеширования баланса баллов
type BalanceCache interface {
	Get(ctx context.Context, userID int64) (*Balance, bool, error)
	Set(ctx context.Context, userID int64, balance *Balance) error
	Invalidate(ctx context.Context, userID int64) error
}

// PointLedger определяет операции сервиса журнала баллов
type PointLedger interface {
	Earn(ctx context.Context, userID, amount int64, sourceType SourceType, sourceRef string, expiresAt *time.Time) (*LedgerEntry, error)
	Use(ctx context.Context, userID, amount int64, sourceType SourceType, sourceRef string) (*LedgerEntry, error)
	Cancel(ctx context.Context, userID int64, sourceType SourceType, sourceRef string) ([]*LedgerEntry, error)
	ExpireDue(ctx context.Context, userID int64, now time.Time) ([]*LedgerEntry, error)
	UsersWithExpired(ctx context.Context, now time.Time) ([]int64, error)
	SettleOrderTransition(ctx context.Context, order *Order, target OrderStatus, earnExpiresAt *time.Time) error
	Balance(ctx context.Context, userID int64) (*Balance, error)
	History(ctx context.Context, userID int64) ([]*LedgerEntry, error)
}

// RewardQueue определяет операции сервиса очереди вознаграждений
type RewardQueue interface {
	Grant(ctx context.Context, userID int64, rewardType RewardType, points int64, relatedType RelatedType, relatedID int64, description string) (*RewardEvent, error)
	Process(ctx context.Context, event *RewardEvent) error
	Retry(ctx context.Context, eventID int64) (*RewardEvent, error)
	Due(ctx context.Context, limit int) ([]*RewardEvent, error)
}
