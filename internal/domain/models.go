package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus представляет статус заказа
type OrderStatus string

const (
	OrderStatusOrdered   OrderStatus = "ORDERED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusReturned  OrderStatus = "RETURNED"
)

// IsTerminal сообщает, является ли статус конечным
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCancelled || s == OrderStatusReturned
}

// Actor представляет роль, выполняющую смену статуса заказа
type Actor string

const (
	ActorSeller Actor = "SELLER"
	ActorBuyer  Actor = "BUYER"
)

// PaymentMethod представляет способ оплаты заказа
type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "CARD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// EntryType представляет тип записи в журнале баллов
type EntryType string

const (
	EntryTypeEarn   EntryType = "EARN"
	EntryTypeUse    EntryType = "USE"
	EntryTypeExpire EntryType = "EXPIRE"
	EntryTypeCancel EntryType = "CANCEL"
)

// EntryStatus представляет статус записи в журнале баллов
type EntryStatus string

const (
	EntryStatusActive    EntryStatus = "ACTIVE"
	EntryStatusUsed      EntryStatus = "USED"
	EntryStatusExpired   EntryStatus = "EXPIRED"
	EntryStatusCancelled EntryStatus = "CANCELLED"
)

// SourceType представляет тип источника записи журнала
type SourceType string

const (
	SourceTypeOrder       SourceType = "ORDER"
	SourceTypeRewardEvent SourceType = "REWARD_EVENT"
	SourceTypePointEntry  SourceType = "POINT_ENTRY"
)

// RewardStatus представляет статус события вознаграждения
type RewardStatus string

const (
	RewardStatusPending    RewardStatus = "PENDING"
	RewardStatusProcessing RewardStatus = "PROCESSING"
	RewardStatusProcessed  RewardStatus = "PROCESSED"
	RewardStatusFailed     RewardStatus = "FAILED"
	RewardStatusCancelled  RewardStatus = "CANCELLED"
)

// RewardType представляет тип вознаграждения
type RewardType string

const (
	RewardTypeReviewWrite   RewardType = "REVIEW_WRITE"
	RewardTypePhotoReview   RewardType = "PHOTO_REVIEW"
	RewardTypeFeedLike      RewardType = "FEED_LIKE"
	RewardTypeFirstPurchase RewardType = "FIRST_PURCHASE"
	RewardTypeEventWin      RewardType = "EVENT_WIN"
)

// RelatedType представляет тип сущности, породившей вознаграждение
type RelatedType string

const (
	RelatedTypeReview RelatedType = "REVIEW"
	RelatedTypeFeed   RelatedType = "FEED"
	RelatedTypeEvent  RelatedType = "EVENT"
	RelatedTypeOrder  RelatedType = "ORDER"
)

// Order представляет заказ пользователя
type Order struct {
	ID             int64           `json:"-"`
	UserID         int64           `json:"-"`
	Number         string          `json:"number"`
	Status         OrderStatus     `json:"status"`
	Currency       string          `json:"currency"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	DeliveryFee    decimal.Decimal `json:"delivery_fee"`
	FinalAmount    decimal.Decimal `json:"final_amount"`
	UsedPoints     int64           `json:"used_points"`
	EarnedPoints   int64           `json:"earned_points"`
	Recipient      string          `json:"recipient"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	PaymentMethod  PaymentMethod   `json:"payment_method"`
	CardLast4      string          `json:"card_last4,omitempty"`
	OrderedAt      time.Time       `json:"ordered_at"`
	DeletedAt      *time.Time      `json:"-"`
	Version        int64           `json:"-"`
}

// OrderItem представляет позицию заказа со снимком цены на момент оформления
type OrderItem struct {
	ID              int64           `json:"-"`
	OrderID         int64           `json:"-"`
	ProductOptionID int64           `json:"product_option_id"`
	ProductName     string          `json:"product_name"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	LinePrice       decimal.Decimal `json:"line_price"`
	Quantity        int             `json:"quantity"`
}

// LedgerEntry представляет неизменяемую запись в журнале баллов
type LedgerEntry struct {
	ID         int64       `json:"id"`
	UserID     int64       `json:"-"`
	Amount     int64       `json:"amount"`
	Type       EntryType   `json:"type"`
	Status     EntryStatus `json:"status"`
	SourceType SourceType  `json:"source_type"`
	SourceRef  string      `json:"source_ref"`
	CreatedAt  time.Time   `json:"created_at"`
	ExpiresAt  *time.Time  `json:"expires_at,omitempty"`
}

// Balance представляет баланс баллов пользователя
type Balance struct {
	Available int64 `json:"available"`
	Used      int64 `json:"used"`
}

// RewardEvent представляет отложенное начисление баллов за действие пользователя
type RewardEvent struct {
	ID           int64        `json:"id"`
	UserID       int64        `json:"-"`
	RewardType   RewardType   `json:"reward_type"`
	Points       int64        `json:"points"`
	RelatedType  RelatedType  `json:"related_type"`
	RelatedID    int64        `json:"related_id"`
	Description  string       `json:"description"`
	Status       RewardStatus `json:"status"`
	RetryCount   int          `json:"retry_count"`
	ErrorMessage *string      `json:"error_message,omitempty"`
	ClaimedAt    *time.Time   `json:"-"`
	ProcessedAt  *time.Time   `json:"processed_at,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

// OrderItemRequest представляет запрошенную позицию при оформлении заказа
type OrderItemRequest struct {
	ProductOptionID int64 `json:"product_option_id"`
	Quantity        int   `json:"quantity"`
}

// PricedItem представляет позицию с ценами, рассчитанными каталогом
type PricedItem struct {
	ProductOptionID int64           `json:"product_option_id"`
	ProductName     string          `json:"product_name"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	LinePrice       decimal.Decimal `json:"line_price"`
	Quantity        int             `json:"quantity"`
}
