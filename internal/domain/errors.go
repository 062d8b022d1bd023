package domain

import "errors"

// Ошибки заказов
var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrInvalidTransition      = errors.New("order status transition not allowed")
	ErrConcurrentModification = errors.New("order modified concurrently")
)

// Ошибки журнала баллов
var (
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrEntryNotFound      = errors.New("ledger entry not found")
	ErrDuplicateEarn      = errors.New("points already earned for this source")
)

// Ошибки очереди вознаграждений
var (
	ErrDuplicateReward = errors.New("reward already granted for this source")
	ErrRewardNotFound  = errors.New("reward event not found")
)

// Ошибки внешних коллабораторов
var (
	ErrOutOfStock         = errors.New("product option out of stock")
	ErrProductNotFound    = errors.New("product option not found")
	ErrInvalidCardPayment = errors.New("invalid card payment details")
)
