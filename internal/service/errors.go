package service

import (
	"errors"
	"fmt"
)

// Ошибки оформления заказа
var (
	ErrEmptyOrder         = errors.New("order has no items")
	ErrInvalidQuantity    = errors.New("item quantity must be between 1 and 50")
	ErrInvalidCardPayment = errors.New("invalid card payment details")
	ErrOutOfStock         = errors.New("product option out of stock")
	ErrProductNotFound    = errors.New("product option not found")
)

// Ошибки смены статуса и удаления заказа
var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrInvalidTransition      = errors.New("order status transition not allowed")
	ErrConcurrentModification = errors.New("order modified concurrently, retry")
	ErrOrderNotRemovable      = errors.New("only cancelled or returned orders can be removed")
)

// Ошибки баллов и вознаграждений
var (
	ErrInvalidPointAmount = errors.New("point amount must be positive")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrDuplicateEarn      = errors.New("points already earned for this source")
	ErrUnknownRewardType  = errors.New("unknown reward type")
	ErrRewardNotFound     = errors.New("reward event not found")
	ErrRewardNotFailed    = errors.New("only failed reward events can be retried")
)

// ProcessError представляет ошибку обработки события вознаграждения.
// Она фиксируется на самом событии и не распространяется дальше свипа.
type ProcessError struct {
	EventID int64
	Err     error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("reward event %d processing failed: %v", e.EventID, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}
