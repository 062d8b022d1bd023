package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/feedshop/order-settlement/internal/domain"
)

// PointService реализует domain.PointLedger поверх журнала баллов
type PointService struct {
	ledgerRepo domain.LedgerRepository
	settleRepo domain.SettlementRepository
	cache      domain.BalanceCache
}

// NewPointService создает новый PointService
func NewPointService(ledgerRepo domain.LedgerRepository, settleRepo domain.SettlementRepository, cache domain.BalanceCache) *PointService {
	return &PointService{
		ledgerRepo: ledgerRepo,
		settleRepo: settleRepo,
		cache:      cache,
	}
}

// Earn начисляет баллы пользователю
func (s *PointService) Earn(ctx context.Context, userID, amount int64, sourceType domain.SourceType, sourceRef string, expiresAt *time.Time) (*domain.LedgerEntry, error) {
	if amount <= 0 {
		return nil, ErrInvalidPointAmount
	}

	entry, err := s.ledgerRepo.InsertEarn(ctx, userID, amount, sourceType, sourceRef, expiresAt)
	if err != nil {
		// Не оборачиваем sentinel errors
		if errors.Is(err, domain.ErrDuplicateEarn) {
			return nil, ErrDuplicateEarn
		}
		return nil, fmt.Errorf("point service: failed to earn %d points for user %d: %w", amount, userID, err)
	}

	s.invalidate(ctx, userID)
	return entry, nil
}

// Use списывает баллы. При недостатке баланса операция полностью
// отклоняется без создания записей.
func (s *PointService) Use(ctx context.Context, userID, amount int64, sourceType domain.SourceType, sourceRef string) (*domain.LedgerEntry, error) {
	if amount <= 0 {
		return nil, ErrInvalidPointAmount
	}

	entry, err := s.ledgerRepo.UseWithLock(ctx, userID, amount, sourceType, sourceRef)
	if err != nil {
		// Не оборачиваем sentinel errors
		if errors.Is(err, domain.ErrInsufficientPoints) {
			return nil, ErrInsufficientPoints
		}
		return nil, fmt.Errorf("point service: failed to use %d points for user %d: %w", amount, userID, err)
	}

	s.invalidate(ctx, userID)
	return entry, nil
}

// Cancel обращает начисления и списания указанного источника
func (s *PointService) Cancel(ctx context.Context, userID int64, sourceType domain.SourceType, sourceRef string) ([]*domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.CancelBySource(ctx, userID, sourceType, sourceRef)
	if err != nil {
		return nil, fmt.Errorf("point service: failed to cancel points of %s %s for user %d: %w", sourceType, sourceRef, userID, err)
	}

	s.invalidate(ctx, userID)
	return entries, nil
}

// ExpireDue сжигает просроченные баллы пользователя
func (s *PointService) ExpireDue(ctx context.Context, userID int64, now time.Time) ([]*domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.ExpireDueForUser(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("point service: failed to expire points for user %d: %w", userID, err)
	}

	if len(entries) > 0 {
		s.invalidate(ctx, userID)
	}
	return entries, nil
}

// SettleOrderTransition применяет смену статуса заказа вместе со
// связанным расчётом по баллам в одной транзакции и сбрасывает кеш
// баланса, если расчёт менял журнал.
func (s *PointService) SettleOrderTransition(ctx context.Context, order *domain.Order, target domain.OrderStatus, earnExpiresAt *time.Time) error {
	if err := s.settleRepo.SettleTransition(ctx, order, target, earnExpiresAt); err != nil {
		// Не оборачиваем sentinel errors
		if errors.Is(err, domain.ErrConcurrentModification) || errors.Is(err, domain.ErrOrderNotFound) {
			return err
		}
		return fmt.Errorf("point service: failed to settle transition of order %d: %w", order.ID, err)
	}

	switch target {
	case domain.OrderStatusDelivered, domain.OrderStatusCancelled, domain.OrderStatusReturned:
		s.invalidate(ctx, order.UserID)
	}

	return nil
}

// UsersWithExpired возвращает пользователей с баллами к сгоранию
func (s *PointService) UsersWithExpired(ctx context.Context, now time.Time) ([]int64, error) {
	userIDs, err := s.ledgerRepo.UsersWithExpired(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("point service: failed to get users with expired points: %w", err)
	}

	return userIDs, nil
}

// Balance возвращает баланс пользователя, используя кеш при наличии
func (s *PointService) Balance(ctx context.Context, userID int64) (*domain.Balance, error) {
	if s.cache != nil {
		if balance, ok, err := s.cache.Get(ctx, userID); err == nil && ok {
			return balance, nil
		}
	}

	balance, err := s.ledgerRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("point service: failed to get balance for user %d: %w", userID, err)
	}

	if s.cache != nil {
		// Ошибка записи в кеш не влияет на результат
		_ = s.cache.Set(ctx, userID, balance)
	}

	return balance, nil
}

// History возвращает историю операций с баллами
func (s *PointService) History(ctx context.Context, userID int64) ([]*domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.GetEntriesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("point service: failed to get history for user %d: %w", userID, err)
	}

	return entries, nil
}

// invalidate сбрасывает кеш баланса после записи в журнал.
// Ошибка сброса не критична: кеш восстановится по TTL.
func (s *PointService) invalidate(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
}
