package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/feedshop/order-settlement/internal/domain"
)

// SettlementRepository реализует domain.SettlementRepository.
// Смена статуса заказа и расчёт по баллам выполняются в одной
// транзакции: сбой любой части откатывает обе.
type SettlementRepository struct {
	db DBTX
}

// NewSettlementRepository создает новый SettlementRepository
func NewSettlementRepository(db DBTX) *SettlementRepository {
	return &SettlementRepository{db: db}
}

// SettleTransition обновляет статус заказа с проверкой версии и в той же
// транзакции применяет расчёт: начисление при доставке, возврат и отзыв
// баллов при отмене или возврате.
func (r *SettlementRepository) SettleTransition(ctx context.Context, order *domain.Order, target domain.OrderStatus, earnExpiresAt *time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin settlement transaction for order %d: %w", order.ID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	// Вложенные репозитории работают поверх транзакции: pgx.Tx
	// удовлетворяет DBTX, их собственные Begin создают savepoint
	orders := NewOrderRepository(tx)
	ledger := NewLedgerRepository(tx)

	if err := orders.UpdateOrderStatus(ctx, order.ID, target, order.Version); err != nil {
		// Не оборачиваем sentinel errors
		return err
	}

	switch target {
	case domain.OrderStatusDelivered:
		if order.EarnedPoints > 0 {
			if _, err := ledger.InsertEarn(ctx, order.UserID, order.EarnedPoints, domain.SourceTypeOrder, order.Number, earnExpiresAt); err != nil {
				return err
			}
		}

	case domain.OrderStatusCancelled, domain.OrderStatusReturned:
		if order.UsedPoints > 0 || order.EarnedPoints > 0 {
			if _, err := ledger.CancelBySource(ctx, order.UserID, domain.SourceTypeOrder, order.Number); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit settlement for order %d: %w", order.ID, err)
	}

	return nil
}
