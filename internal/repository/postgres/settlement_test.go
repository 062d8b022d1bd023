package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedshop/order-settlement/internal/domain"
)

func TestSettlementRepository_SettleTransition(t *testing.T) {
	ctx := context.Background()

	t.Run("Delivery earns points in the same transaction", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewSettlementRepository(mock)

		expiresAt := time.Now().Add(365 * 24 * time.Hour)
		order := &domain.Order{ID: 10, UserID: 1, Number: "FS-1", Status: domain.OrderStatusShipped, EarnedPoints: 200, Version: 4}

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE orders`).
			WithArgs(domain.OrderStatusDelivered, int64(10), int64(4)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(`INSERT INTO point_entries`).
			WithArgs(int64(1), int64(200), domain.EntryTypeEarn, domain.EntryStatusActive,
				domain.SourceTypeOrder, "FS-1", &expiresAt).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(20), time.Now()))
		mock.ExpectCommit()

		err = repo.SettleTransition(ctx, order, domain.OrderStatusDelivered, &expiresAt)
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Shipment updates status only", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewSettlementRepository(mock)

		order := &domain.Order{ID: 10, UserID: 1, Number: "FS-1", Status: domain.OrderStatusOrdered, Version: 1}

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE orders`).
			WithArgs(domain.OrderStatusShipped, int64(10), int64(1)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		err = repo.SettleTransition(ctx, order, domain.OrderStatusShipped, nil)
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Lost version race rolls back without earn", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewSettlementRepository(mock)

		expiresAt := time.Now().Add(365 * 24 * time.Hour)
		order := &domain.Order{ID: 10, UserID: 1, Number: "FS-1", Status: domain.OrderStatusShipped, EarnedPoints: 200, Version: 4}

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE orders`).
			WithArgs(domain.OrderStatusDelivered, int64(10), int64(4)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery(`SELECT `).
			WithArgs(int64(10)).
			WillReturnRows(orderRow(10, domain.OrderStatusDelivered, 5))
		mock.ExpectRollback()

		err = repo.SettleTransition(ctx, order, domain.OrderStatusDelivered, &expiresAt)
		assert.ErrorIs(t, err, domain.ErrConcurrentModification)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failed earn rolls back the status change", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewSettlementRepository(mock)

		expiresAt := time.Now().Add(365 * 24 * time.Hour)
		order := &domain.Order{ID: 10, UserID: 1, Number: "FS-1", Status: domain.OrderStatusShipped, EarnedPoints: 200, Version: 4}

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE orders`).
			WithArgs(domain.OrderStatusDelivered, int64(10), int64(4)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectQuery(`INSERT INTO point_entries`).
			WithArgs(int64(1), int64(200), domain.EntryTypeEarn, domain.EntryStatusActive,
				domain.SourceTypeOrder, "FS-1", &expiresAt).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err = repo.SettleTransition(ctx, order, domain.OrderStatusDelivered, &expiresAt)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrConcurrentModification)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
