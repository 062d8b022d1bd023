package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedshop/order-settlement/internal/domain"
)

var orderColumnList = []string{
	"id", "user_id", "number", "status", "currency",
	"total_amount", "discount_amount", "delivery_fee", "final_amount",
	"used_points", "earned_points", "recipient", "phone", "address",
	"payment_method", "card_last4", "ordered_at", "deleted_at", "version",
}

func orderRow(id int64, status domain.OrderStatus, version int64) *pgxmock.Rows {
	return pgxmock.NewRows(orderColumnList).AddRow(
		id, int64(1), "FS-1", status, "KRW",
		decimal.NewFromInt(50000), decimal.Zero, decimal.Zero, decimal.NewFromInt(47000),
		int64(3000), int64(200), "Kim Minsu", "010-1234-5678", "Seoul, Gangnam-gu",
		domain.PaymentMethodBankTransfer, "", time.Now(), (*time.Time)(nil), version,
	)
}

func TestOrderRepository_CreateOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	order := &domain.Order{
		UserID:      1,
		Number:      "FS-1",
		Status:      domain.OrderStatusOrdered,
		Currency:    "KRW",
		TotalAmount: decimal.NewFromInt(50000),
		FinalAmount: decimal.NewFromInt(47000),
		UsedPoints:  3000,
	}
	items := []domain.OrderItem{
		{ProductOptionID: 11, ProductName: "Air Runner 42", UnitPrice: decimal.NewFromInt(50000), LinePrice: decimal.NewFromInt(50000), Quantity: 1},
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs(order.UserID, order.Number, order.Status, order.Currency,
				order.TotalAmount, order.DiscountAmount, order.DeliveryFee, order.FinalAmount,
				order.UsedPoints, order.EarnedPoints, order.Recipient, order.Phone, order.Address,
				order.PaymentMethod, order.CardLast4).
			WillReturnRows(pgxmock.NewRows([]string{"id", "ordered_at", "version"}).
				AddRow(int64(42), time.Now(), int64(0)))
		mock.ExpectQuery(`INSERT INTO order_items`).
			WithArgs(int64(42), items[0].ProductOptionID, items[0].ProductName,
				items[0].UnitPrice, items[0].LinePrice, items[0].Quantity).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(100)))
		mock.ExpectCommit()

		created, err := repo.CreateOrder(ctx, order, items)
		require.NoError(t, err)
		assert.Equal(t, int64(42), created.ID)
		assert.Equal(t, int64(42), items[0].OrderID)
		assert.Equal(t, int64(100), items[0].ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Item insert failure rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs(order.UserID, order.Number, order.Status, order.Currency,
				order.TotalAmount, order.DiscountAmount, order.DeliveryFee, order.FinalAmount,
				order.UsedPoints, order.EarnedPoints, order.Recipient, order.Phone, order.Address,
				order.PaymentMethod, order.CardLast4).
			WillReturnRows(pgxmock.NewRows([]string{"id", "ordered_at", "version"}).
				AddRow(int64(43), time.Now(), int64(0)))
		mock.ExpectQuery(`INSERT INTO order_items`).
			WithArgs(int64(43), items[0].ProductOptionID, items[0].ProductName,
				items[0].UnitPrice, items[0].LinePrice, items[0].Quantity).
			WillReturnError(errors.New("constraint violation"))
		mock.ExpectRollback()

		_, err := repo.CreateOrder(ctx, order, items)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_GetOrderByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM orders`).
			WithArgs(int64(42)).
			WillReturnRows(orderRow(42, domain.OrderStatusOrdered, 0))

		order, err := repo.GetOrderByID(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), order.ID)
		assert.Equal(t, domain.OrderStatusOrdered, order.Status)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM orders`).
			WithArgs(int64(99)).
			WillReturnRows(pgxmock.NewRows(orderColumnList))

		_, err := repo.GetOrderByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_UpdateOrderStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders`).
			WithArgs(domain.OrderStatusShipped, int64(42), int64(0)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateOrderStatus(ctx, 42, domain.OrderStatusShipped, 0)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Version conflict", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders`).
			WithArgs(domain.OrderStatusShipped, int64(42), int64(0)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		// Заказ существует, значит проиграна гонка версий
		mock.ExpectQuery(`SELECT .+ FROM orders`).
			WithArgs(int64(42)).
			WillReturnRows(orderRow(42, domain.OrderStatusShipped, 1))

		err := repo.UpdateOrderStatus(ctx, 42, domain.OrderStatusShipped, 0)
		assert.ErrorIs(t, err, domain.ErrConcurrentModification)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Order not found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders`).
			WithArgs(domain.OrderStatusShipped, int64(99), int64(0)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectQuery(`SELECT .+ FROM orders`).
			WithArgs(int64(99)).
			WillReturnRows(pgxmock.NewRows(orderColumnList))

		err := repo.UpdateOrderStatus(ctx, 99, domain.OrderStatusShipped, 0)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_SoftDeleteOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders`).
			WithArgs(int64(42)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.SoftDeleteOrder(ctx, 42)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already deleted", func(t *testing.T) {
		mock.ExpectExec(`UPDATE orders`).
			WithArgs(int64(42)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.SoftDeleteOrder(ctx, 42)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_GetOrdersByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := pgxmock.NewRows(orderColumnList).
			AddRow(int64(1), int64(1), "FS-1", domain.OrderStatusDelivered, "KRW",
				decimal.NewFromInt(50000), decimal.Zero, decimal.Zero, decimal.NewFromInt(47000),
				int64(3000), int64(200), "Kim Minsu", "010-1234-5678", "Seoul",
				domain.PaymentMethodBankTransfer, "", time.Now(), (*time.Time)(nil), int64(2)).
			AddRow(int64(2), int64(1), "FS-2", domain.OrderStatusOrdered, "KRW",
				decimal.NewFromInt(20000), decimal.Zero, decimal.NewFromInt(3000), decimal.NewFromInt(20000),
				int64(0), int64(100), "Kim Minsu", "010-1234-5678", "Seoul",
				domain.PaymentMethodCard, "4242", time.Now(), (*time.Time)(nil), int64(0))

		mock.ExpectQuery(`SELECT .+ FROM orders`).
			WithArgs(int64(1)).
			WillReturnRows(rows)

		orders, err := repo.GetOrdersByUserID(ctx, 1)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "FS-1", orders[0].Number)
		assert.Equal(t, "FS-2", orders[1].Number)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty list", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM orders`).
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows(orderColumnList))

		orders, err := repo.GetOrdersByUserID(ctx, 7)
		require.NoError(t, err)
		assert.Empty(t, orders)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
