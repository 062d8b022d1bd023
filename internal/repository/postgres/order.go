package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/feedshop/order-settlement/internal/domain"
)

// OrderRepository реализует domain.OrderRepository
type OrderRepository struct {
	db DBTX
}

// NewOrderRepository создает новый OrderRepository
func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `id, user_id, number, status, currency,
		total_amount, discount_amount, delivery_fee, final_amount,
		used_points, earned_points, recipient, phone, address,
		payment_method, card_last4, ordered_at, deleted_at, version`

// CreateOrder создает заказ вместе с позициями в одной транзакции
func (r *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order, items []domain.OrderItem) (*domain.Order, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin transaction for order %q: %w", order.Number, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	err = tx.QueryRow(ctx,
		`INSERT INTO orders (user_id, number, status, currency,
			total_amount, discount_amount, delivery_fee, final_amount,
			used_points, earned_points, recipient, phone, address,
			payment_method, card_last4)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 RETURNING id, ordered_at, version`,
		order.UserID, order.Number, order.Status, order.Currency,
		order.TotalAmount, order.DiscountAmount, order.DeliveryFee, order.FinalAmount,
		order.UsedPoints, order.EarnedPoints, order.Recipient, order.Phone, order.Address,
		order.PaymentMethod, order.CardLast4,
	).Scan(&order.ID, &order.OrderedAt, &order.Version)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to create order %q: %w", order.Number, err)
	}

	for i := range items {
		items[i].OrderID = order.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO order_items (order_id, product_option_id, product_name, unit_price, line_price, quantity)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			items[i].OrderID, items[i].ProductOptionID, items[i].ProductName,
			items[i].UnitPrice, items[i].LinePrice, items[i].Quantity,
		).Scan(&items[i].ID)

		if err != nil {
			return nil, fmt.Errorf("repository: failed to create item for order %q: %w", order.Number, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit order %q: %w", order.Number, err)
	}

	return order, nil
}

// GetOrderByID получает заказ по идентификатору
func (r *OrderRepository) GetOrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+orderColumns+`
		 FROM orders
		 WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)

	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order %d: %w", id, err)
	}

	return order, nil
}

// GetOrderByNumber получает заказ по номеру
func (r *OrderRepository) GetOrderByNumber(ctx context.Context, number string) (*domain.Order, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+orderColumns+`
		 FROM orders
		 WHERE number = $1 AND deleted_at IS NULL`,
		number,
	)

	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order %q: %w", number, err)
	}

	return order, nil
}

// GetOrdersByUserID получает все заказы пользователя
func (r *OrderRepository) GetOrdersByUserID(ctx context.Context, userID int64) ([]*domain.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+`
		 FROM orders
		 WHERE user_id = $1 AND deleted_at IS NULL
		 ORDER BY ordered_at DESC`,
		userID,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get orders for user %d: %w", userID, err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating orders: %w", err)
	}

	return orders, nil
}

// UpdateOrderStatus обновляет статус заказа с проверкой версии.
// Проигравший гонку писатель получает ErrConcurrentModification.
func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus, version int64) error {
	result, err := r.db.Exec(ctx,
		`UPDATE orders
		 SET status = $1, version = version + 1
		 WHERE id = $2 AND version = $3 AND deleted_at IS NULL`,
		status, id, version,
	)

	if err != nil {
		return fmt.Errorf("repository: failed to update order %d status: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		// Различаем отсутствующий заказ и проигранную гонку версий
		if _, err := r.GetOrderByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrConcurrentModification
	}

	return nil
}

// SoftDeleteOrder помечает заказ удаленным, не удаляя строку
func (r *OrderRepository) SoftDeleteOrder(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx,
		`UPDATE orders
		 SET deleted_at = NOW()
		 WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)

	if err != nil {
		return fmt.Errorf("repository: failed to delete order %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}

	return nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := &domain.Order{}
	err := row.Scan(
		&order.ID, &order.UserID, &order.Number, &order.Status, &order.Currency,
		&order.TotalAmount, &order.DiscountAmount, &order.DeliveryFee, &order.FinalAmount,
		&order.UsedPoints, &order.EarnedPoints, &order.Recipient, &order.Phone, &order.Address,
		&order.PaymentMethod, &order.CardLast4, &order.OrderedAt, &order.DeletedAt, &order.Version,
	)
	if err != nil {
		return nil, err
	}
	return order, nil
}
