package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feedshop/order-settlement/internal/calc"
	"github.com/feedshop/order-settlement/internal/domain"
	"github.com/feedshop/order-settlement/internal/utils/card"
)

// OrderServiceConfig содержит настройки оформления заказов
type OrderServiceConfig struct {
	Currency         string
	PointTTL         time.Duration
	DeliveryFee      decimal.Decimal
	FreeDeliveryOver decimal.Decimal
}

// OrderService управляет жизненным циклом заказа
type OrderService struct {
	orderRepo domain.OrderRepository
	points    domain.PointLedger
	pricer    domain.ProductPricer
	notifier  domain.Notifier
	logger    *zap.Logger
	config    OrderServiceConfig
}

// NewOrderService создает новый OrderService
func NewOrderService(
	orderRepo domain.OrderRepository,
	points domain.PointLedger,
	pricer domain.ProductPricer,
	notifier domain.Notifier,
	logger *zap.Logger,
	config OrderServiceConfig,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		points:    points,
		pricer:    pricer,
		notifier:  notifier,
		logger:    logger,
		config:    config,
	}
}

// CreateOrderRequest представляет запрос на оформление заказа
type CreateOrderRequest struct {
	Items         []domain.OrderItemRequest
	Recipient     string
	Phone         string
	Address       string
	PaymentMethod domain.PaymentMethod
	CardNumber    string
	UsePoints     int64
}

// CreatedOrder представляет результат оформления заказа
type CreatedOrder struct {
	Order *domain.Order
	Items []domain.OrderItem
}

// Create оформляет заказ: цены берутся из каталога на момент оформления,
// списание баллов ограничено балансом и 10% от суммы заказа.
func (s *OrderService) Create(ctx context.Context, userID int64, req CreateOrderRequest) (*CreatedOrder, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	priced, err := s.pricer.PriceItems(ctx, req.Items)
	if err != nil {
		if errors.Is(err, domain.ErrOutOfStock) {
			return nil, ErrOutOfStock
		}
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("order service: failed to price items: %w", err)
	}

	balance, err := s.points.Balance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to get balance for user %d: %w", userID, err)
	}

	total := calc.ItemsTotal(priced)
	result := calc.Calculate(total, req.UsePoints, balance.Available)
	number := newOrderNumber()

	// Списание до создания заказа: при отказе заказ не появляется вовсе
	if result.UsedPoints > 0 {
		if _, err := s.points.Use(ctx, userID, result.UsedPoints, domain.SourceTypeOrder, number); err != nil {
			if errors.Is(err, ErrInsufficientPoints) {
				return nil, ErrInsufficientPoints
			}
			return nil, fmt.Errorf("order service: failed to use points for order %q: %w", number, err)
		}
	}

	order := &domain.Order{
		UserID:         userID,
		Number:         number,
		Status:         domain.OrderStatusOrdered,
		Currency:       s.config.Currency,
		TotalAmount:    result.TotalAmount,
		DiscountAmount: discountAmount(priced),
		DeliveryFee:    s.deliveryFee(result.TotalAmount),
		FinalAmount:    result.FinalAmount,
		UsedPoints:     result.UsedPoints,
		EarnedPoints:   result.EarnedPoints,
		Recipient:      req.Recipient,
		Phone:          req.Phone,
		Address:        req.Address,
		PaymentMethod:  req.PaymentMethod,
		CardLast4:      card.Last4(req.CardNumber),
	}

	items := lo.Map(priced, func(p domain.PricedItem, _ int) domain.OrderItem {
		return domain.OrderItem{
			ProductOptionID: p.ProductOptionID,
			ProductName:     p.ProductName,
			UnitPrice:       p.UnitPrice,
			LinePrice:       p.LinePrice,
			Quantity:        p.Quantity,
		}
	})

	order, err = s.orderRepo.CreateOrder(ctx, order, items)
	if err != nil {
		// Компенсируем уже списанные баллы
		if result.UsedPoints > 0 {
			if _, cancelErr := s.points.Cancel(ctx, userID, domain.SourceTypeOrder, number); cancelErr != nil {
				s.logger.Error("failed to refund points after order creation failure",
					zap.String("order", number),
					zap.Error(cancelErr),
				)
			}
		}
		return nil, fmt.Errorf("order service: failed to create order %q: %w", number, err)
	}

	s.notifyStatus(ctx, order)

	return &CreatedOrder{Order: order, Items: items}, nil
}

// Transition переводит заказ в новый статус с учетом роли.
// Конкурентные переходы сериализуются проверкой версии. Смена статуса
// и расчёт по баллам фиксируются одной транзакцией.
func (s *OrderService) Transition(ctx context.Context, orderID int64, target domain.OrderStatus, actor domain.Actor) (*domain.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("order service: failed to get order %d: %w", orderID, err)
	}

	if !domain.CanTransition(actor, order.Status, target) {
		return nil, ErrInvalidTransition
	}

	var earnExpiresAt *time.Time
	if target == domain.OrderStatusDelivered && order.EarnedPoints > 0 {
		expiresAt := time.Now().Add(s.config.PointTTL)
		earnExpiresAt = &expiresAt
	}

	if err := s.points.SettleOrderTransition(ctx, order, target, earnExpiresAt); err != nil {
		if errors.Is(err, domain.ErrConcurrentModification) {
			return nil, ErrConcurrentModification
		}
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("order service: failed to settle order %d transition: %w", orderID, err)
	}

	order.Status = target
	order.Version++

	s.notifyStatus(ctx, order)

	return order, nil
}

// Remove мягко удаляет заказ в конечном статусе
func (s *OrderService) Remove(ctx context.Context, orderID, userID int64) error {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("order service: failed to get order %d: %w", orderID, err)
	}

	if order.UserID != userID {
		return ErrOrderNotFound
	}

	if !order.Status.IsTerminal() {
		return ErrOrderNotRemovable
	}

	if err := s.orderRepo.SoftDeleteOrder(ctx, orderID); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("order service: failed to remove order %d: %w", orderID, err)
	}

	return nil
}

// ListByUser возвращает заказы пользователя
func (s *OrderService) ListByUser(ctx context.Context, userID int64) ([]*domain.Order, error) {
	orders, err := s.orderRepo.GetOrdersByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to get orders for user %d: %w", userID, err)
	}

	return orders, nil
}

func (s *OrderService) validateRequest(req CreateOrderRequest) error {
	if len(req.Items) == 0 {
		return ErrEmptyOrder
	}

	for _, item := range req.Items {
		if !calc.ValidQuantity(item.Quantity) {
			return ErrInvalidQuantity
		}
	}

	if req.PaymentMethod == domain.PaymentMethodCard && !card.ValidNumber(req.CardNumber) {
		return ErrInvalidCardPayment
	}

	return nil
}

// notifyStatus отправляет уведомление о смене статуса.
// Ошибки отправки логируются и не прерывают операцию.
func (s *OrderService) notifyStatus(ctx context.Context, order *domain.Order) {
	if err := s.notifier.OrderStatusChanged(ctx, order); err != nil {
		s.logger.Warn("failed to send order status notification",
			zap.String("order", order.Number),
			zap.String("status", string(order.Status)),
			zap.Error(err),
		)
	}
}

func (s *OrderService) deliveryFee(total decimal.Decimal) decimal.Decimal {
	if total.GreaterThanOrEqual(s.config.FreeDeliveryOver) {
		return decimal.Zero
	}
	return s.config.DeliveryFee
}

func discountAmount(priced []domain.PricedItem) decimal.Decimal {
	gross := lo.Reduce(priced, func(total decimal.Decimal, item domain.PricedItem, _ int) decimal.Decimal {
		return total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}, decimal.Zero)

	return gross.Sub(calc.ItemsTotal(priced))
}

func newOrderNumber() string {
	return "FS-" + uuid.NewString()
}
