package domain

// Таблицы переходов статусов заказа. Продавец и покупатель имеют
// разные наборы разрешенных переходов; все остальные комбинации запрещены.
var (
	sellerTransitions = map[OrderStatus][]OrderStatus{
		OrderStatusOrdered:   {OrderStatusShipped, OrderStatusCancelled},
		OrderStatusShipped:   {OrderStatusDelivered},
		OrderStatusDelivered: {OrderStatusReturned},
		OrderStatusCancelled: {},
		OrderStatusReturned:  {},
	}

	buyerTransitions = map[OrderStatus][]OrderStatus{
		OrderStatusOrdered:   {OrderStatusCancelled},
		OrderStatusShipped:   {},
		OrderStatusDelivered: {OrderStatusReturned},
		OrderStatusCancelled: {},
		OrderStatusReturned:  {},
	}
)

// CanSellerTransition проверяет, разрешен ли продавцу переход from -> to
func CanSellerTransition(from, to OrderStatus) bool {
	return containsStatus(sellerTransitions[from], to)
}

// CanBuyerTransition проверяет, разрешен ли покупателю переход from -> to
func CanBuyerTransition(from, to OrderStatus) bool {
	return containsStatus(buyerTransitions[from], to)
}

// CanTransition проверяет переход from -> to для указанной роли
func CanTransition(actor Actor, from, to OrderStatus) bool {
	switch actor {
	case ActorSeller:
		return CanSellerTransition(from, to)
	case ActorBuyer:
		return CanBuyerTransition(from, to)
	default:
		return false
	}
}

func containsStatus(statuses []OrderStatus, target OrderStatus) bool {
	for _, s := range statuses {
		if s == target {
			return true
		}
	}
	return false
}

// OrderStatuses возвращает все известные статусы заказа
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusOrdered,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
		OrderStatusReturned,
	}
}
