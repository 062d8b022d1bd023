package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// allowed описывает полную таблицу переходов для обеих ролей.
// Все комбинации (from, to), отсутствующие в таблице, запрещены.
var allowed = map[Actor]map[OrderStatus][]OrderStatus{
	ActorSeller: {
		OrderStatusOrdered:   {OrderStatusShipped, OrderStatusCancelled},
		OrderStatusShipped:   {OrderStatusDelivered},
		OrderStatusDelivered: {OrderStatusReturned},
	},
	ActorBuyer: {
		OrderStatusOrdered:   {OrderStatusCancelled},
		OrderStatusDelivered: {OrderStatusReturned},
	},
}

func isAllowed(actor Actor, from, to OrderStatus) bool {
	for _, t := range allowed[actor][from] {
		if t == to {
			return true
		}
	}
	return false
}

func TestCanTransition_Exhaustive(t *testing.T) {
	statuses := OrderStatuses()
	assert.Len(t, statuses, 5)

	// 25 комбинаций from x to для каждой роли
	for _, actor := range []Actor{ActorSeller, ActorBuyer} {
		for _, from := range statuses {
			for _, to := range statuses {
				want := isAllowed(actor, from, to)
				got := CanTransition(actor, from, to)
				assert.Equalf(t, want, got, "actor=%s from=%s to=%s", actor, from, to)
			}
		}
	}
}

func TestCanSellerTransition(t *testing.T) {
	assert.True(t, CanSellerTransition(OrderStatusOrdered, OrderStatusShipped))
	assert.True(t, CanSellerTransition(OrderStatusOrdered, OrderStatusCancelled))
	assert.True(t, CanSellerTransition(OrderStatusShipped, OrderStatusDelivered))
	assert.True(t, CanSellerTransition(OrderStatusDelivered, OrderStatusReturned))

	// Прямой переход в DELIVERED запрещен
	assert.False(t, CanSellerTransition(OrderStatusOrdered, OrderStatusDelivered))
	// Из конечных статусов переходов нет
	assert.False(t, CanSellerTransition(OrderStatusCancelled, OrderStatusOrdered))
	assert.False(t, CanSellerTransition(OrderStatusReturned, OrderStatusOrdered))
}

func TestCanBuyerTransition(t *testing.T) {
	assert.True(t, CanBuyerTransition(OrderStatusOrdered, OrderStatusCancelled))
	assert.True(t, CanBuyerTransition(OrderStatusDelivered, OrderStatusReturned))

	// Покупатель не управляет доставкой
	assert.False(t, CanBuyerTransition(OrderStatusOrdered, OrderStatusShipped))
	assert.False(t, CanBuyerTransition(OrderStatusShipped, OrderStatusDelivered))
	assert.False(t, CanBuyerTransition(OrderStatusShipped, OrderStatusCancelled))
}

func TestCanTransition_UnknownActor(t *testing.T) {
	assert.False(t, CanTransition(Actor("ADMIN"), OrderStatusOrdered, OrderStatusShipped))
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.True(t, OrderStatusReturned.IsTerminal())
	assert.False(t, OrderStatusOrdered.IsTerminal())
	assert.False(t, OrderStatusShipped.IsTerminal())
	assert.False(t, OrderStatusDelivered.IsTerminal())
}
