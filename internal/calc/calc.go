package calc

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/feedshop/order-settlement/internal/domain"
)

// Правила расчета заказа:
// баллами можно оплатить не более 10% суммы заказа, кратно 100 баллам;
// за каждые полные 10000 единиц итоговой суммы начисляется 50 баллов.
const (
	PointUnit     int64 = 100
	AccrualAmount int64 = 10000
	AccrualPoints int64 = 50

	MinQuantityPerItem = 1
	MaxQuantityPerItem = 50
)

var maxUseRate = decimal.New(1, -1) // 0.1

// Result представляет результат расчета заказа
type Result struct {
	TotalAmount  decimal.Decimal
	FinalAmount  decimal.Decimal
	UsedPoints   int64
	EarnedPoints int64
}

// Calculate рассчитывает итоговую сумму заказа и баллы.
// requestedPoints ограничивается 10% от суммы заказа (с округлением вниз
// до 100 баллов) и доступным балансом; итоговая сумма не бывает отрицательной.
func Calculate(itemsTotal decimal.Decimal, requestedPoints, availablePoints int64) Result {
	if itemsTotal.IsNegative() {
		itemsTotal = decimal.Zero
	}

	used := requestedPoints
	if used < 0 {
		used = 0
	}
	if availablePoints < 0 {
		availablePoints = 0
	}

	if maxUsable := MaxUsablePoints(itemsTotal); used > maxUsable {
		used = maxUsable
	}
	if used > availablePoints {
		used = availablePoints
	}
	used = used / PointUnit * PointUnit

	// Списание не может увести итоговую сумму ниже нуля
	if decimal.NewFromInt(used).GreaterThan(itemsTotal) {
		used = itemsTotal.Div(decimal.NewFromInt(PointUnit)).Floor().IntPart() * PointUnit
	}

	final := itemsTotal.Sub(decimal.NewFromInt(used))

	return Result{
		TotalAmount:  itemsTotal,
		FinalAmount:  final,
		UsedPoints:   used,
		EarnedPoints: EarnedPoints(final),
	}
}

// MaxUsablePoints возвращает максимум баллов к списанию для суммы заказа:
// floor(total * 0.1 / 100) * 100
func MaxUsablePoints(total decimal.Decimal) int64 {
	if total.IsNegative() {
		return 0
	}
	return total.Mul(maxUseRate).
		Div(decimal.NewFromInt(PointUnit)).
		Floor().
		IntPart() * PointUnit
}

// EarnedPoints возвращает баллы к начислению: floor(final / 10000) * 50
func EarnedPoints(final decimal.Decimal) int64 {
	if final.IsNegative() {
		return 0
	}
	return final.Div(decimal.NewFromInt(AccrualAmount)).
		Floor().
		IntPart() * AccrualPoints
}

// ItemsTotal возвращает сумму строк заказа по ценам каталога
func ItemsTotal(items []domain.PricedItem) decimal.Decimal {
	return lo.Reduce(items, func(total decimal.Decimal, item domain.PricedItem, _ int) decimal.Decimal {
		return total.Add(item.LinePrice)
	}, decimal.Zero)
}

// ValidQuantity проверяет количество товара в позиции заказа
func ValidQuantity(quantity int) bool {
	return quantity >= MinQuantityPerItem && quantity <= MaxQuantityPerItem
}
