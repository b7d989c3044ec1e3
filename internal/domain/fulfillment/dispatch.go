package fulfillment

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
)

// DispatchLine línea entregable: min(pendiente, recogido) > 0.
type DispatchLine struct {
	Item       *entity.WorkflowItem
	DeliverQty decimal.Decimal
}

// PlanDispatch selecciona las líneas que se pueden despachar ahora.
func PlanDispatch(items []*entity.WorkflowItem) []DispatchLine {
	var out []DispatchLine
	for _, it := range items {
		q := decimal.Min(it.RemainingQty, it.PickedQty)
		if q.IsPositive() {
			out = append(out, DispatchLine{Item: it, DeliverQty: q})
		}
	}
	return out
}

// ApplyDelivery descuenta lo entregado de pendiente y recogido y lo suma a entregado.
func ApplyDelivery(it *entity.WorkflowItem, delivered decimal.Decimal) {
	if !delivered.IsPositive() {
		return
	}
	it.RemainingQty = decimal.Max(it.RemainingQty.Sub(delivered), decimal.Zero)
	it.PickedQty = decimal.Max(it.PickedQty.Sub(delivered), decimal.Zero)
	it.DeliveredQty = it.DeliveredQty.Add(delivered)
	Recompute(it)
}

// StatusAfterDispatch DISPATCHED si no queda pendiente en ninguna línea, si no PARTIALLY_LOADED.
func StatusAfterDispatch(items []*entity.WorkflowItem) string {
	for _, it := range items {
		if it.RemainingQty.IsPositive() {
			return entity.WorkflowStatusPartiallyLoaded
		}
	}
	return entity.WorkflowStatusDispatched
}
