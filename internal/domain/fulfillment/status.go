package fulfillment

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
)

// ShortageQty = max(pendiente − recogido, 0).
func ShortageQty(remaining, picked decimal.Decimal) decimal.Decimal {
	return decimal.Max(remaining.Sub(picked), decimal.Zero)
}

// ItemStatus estado de una línea con progreso registrado.
// Precedencia: EXTRA > cubierta (PICKED) > sin avance con faltante (MISSING) > avance parcial (PARTIAL).
// Nunca devuelve PENDING: ese estado lo asigna Recompute a las líneas que nadie tocó (PickedAt nil).
func ItemStatus(picked, extra, shortage, _ decimal.Decimal) string {
	switch {
	case extra.IsPositive():
		return entity.ItemStatusExtra
	case !shortage.IsPositive():
		return entity.ItemStatusPicked
	case !picked.IsPositive():
		return entity.ItemStatusMissing
	default:
		return entity.ItemStatusPartial
	}
}

// Recompute recalcula faltante y estado. Las líneas que nadie tocó siguen en PENDING.
func Recompute(it *entity.WorkflowItem) {
	it.ShortageQty = ShortageQty(it.RemainingQty, it.PickedQty)
	if !it.Touched() {
		it.Status = entity.ItemStatusPending
		return
	}
	it.Status = ItemStatus(it.PickedQty, it.ExtraQty, it.ShortageQty, it.RemainingQty)
}

// OrderStatus estado del pedido mientras se recoge: LOADED si toda la demanda pendiente está
// recogida sin faltante, PICKING en cualquier otro caso (sin avance o mixto).
func OrderStatus(items []*entity.WorkflowItem) string {
	demand := false
	for _, it := range items {
		if !it.RemainingQty.IsPositive() {
			continue
		}
		demand = true
		if it.ShortageQty.IsPositive() {
			return entity.WorkflowStatusPicking
		}
	}
	if demand {
		return entity.WorkflowStatusLoaded
	}
	return entity.WorkflowStatusPicking
}
