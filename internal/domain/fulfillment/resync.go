package fulfillment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fulfillment-api/internal/domain/entity"
)

// SyncInput datos frescos de una línea: la línea de la caché y la anotación del catálogo.
type SyncInput struct {
	Line          entity.PendingOrderLine
	StockSnapshot decimal.Decimal
	ImageURL      string
	ShelfCode     string // sugerencia del directorio de ubicaciones
}

// MergeItem crea o refresca el ítem de workflow a partir de la última foto del ERP.
//
// La cantidad pendiente solo puede bajar: min(anterior, observada). Recogido y extra se conservan.
// TODO(dominio): confirmar con logística que el ERP manda en las reducciones antes de endurecer la regla.
func MergeItem(existing *entity.WorkflowItem, in SyncInput, now time.Time) *entity.WorkflowItem {
	l := in.Line
	it := existing
	if it == nil {
		it = &entity.WorkflowItem{
			LineKey:      l.LineKey,
			RemainingQty: l.RemainingQty,
			DeliveredQty: l.DeliveredQty,
			Status:       entity.ItemStatusPending,
			CreatedAt:    now,
		}
	} else {
		it.RemainingQty = decimal.Min(it.RemainingQty, l.RemainingQty)
		it.DeliveredQty = decimal.Max(it.DeliveredQty, l.DeliveredQty)
	}

	it.ProductCode = l.ProductCode
	it.ProductName = l.ProductName
	it.Unit = l.Unit
	it.WarehouseCode = l.WarehouseCode
	it.RowNumber = l.RowNumber
	it.RequestedQty = l.Quantity
	if !l.UnitPrice.IsZero() || it.UnitPrice.IsZero() {
		it.UnitPrice = l.UnitPrice
	}
	if !l.VAT.IsZero() || it.VAT.IsZero() {
		it.VAT = l.VAT
	}
	it.StockSnapshot = in.StockSnapshot
	if in.ImageURL != "" {
		it.ImageURL = in.ImageURL
	}
	if it.ShelfCode == "" {
		it.ShelfCode = in.ShelfCode
	}
	it.UpdatedAt = now
	Recompute(it)
	return it
}
