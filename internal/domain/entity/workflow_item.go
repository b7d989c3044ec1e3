package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de línea en el picking.
const (
	ItemStatusPending = "PENDING"
	ItemStatusPicked  = "PICKED"
	ItemStatusPartial = "PARTIAL"
	ItemStatusMissing = "MISSING"
	ItemStatusExtra   = "EXTRA"
)

// WorkflowItem progreso físico de una línea del pedido (clave natural: WorkflowID + LineKey).
type WorkflowItem struct {
	ID            string
	WorkflowID    string
	LineKey       string
	ProductCode   string
	ProductName   string
	Unit          string
	WarehouseCode string
	RowNumber     int
	RequestedQty  decimal.Decimal
	DeliveredQty  decimal.Decimal
	RemainingQty  decimal.Decimal
	PickedQty     decimal.Decimal
	ExtraQty      decimal.Decimal
	ShortageQty   decimal.Decimal
	UnitPrice     decimal.Decimal
	VAT           decimal.Decimal
	StockSnapshot decimal.Decimal
	ImageURL      string
	ShelfCode     string
	Status        string
	PickedAt      *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Touched indica si un operario ya registró progreso en la línea.
func (it *WorkflowItem) Touched() bool {
	return it.PickedAt != nil
}
