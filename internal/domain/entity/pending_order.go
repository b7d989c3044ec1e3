package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CachedOrder entrada de la caché de pedidos abiertos tal como la deja el refresco externo.
// Items sigue sin tipar: solo el parser de fulfillment lo convierte en PendingOrderLine.
type CachedOrder struct {
	OrderNumber  string          `json:"orderNumber"`
	Series       string          `json:"series"`
	Sequence     int64           `json:"sequence"`
	CustomerCode string          `json:"customerCode"`
	CustomerName string          `json:"customerName"`
	OrderDate    *time.Time      `json:"orderDate,omitempty"`
	DeliveryDate *time.Time      `json:"deliveryDate,omitempty"`
	Items        json.RawMessage `json:"items"`
}

// PendingOrderLine línea canónica de un pedido abierto (efímera, por sincronización).
type PendingOrderLine struct {
	LineKey              string
	ProductCode          string
	ProductName          string
	Unit                 string
	WarehouseCode        string
	Quantity             decimal.Decimal
	DeliveredQty         decimal.Decimal
	RemainingQty         decimal.Decimal
	ReservedQty          decimal.Decimal
	ReservedDeliveredQty decimal.Decimal
	UnitPrice            decimal.Decimal
	LineTotal            decimal.Decimal
	VAT                  decimal.Decimal
	RowNumber            int
	HasRowNumber         bool
}

// ActiveReservation cantidad aún reservada (reservado − entregado desde reserva), nunca negativa.
func (l PendingOrderLine) ActiveReservation() decimal.Decimal {
	r := l.ReservedQty.Sub(l.ReservedDeliveredQty)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

// PendingOrder cabecera tipada más sus líneas ya normalizadas.
type PendingOrder struct {
	OrderNumber  string
	Series       string
	Sequence     int64
	CustomerCode string
	CustomerName string
	OrderDate    *time.Time
	DeliveryDate *time.Time
	Lines        []PendingOrderLine
	Rejected     []RejectedLine
}

// RejectedLine fila de la caché descartada por el parser.
type RejectedLine struct {
	Index       int
	ProductCode string
	Reason      string
}
